// Package main hosts the platter CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the structural disc probe plus the
// drive housekeeping around it: status polling, waiting for media, ejecting,
// drive discovery, and configuration scaffolding. It centralizes
// configuration resolution and logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
