// Package config loads, normalizes, and validates platter configuration.
//
// It supplies repository defaults, expands tilde paths, and reads TOML files
// so the CLI discovers the drive path, lock directory, and output settings in
// one pass. Always obtain settings through this package so downstream code
// receives sanitized paths, canonical formats, and clear validation errors.
package config
