// Package logging assembles the structured slog loggers used across platter.
//
// It centralizes level and format plumbing and exposes small attr helpers so
// every component emits data with the same shape. Prefer these constructors
// over hand-rolled slog setup; wiring code that cannot fail should use the
// no-op logger.
package logging
