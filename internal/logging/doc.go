// Package logging assembles the structured slog loggers used across sagelink.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so reconciliation code can
// automatically tag log lines with run and record identifiers. A no-op logger
// is provided for tests and wiring code that cannot fail.
package logging
