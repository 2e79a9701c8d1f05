// Package logging assembles the structured slog loggers used across dngconv.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// context helpers that tag every line of a conversion run with its run
// identifier. A no-op logger is provided for tests and wiring code that
// cannot fail.
package logging
