// Package dnglab mediates access to the dnglab command-line converter.
//
// It locates the converter for the current platform, translates conversion
// options into dnglab's argument grammar, and runs one conversion per input
// file while classifying each result as a success, a converter-reported
// failure, a missing binary, or a launch failure.
//
// Prefer this package over ad-hoc exec.Command usage so argument order,
// availability checks, and outcome classification stay consistent between the
// CLI and the terminal UI.
package dnglab
