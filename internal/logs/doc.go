// Package logs reads the dngconv session log for the `dngconv logs` command.
//
// Reads are line based with bounded memory: Last returns the newest lines of
// the file and Follow polls for lines appended after a byte offset. Both can
// narrow output to a single conversion run by its run ID.
package logs
