// Package selection holds the user's current input files and output folder.
//
// Both fields live behind one lock so a reader never observes a new input
// list paired with a stale output folder (or the reverse). Setters model a
// completed picker dialog: an empty pick is a cancellation and leaves the
// existing selection untouched.
package selection
