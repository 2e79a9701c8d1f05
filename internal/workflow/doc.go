// Package workflow coordinates a conversion session.
//
// The Manager owns the selection state, pushes rendered summaries and the
// ready flag to an attached Presenter after every selection change, and
// executes conversion runs. Runs never overlap: a second trigger while one is
// in flight, in this process or another sharing the same lock file, is
// rejected with ErrRunInProgress. Per-file failures are carried in the
// RunReport; Convert returns an error only when a run cannot start.
package workflow
