package tui

import (
	"dngconv/internal/services/dnglab"
	"dngconv/internal/workflow"
)

// toolCheckedMsg carries the startup availability check.
type toolCheckedMsg struct {
	availability dnglab.Availability
}

// runFinishedMsg is delivered once a conversion run returns.
type runFinishedMsg struct {
	report workflow.RunReport
	err    error
}

// inputsPickedMsg completes the input picker with a non-empty list.
type inputsPickedMsg struct {
	paths []string
}

// outputPickedMsg completes the output picker.
type outputPickedMsg struct {
	path string
}

// pickCancelledMsg closes a picker without changing the selection.
type pickCancelledMsg struct{}
