package selection

import (
	"strings"
	"sync"
)

// Snapshot is a consistent copy of the selection at one instant.
type Snapshot struct {
	Inputs []string
	Output string
	Ready  bool
}

// State owns the input list and output folder.
type State struct {
	mu     sync.RWMutex
	inputs []string
	output string
}

// New returns an empty selection.
func New() *State {
	return &State{}
}

// SetInputs replaces the input list wholesale. An empty pick is treated as a
// cancelled dialog and reported by returning false.
func (s *State) SetInputs(paths []string) (Snapshot, bool) {
	if len(paths) == 0 {
		return s.Snapshot(), false
	}
	replacement := append([]string(nil), paths...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = replacement
	return s.snapshotLocked(), true
}

// SetOutput replaces the output folder. A blank path is treated as a
// cancelled dialog and reported by returning false.
func (s *State) SetOutput(path string) (Snapshot, bool) {
	if strings.TrimSpace(path) == "" {
		return s.Snapshot(), false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.output = path
	return s.snapshotLocked(), true
}

// Ready reports whether at least one input and an output folder are set.
func (s *State) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readyLocked()
}

// Snapshot returns a copy of the current selection.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *State) readyLocked() bool {
	return len(s.inputs) > 0 && s.output != ""
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Inputs: append([]string(nil), s.inputs...),
		Output: s.output,
		Ready:  s.readyLocked(),
	}
}
