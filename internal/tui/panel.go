package tui

import (
	"sync"

	"dngconv/internal/workflow"
)

const (
	noInputsLabel = "No files selected."
	noOutputLabel = "No output folder selected."
)

// panel receives pushes from the workflow manager. Runs execute outside the
// bubbletea loop, so every field is guarded by mu.
type panel struct {
	mu             sync.Mutex
	alive          bool
	inputLabel     string
	outputLabel    string
	convertEnabled bool
	notices        []workflow.Notice
}

type panelState struct {
	inputLabel     string
	outputLabel    string
	convertEnabled bool
	notice         *workflow.Notice
}

func newPanel(ready bool) *panel {
	return &panel{
		alive:          true,
		inputLabel:     noInputsLabel,
		outputLabel:    noOutputLabel,
		convertEnabled: ready,
	}
}

func (p *panel) Alive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alive
}

func (p *panel) ShowInputSummary(label string) {
	p.mu.Lock()
	p.inputLabel = label
	p.mu.Unlock()
}

func (p *panel) ShowOutputSummary(label string) {
	p.mu.Lock()
	p.outputLabel = label
	p.mu.Unlock()
}

func (p *panel) SetConvertEnabled(enabled bool) {
	p.mu.Lock()
	p.convertEnabled = enabled
	p.mu.Unlock()
}

func (p *panel) ShowNotice(notice workflow.Notice) {
	p.mu.Lock()
	p.notices = append(p.notices, notice)
	p.mu.Unlock()
}

// dismiss drops the oldest notice and reports whether one was shown.
func (p *panel) dismiss() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.notices) == 0 {
		return false
	}
	p.notices = p.notices[1:]
	return true
}

func (p *panel) close() {
	p.mu.Lock()
	p.alive = false
	p.mu.Unlock()
}

func (p *panel) state() panelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := panelState{
		inputLabel:     p.inputLabel,
		outputLabel:    p.outputLabel,
		convertEnabled: p.convertEnabled,
	}
	if len(p.notices) > 0 {
		n := p.notices[0]
		st.notice = &n
	}
	return st
}
