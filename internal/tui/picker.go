package tui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerMode int

const (
	pickInputs pickerMode = iota + 1
	pickOutput
)

// picker wraps the bubbles file picker. In input mode enter toggles files
// into an ordered pending list and tab completes the pick; in output mode
// "." selects the folder being browsed. Esc cancels either mode.
type picker struct {
	mode    pickerMode
	fp      filepicker.Model
	keys    pickerKeyMap
	pending []string
	status  string
}

func newPicker(mode pickerMode, startDir string, extensions []string, showHidden bool) picker {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.ShowHidden = showHidden
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.AutoHeight = true
	// Esc belongs to the picker wrapper.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))

	switch mode {
	case pickInputs:
		fp.FileAllowed = true
		fp.DirAllowed = false
		fp.AllowedTypes = allowedTypes(extensions)
	case pickOutput:
		fp.FileAllowed = false
		fp.DirAllowed = false
	}
	return picker{mode: mode, fp: fp, keys: newPickerKeyMap(mode == pickOutput)}
}

// allowedTypes lists each extension in lower and upper case; the file picker
// matches suffixes case-sensitively.
func allowedTypes(extensions []string) []string {
	out := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		lower := strings.ToLower(ext)
		upper := strings.ToUpper(ext)
		out = append(out, lower)
		if upper != lower {
			out = append(out, upper)
		}
	}
	return out
}

func (p picker) Init() tea.Cmd {
	return p.fp.Init()
}

func (p picker) Update(msg tea.Msg) (picker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, p.keys.Cancel):
			return p, emit(pickCancelledMsg{})
		case p.mode == pickInputs && key.Matches(msg, p.keys.Done):
			if len(p.pending) == 0 {
				return p, emit(pickCancelledMsg{})
			}
			return p, emit(inputsPickedMsg{paths: slices.Clone(p.pending)})
		case p.mode == pickOutput && key.Matches(msg, p.keys.UseDir):
			return p, emit(outputPickedMsg{path: p.fp.CurrentDirectory})
		}
	}

	var cmd tea.Cmd
	p.fp, cmd = p.fp.Update(msg)

	if p.mode == pickInputs {
		if ok, path := p.fp.DidSelectFile(msg); ok {
			p.toggle(path)
		} else if ok, path := p.fp.DidSelectDisabledFile(msg); ok {
			p.status = fmt.Sprintf("%s is not a camera raw file.", filepath.Base(path))
		}
	}
	return p, cmd
}

func (p *picker) toggle(path string) {
	if idx := slices.Index(p.pending, path); idx >= 0 {
		p.pending = slices.Delete(p.pending, idx, idx+1)
		p.status = fmt.Sprintf("Removed %s.", filepath.Base(path))
		return
	}
	p.pending = append(p.pending, path)
	p.status = fmt.Sprintf("Added %s.", filepath.Base(path))
}

func (p picker) title() string {
	if p.mode == pickOutput {
		return "Choose the output folder"
	}
	return "Choose camera raw files"
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
