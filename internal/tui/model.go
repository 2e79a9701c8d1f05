package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dngconv/internal/services/dnglab"
	"dngconv/internal/textutil"
	"dngconv/internal/workflow"
)

// Settings seeds the model from configuration.
type Settings struct {
	StartDir   string
	Extensions []string
	ShowHidden bool
	Options    dnglab.Options
}

// Model is the bubbletea model for an interactive session.
type Model struct {
	ctx      context.Context
	manager  *workflow.Manager
	settings Settings

	panel  *panel
	form   optionsForm
	keys   keyMap
	help   help.Model
	styles *styles
	picker *picker

	availability *dnglab.Availability
	running      bool
	cancelRun    context.CancelFunc
	quitAfterRun bool
	report       *workflow.RunReport
	runErr       error
	status       string

	width  int
	height int
}

// New builds a model and attaches its panel to manager.
func New(ctx context.Context, manager *workflow.Manager, settings Settings) *Model {
	p := newPanel(manager.Ready())
	snap := manager.Selection()
	if len(snap.Inputs) > 0 {
		p.inputLabel = textutil.FileCountLabel(len(snap.Inputs))
	}
	if snap.Output != "" {
		p.outputLabel = workflow.OutputLabel(snap.Output)
	}
	manager.AttachPresenter(p)

	return &Model{
		ctx:      ctx,
		manager:  manager,
		settings: settings,
		panel:    p,
		form:     newOptionsForm(settings.Options),
		keys:     newKeyMap(),
		help:     help.New(),
		styles:   newStyles(),
	}
}

// Close marks the panel dead so the manager stops pushing to it.
func (m *Model) Close() {
	m.panel.close()
	m.manager.AttachPresenter(nil)
}

// Init runs the informational converter check.
func (m *Model) Init() tea.Cmd {
	ctx, manager := m.ctx, m.manager
	return func() tea.Msg {
		return toolCheckedMsg{availability: manager.CheckTool(ctx)}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.picker != nil {
			return m, m.updatePicker(msg)
		}
		return m, nil

	case toolCheckedMsg:
		availability := msg.availability
		m.availability = &availability
		return m, nil

	case runFinishedMsg:
		m.running = false
		m.cancelRun = nil
		if msg.err != nil {
			m.runErr = msg.err
		} else {
			report := msg.report
			m.report = &report
			m.runErr = nil
		}
		m.status = ""
		if m.quitAfterRun {
			return m, tea.Quit
		}
		return m, nil

	case inputsPickedMsg:
		m.picker = nil
		m.manager.SelectInputs(msg.paths)
		return m, nil

	case outputPickedMsg:
		m.picker = nil
		m.manager.SelectOutput(msg.path)
		return m, nil

	case pickCancelledMsg:
		m.picker = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.picker != nil {
		return m, m.updatePicker(msg)
	}
	return m, nil
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	updated, cmd := m.picker.Update(msg)
	m.picker = &updated
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.picker != nil {
		return m, m.updatePicker(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.panel.dismiss()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Inputs):
		return m, m.openPicker(pickInputs)
	case key.Matches(msg, m.keys.Output):
		return m, m.openPicker(pickOutput)
	case key.Matches(msg, m.keys.Convert):
		return m, m.startRun()
	case key.Matches(msg, m.keys.Up):
		m.form.up()
	case key.Matches(msg, m.keys.Down):
		m.form.down()
	case key.Matches(msg, m.keys.Prev):
		m.form.cycle(-1)
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Toggle):
		m.form.cycle(1)
	}
	return m, nil
}

// quit exits immediately when idle. During a run it stops after the file
// being converted and exits once the run reports back.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	if !m.running {
		return m, tea.Quit
	}
	m.quitAfterRun = true
	if m.cancelRun != nil {
		m.cancelRun()
	}
	m.status = "Stopping after the current file..."
	return m, nil
}

// busy reports whether a run is in flight, whether started here or by
// another caller sharing the manager.
func (m *Model) busy() bool {
	return m.running || m.manager.Running()
}

func (m *Model) openPicker(mode pickerMode) tea.Cmd {
	if m.busy() {
		m.status = "A conversion is running; selections are locked until it finishes."
		return nil
	}
	start := m.settings.StartDir
	if mode == pickOutput {
		if out := m.manager.Selection().Output; out != "" {
			start = out
		}
	}
	p := newPicker(mode, start, m.settings.Extensions, m.settings.ShowHidden)
	m.picker = &p
	m.status = ""
	return p.Init()
}

// startRun triggers a conversion with the options as they are right now.
func (m *Model) startRun() tea.Cmd {
	if m.busy() || !m.panel.state().convertEnabled {
		return nil
	}
	opts := m.form.Options()
	ctx, cancel := context.WithCancel(m.ctx)
	m.running = true
	m.cancelRun = cancel
	m.report = nil
	m.runErr = nil
	m.status = "Converting..."

	manager := m.manager
	return func() tea.Msg {
		defer cancel()
		report, err := manager.Convert(ctx, opts)
		return runFinishedMsg{report: report, err: err}
	}
}

// View renders the model.
func (m *Model) View() string {
	if m.picker != nil {
		return m.styles.Main.Render(m.pickerView())
	}

	st := m.panel.state()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("dngconv: camera raw to DNG"))
	b.WriteString("\n")
	b.WriteString(m.toolLine())
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s%s\n", m.styles.Label.Render("Input"), m.styles.Value.Render(st.inputLabel))
	fmt.Fprintf(&b, "%s%s\n", m.styles.Label.Render("Output"), m.styles.Value.Render(st.outputLabel))

	b.WriteString(m.styles.Section.Render("Options"))
	b.WriteString("\n")
	for _, row := range m.form.rows() {
		cursor := "  "
		if row.selected {
			cursor = m.styles.Cursor.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s%s\n", cursor, m.styles.Label.Render(row.label), m.styles.Value.Render(row.value))
	}

	button := m.styles.ButtonDisabled
	if st.convertEnabled && !m.busy() {
		button = m.styles.Button
	}
	b.WriteString(button.Render("Convert"))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Dim.Render(m.status))
		b.WriteString("\n")
	}
	if m.runErr != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(runErrorText(m.runErr)))
		b.WriteString("\n")
	}
	if m.report != nil {
		b.WriteString("\n")
		b.WriteString(m.reportView(*m.report))
	}
	if st.notice != nil {
		b.WriteString(m.noticeView(*st.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return m.styles.Main.Render(b.String())
}

func (m *Model) toolLine() string {
	switch {
	case m.availability == nil:
		return m.styles.Dim.Render("Checking for dnglab...")
	case m.availability.Available && m.availability.Version != "":
		return m.styles.Dim.Render(m.availability.Version)
	case m.availability.Available:
		return m.styles.Dim.Render("dnglab: " + m.availability.Command)
	default:
		return m.styles.Warning.Render("dnglab not found")
	}
}

func (m *Model) reportView(report workflow.RunReport) string {
	var b strings.Builder
	style := m.styles.Success
	if !report.OK() {
		style = m.styles.Warning
	}
	b.WriteString(style.Render(report.Summary()))
	b.WriteString("\n")
	for _, outcome := range report.Outcomes {
		name := filepath.Base(outcome.Input)
		if outcome.Succeeded() {
			fmt.Fprintf(&b, "  %s %s\n", m.styles.Success.Render("✓"), name)
			continue
		}
		fmt.Fprintf(&b, "  %s %s: %s\n", m.styles.Error.Render("✗"), name, outcome.Message())
	}
	return b.String()
}

func (m *Model) noticeView(notice workflow.Notice) string {
	body := m.styles.Warning.Bold(true).Render(notice.Title) + "\n" + notice.Message + "\n" +
		m.styles.Dim.Render("esc to dismiss")
	return m.styles.NoticeBox.Render(body)
}

func (m *Model) pickerView() string {
	p := m.picker
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.title()))
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render(p.fp.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(p.fp.View())
	b.WriteString("\n")
	if p.mode == pickInputs {
		b.WriteString(m.styles.Value.Render(textutil.FileCountLabel(len(p.pending))))
		b.WriteString("\n")
	}
	if p.status != "" {
		b.WriteString(m.styles.Dim.Render(p.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.help.View(p.keys)))
	return b.String()
}

func runErrorText(err error) string {
	switch {
	case errors.Is(err, workflow.ErrNotReady):
		return "Select input files and an output folder first."
	case errors.Is(err, workflow.ErrRunInProgress):
		return "Another conversion is already running."
	default:
		return err.Error()
	}
}
