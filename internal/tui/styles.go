package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title          lipgloss.Style
	Section        lipgloss.Style
	Label          lipgloss.Style
	Value          lipgloss.Style
	Cursor         lipgloss.Style
	Dim            lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Success        lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	NoticeBox      lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
}

func newStyles() *styles {
	return &styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(14),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Dim:    lipgloss.NewStyle().Faint(true),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("78")).
			Padding(0, 2).
			MarginTop(1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 2).
			MarginTop(1),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		NoticeBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1).
			MarginTop(1).
			Width(64),
		Help: lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main: lipgloss.NewStyle().Padding(1, 2),
	}
}
