package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"dngconv/internal/workflow"
)

// Run starts the interactive program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, manager *workflow.Manager, settings Settings) error {
	model := New(ctx, manager, settings)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
