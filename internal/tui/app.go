package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"planetpal/internal/engine"
)

func RunApp(ctx context.Context, svc *engine.Service, profileID string, out io.Writer) error {
	m := newAppModel(ctx, svc, profileID)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
