// Package tui renders the notes board in the terminal: three views (public
// notes, the user's notes, statistics), overlays for login, note editing,
// detail and delete confirmation, and a transient toast.
package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices

	refreshInterval time.Duration
	toastDuration   time.Duration
}

func New(services *service.ClientServices, refreshInterval, toastDuration time.Duration, _ *logger.Logger) (*TUI, error) {
	return &TUI{
		services:        services,
		refreshInterval: refreshInterval,
		toastDuration:   toastDuration,
	}, nil
}

// Run blocks until the user quits or the program fails.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.refreshInterval, t.toastDuration)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
