package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/service"
	"github.com/MKhiriev/go-notes-client/internal/store"
	"github.com/MKhiriev/go-notes-client/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run restores a persisted session when one exists, then blocks in the
// terminal UI until the user quits. A missing or expired session is not an
// error; the UI simply starts anonymous on the public view.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.Auth.Restore()
	switch {
	case err == nil:
		a.logger.Info().Str("username", session.Username).Msg("session restored")
	case errors.Is(err, store.ErrSessionNotFound):
		a.logger.Info().Msg("no persisted session, starting anonymous")
	default:
		a.logger.Warn().Err(err).Msg("session restore failed, starting anonymous")
	}

	return a.tui.Run(ctx)
}
