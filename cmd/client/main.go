package main

import (
	"fmt"

	"github.com/MKhiriev/go-notes-client/internal/adapter"
	"github.com/MKhiriev/go-notes-client/internal/client"
	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/service"
	"github.com/MKhiriev/go-notes-client/internal/store"
	"github.com/MKhiriev/go-notes-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("notes-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	notesAPI, err := adapter.NewHTTPNotesAdapter(cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create notes adapter")
	}

	sessionStore, err := store.NewFileSessionStore(cfg.Storage.SessionFile)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	services := service.NewClientServices(notesAPI, sessionStore, log)

	ui, err := tui.New(services, cfg.UI.RefreshInterval, cfg.UI.ToastDuration, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
