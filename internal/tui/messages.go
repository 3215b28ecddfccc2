package tui

import (
	"github.com/MKhiriev/go-notes-client/models"
)

// list-fetch messages carry the generation their command was started with;
// the update loop discards any message whose generation is no longer current.

type publicLoadedMsg struct {
	gen   int
	notes []models.Note
	err   error
}

type privateLoadedMsg struct {
	gen   int
	notes []models.Note
	err   error
}

type statsLoadedMsg struct {
	gen   int
	stats models.Stats
	err   error
}

type loginDoneMsg struct {
	username string
	err      error
}

type logoutDoneMsg struct {
	err error
}

type noteSavedMsg struct {
	note    models.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	id  int64
	err error
}

type detailLoadedMsg struct {
	note models.Note
	err  error
}

type copiedMsg struct {
	err error
}

type refreshTickMsg struct{}

type toastTickMsg struct {
	gen int
}

type clearStatusMsg struct{}
