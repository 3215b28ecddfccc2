package tui

import "github.com/MKhiriev/go-notes-client/models"

// detailModel is the full-note overlay. owned gates the edit and delete
// actions to the note's author.
type detailModel struct {
	note   models.Note
	owned  bool
	status string
}
