package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-client/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	noteFormFieldTitle = iota
	noteFormFieldContent
	noteFormFieldVisibility
	noteFormFieldCount
)

// noteFormModel is the create/edit overlay: title input, content textarea
// and a visibility toggle. A non-nil editingID routes submission to update.
type noteFormModel struct {
	title    textinput.Model
	content  textarea.Model
	isPublic bool

	focus      int
	editingID  *int64
	submitting bool
}

// newNoteFormModel builds the overlay, pre-filled from note when editing.
func newNoteFormModel(note *models.Note) noteFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 48
	title.Focus()

	content := textarea.New()
	content.Placeholder = "content"
	content.SetWidth(48)
	content.SetHeight(8)

	m := noteFormModel{title: title, content: content}
	if note != nil {
		id := note.ID
		m.editingID = &id
		m.title.SetValue(note.Title)
		m.content.SetValue(note.Content)
		m.isPublic = note.IsPublic
	}
	return m
}

func (m noteFormModel) editing() bool {
	return m.editingID != nil
}

func (m noteFormModel) request() models.CreateNoteRequest {
	return models.CreateNoteRequest{
		Title:    strings.TrimSpace(m.title.Value()),
		Content:  strings.TrimSpace(m.content.Value()),
		IsPublic: m.isPublic,
	}
}

func (m noteFormModel) focusNext() noteFormModel {
	return m.setFocus((m.focus + 1) % noteFormFieldCount)
}

func (m noteFormModel) focusPrev() noteFormModel {
	return m.setFocus((m.focus - 1 + noteFormFieldCount) % noteFormFieldCount)
}

func (m noteFormModel) setFocus(focus int) noteFormModel {
	m.title.Blur()
	m.content.Blur()
	m.focus = focus

	switch m.focus {
	case noteFormFieldTitle:
		m.title.Focus()
	case noteFormFieldContent:
		m.content.Focus()
	}
	return m
}

func (m noteFormModel) View() string {
	header := "New Note"
	if m.editing() {
		header = "Edit Note"
	}

	visibility := "private"
	if m.isPublic {
		visibility = "public"
	}
	visibilityLine := "Visibility: " + visibility
	if m.focus == noteFormFieldVisibility {
		visibilityLine = "> " + visibilityLine + "  (space to toggle)"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString("Title: ")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.content.View())
	b.WriteString("\n\n")
	b.WriteString(visibilityLine)
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString("Saving...\n\n")
	}

	b.WriteString(helpStyle.Render("ctrl+s save  tab next field  esc cancel"))
	return overlayBoxStyle.Render(b.String())
}
