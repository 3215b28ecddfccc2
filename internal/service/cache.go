package service

import (
	"time"

	"github.com/MKhiriev/go-notes-client/models"
)

// notesCache is the in-memory mirror of the last-fetched note lists. All
// transforms are plain data operations; locking is the owning service's job.
type notesCache struct {
	public  []models.Note
	private []models.Note
}

func (c *notesCache) replacePublic(notes []models.Note) {
	c.public = append([]models.Note(nil), notes...)
}

func (c *notesCache) replacePrivate(notes []models.Note) {
	c.private = append([]models.Note(nil), notes...)
}

// prependPrivate puts note first, keeping most-recent-first ordering.
func (c *notesCache) prependPrivate(note models.Note) {
	c.private = append([]models.Note{note}, c.private...)
}

// patchPrivate merges the changed fields into the cached note with the given
// id and refreshes its updated-at timestamp. Reports whether a note was
// patched.
func (c *notesCache) patchPrivate(id int64, req models.CreateNoteRequest, now time.Time) (models.Note, bool) {
	for i := range c.private {
		if c.private[i].ID != id {
			continue
		}
		c.private[i].Title = req.Title
		c.private[i].Content = req.Content
		c.private[i].IsPublic = req.IsPublic
		c.private[i].UpdatedAt = now
		return c.private[i], true
	}
	return models.Note{}, false
}

// removePrivate deletes the cached note with the given id. Reports whether
// anything was removed; a second delete of the same id is a no-op.
func (c *notesCache) removePrivate(id int64) bool {
	for i := range c.private {
		if c.private[i].ID == id {
			c.private = append(c.private[:i], c.private[i+1:]...)
			return true
		}
	}
	return false
}

func (c *notesCache) lookupPublic(id int64) (models.Note, bool) {
	return lookup(c.public, id)
}

func (c *notesCache) lookupPrivate(id int64) (models.Note, bool) {
	return lookup(c.private, id)
}

func lookup(notes []models.Note, id int64) (models.Note, bool) {
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

func (c *notesCache) snapshotPublic() []models.Note {
	return append([]models.Note(nil), c.public...)
}

func (c *notesCache) snapshotPrivate() []models.Note {
	return append([]models.Note(nil), c.private...)
}

func (c *notesCache) resetPrivate() {
	c.private = nil
}
