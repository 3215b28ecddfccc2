package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-client/models"
)

const previewLimit = 150

// markupEscaper neutralizes the three characters the note board treats as
// markup in user-supplied text.
var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return markupEscaper.Replace(s)
}

// truncatePreview cuts content to at most previewLimit runes on a word
// boundary and appends an ellipsis. Content of exactly previewLimit runes
// passes through untouched.
func truncatePreview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}

	cut := runes[:previewLimit]
	if i := lastSpace(cut); i > 0 {
		cut = cut[:i]
	}

	return strings.TrimRight(string(cut), " ") + "..."
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// relativeTime renders t against now the way the note board labels cards:
// anything under an hour is "Just now", then whole hours, then whole days.
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return "Just now"
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}

func visibilityBadge(note models.Note) string {
	if note.IsPublic {
		return badgePublicStyle.Render("[public]")
	}
	return badgePrivateStyle.Render("[private]")
}

// renderNoteCard renders one list entry: cursor, title line with author and
// age, and a truncated content preview.
func renderNoteCard(note models.Note, now time.Time, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	var b strings.Builder
	b.WriteString(cursor)
	b.WriteString(titleStyle.Render(escapeText(note.Title)))
	b.WriteString("  ")
	b.WriteString(visibilityBadge(note))
	b.WriteString("\n")

	b.WriteString("  ")
	b.WriteString(helpStyle.Render(fmt.Sprintf("by %s, %s", escapeText(note.User), relativeTime(note.CreatedAt, now))))
	b.WriteString("\n")

	// truncate first: escaping inflates &, < and > into entities, which
	// would eat into the preview limit and let the word cut split an entity
	preview := escapeText(truncatePreview(note.Content))
	for _, line := range strings.Split(preview, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func renderNoteList(notes []models.Note, idx int, now time.Time, emptyState string) string {
	if len(notes) == 0 {
		return emptyState + "\n"
	}

	var b strings.Builder
	for i, note := range notes {
		b.WriteString(renderNoteCard(note, now, i == idx))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDetail renders the full note: header, metadata and untruncated
// content as plain text.
func renderDetail(note models.Note, now time.Time, owned bool, status string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(escapeText(note.Title)))
	b.WriteString("  ")
	b.WriteString(visibilityBadge(note))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("by %s, %s", escapeText(note.User), relativeTime(note.CreatedAt, now))))
	b.WriteString("\n\n")
	b.WriteString(note.Content)
	b.WriteString("\n\n")

	if status != "" {
		b.WriteString(status)
		b.WriteString("\n\n")
	}

	hotKeys := "c copy  esc back"
	if owned {
		hotKeys = "e edit  d delete  " + hotKeys
	}
	b.WriteString(helpStyle.Render(hotKeys))

	return overlayBoxStyle.Render(b.String())
}

func renderStats(stats models.Stats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Total notes:    %d\n", stats.TotalNotes))
	b.WriteString(fmt.Sprintf("Public notes:   %d\n", stats.PublicNotes))
	b.WriteString(fmt.Sprintf("Private notes:  %d\n", stats.PrivateNotes))
	return b.String()
}

func renderTabs(active view) string {
	labels := []struct {
		v    view
		name string
	}{
		{viewPublic, "1 Public"},
		{viewPrivate, "2 My Notes"},
		{viewStats, "3 Statistics"},
	}

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.v == active {
			parts = append(parts, tabActiveStyle.Render(l.name))
		} else {
			parts = append(parts, tabInactiveStyle.Render(l.name))
		}
	}
	return strings.Join(parts, "   ")
}
