package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastError
)

// toastModel is the transient one-line notification. Each show bumps gen so
// a countdown tick left over from an earlier toast cannot dismiss a newer
// one.
type toastModel struct {
	message     string
	level       toastLevel
	secondsLeft int
	gen         int
}

func (t *toastModel) show(message string, level toastLevel, duration time.Duration) tea.Cmd {
	seconds := int(duration / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	t.message = message
	t.level = level
	t.secondsLeft = seconds
	t.gen++

	return cmdToastTick(t.gen)
}

// tick counts the toast down by one second. It returns the follow-up tick
// command while the toast is still visible.
func (t *toastModel) tick(msg toastTickMsg) tea.Cmd {
	if msg.gen != t.gen || t.secondsLeft == 0 {
		return nil
	}

	t.secondsLeft--
	if t.secondsLeft == 0 {
		t.message = ""
		return nil
	}
	return cmdToastTick(t.gen)
}

func (t toastModel) visible() bool {
	return t.message != ""
}

func (t toastModel) View() string {
	if !t.visible() {
		return ""
	}

	countdown := strings.Repeat("·", t.secondsLeft)
	switch t.level {
	case toastError:
		return toastErrorStyle.Render(t.message) + " " + helpStyle.Render(countdown)
	case toastSuccess:
		return toastSuccessStyle.Render(t.message) + " " + helpStyle.Render(countdown)
	default:
		return toastInfoStyle.Render(t.message) + " " + helpStyle.Render(countdown)
	}
}

func cmdToastTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return toastTickMsg{gen: gen}
	})
}
