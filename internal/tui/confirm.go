package tui

type confirmModel struct {
	title  string
	noteID int64
}

func (m confirmModel) View() string {
	content := "Delete \"" + escapeText(m.title) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
