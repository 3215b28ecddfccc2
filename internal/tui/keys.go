package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	submit  key.Binding
	quit    key.Binding

	publicView  key.Binding
	privateView key.Binding
	statsView   key.Binding

	newNote key.Binding
	auth    key.Binding
	refresh key.Binding

	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	toggle  key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	submit:  key.NewBinding(key.WithKeys("ctrl+s")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),

	publicView:  key.NewBinding(key.WithKeys("1")),
	privateView: key.NewBinding(key.WithKeys("2")),
	statsView:   key.NewBinding(key.WithKeys("3")),

	newNote: key.NewBinding(key.WithKeys("ctrl+n", "n")),
	auth:    key.NewBinding(key.WithKeys("l")),
	refresh: key.NewBinding(key.WithKeys("r")),

	edit:   key.NewBinding(key.WithKeys("e")),
	delete: key.NewBinding(key.WithKeys("d")),
	copy:   key.NewBinding(key.WithKeys("c")),
	toggle: key.NewBinding(key.WithKeys(" ")),

	yes: key.NewBinding(key.WithKeys("y")),
	no:  key.NewBinding(key.WithKeys("n")),
}
