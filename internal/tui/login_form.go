// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// loginFormModel is the login overlay: username and password inputs.
type loginFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginFormModel() loginFormModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginFormModel{inputs: []textinput.Model{username, password}}
}

func (m loginFormModel) username() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m loginFormModel) password() string {
	return m.inputs[1].Value()
}

func (m loginFormModel) focusNext() loginFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginFormModel) focusPrev() loginFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Login"))
	b.WriteString("\n\n")
	b.WriteString("Username: ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password: ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString("Logging in...\n\n")
	}

	b.WriteString(helpStyle.Render("enter login  tab next field  esc cancel"))
	return overlayBoxStyle.Render(b.String())
}
