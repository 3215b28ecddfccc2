package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)

	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Faint(true)

	badgePublicStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badgePrivateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	toastErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	toastSuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	toastInfoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)
