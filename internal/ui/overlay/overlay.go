// Package overlay implements the modal dialogs drawn over the planner views.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a menu entry is chosen. Source names the menu
// that produced it so the app can route menus that share keys.
type SelectionMsg struct {
	Source string
	Key    string
	Value  any
}

func closeCmd() tea.Msg { return CloseOverlayMsg{} }

func selectCmd(source, key string, value any) tea.Cmd {
	return func() tea.Msg {
		return SelectionMsg{Source: source, Key: key, Value: value}
	}
}
