package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Argeon482/Pet-Farm/internal/core/briefing"
	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Header tabs
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Clock     lipgloss.Style
	ClockSim  lipgloss.Style

	// Factory board
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style

	// House cards
	Card       lipgloss.Style
	CardActive lipgloss.Style
	CardDue    lipgloss.Style
	HouseID    lipgloss.Style
	SlotEmpty  lipgloss.Style

	// Panels and text
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Money      lipgloss.Style
	Loss       lipgloss.Style
	Muted      lipgloss.Style
	Warning    lipgloss.Style
	Selected   lipgloss.Style

	// Checklist states
	TaskPending   lipgloss.Style
	TaskActive    lipgloss.Style
	TaskCompleted lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Padding(0, 1)
	toast := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		Tab: lipgloss.NewStyle().
			Foreground(Subtext0).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 1),
		Clock: lipgloss.NewStyle().
			Foreground(Subtext1),
		ClockSim: lipgloss.NewStyle().
			Foreground(Peach).
			Bold(true),

		Column: lipgloss.NewStyle().
			Padding(0, 1),
		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),
		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Card:       card,
		CardActive: card.BorderForeground(Lavender),
		CardDue:    card.BorderForeground(Peach),
		HouseID: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),
		SlotEmpty: lipgloss.NewStyle().
			Foreground(Overlay0),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(Subtext0),
		Value: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),
		Money: lipgloss.NewStyle().
			Foreground(Green),
		Loss: lipgloss.NewStyle().
			Foreground(Red),
		Muted: lipgloss.NewStyle().
			Foreground(Overlay0),
		Warning: lipgloss.NewStyle().
			Foreground(Yellow),
		Selected: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		TaskPending: lipgloss.NewStyle().
			Foreground(Subtext0),
		TaskActive: lipgloss.NewStyle().
			Foreground(Peach).
			Bold(true),
		TaskCompleted: lipgloss.NewStyle().
			Foreground(Green).
			Strikethrough(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),
		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),
		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),
		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		ToastInfo:    toast.BorderForeground(Blue).Foreground(Blue),
		ToastSuccess: toast.BorderForeground(Green).Foreground(Green),
		ToastWarning: toast.BorderForeground(Yellow).Foreground(Yellow),
		ToastError:   toast.BorderForeground(Red).Foreground(Red),
	}
}

// Rank returns a bold style in the rank's color
func (s *Styles) Rank(r domain.Rank) lipgloss.Style {
	color, ok := RankColors[r]
	if !ok {
		color = Overlay0
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// Division returns the header style of a division
func (s *Styles) Division(d domain.Division) lipgloss.Style {
	color, ok := DivisionColors[d]
	if !ok {
		color = Subtext0
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// TaskState returns the style for a checklist state
func (s *Styles) TaskState(state briefing.TaskState) lipgloss.Style {
	switch state {
	case briefing.TaskActive:
		return s.TaskActive
	case briefing.TaskCompleted:
		return s.TaskCompleted
	default:
		return s.TaskPending
	}
}
