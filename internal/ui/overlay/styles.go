package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Argeon482/Pet-Farm/internal/ui/styles"
)

// Styles holds the overlay-specific styles
type Styles struct {
	Overlay lipgloss.Style
	Title   lipgloss.Style

	// Menu entries
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	MenuKeyDisabled  lipgloss.Style
	MenuHeader       lipgloss.Style
	MenuCount        lipgloss.Style

	Separator lipgloss.Style
	Footer    lipgloss.Style

	// Text input dialogs
	Prompt lipgloss.Style
	Error  lipgloss.Style
}

// New creates overlay styles from the Catppuccin Macchiato palette
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem:         lipgloss.NewStyle().Foreground(styles.Text),
		MenuItemActive:   lipgloss.NewStyle().Foreground(styles.Blue).Bold(true),
		MenuItemDisabled: lipgloss.NewStyle().Foreground(styles.Overlay0),
		MenuKey:          lipgloss.NewStyle().Foreground(styles.Yellow).Bold(true),
		MenuKeyDisabled:  lipgloss.NewStyle().Foreground(styles.Surface2).Bold(true),
		MenuHeader:       lipgloss.NewStyle().Foreground(styles.Subtext1).Bold(true),
		MenuCount:        lipgloss.NewStyle().Foreground(styles.Green),

		Separator: lipgloss.NewStyle().Foreground(styles.Surface1),
		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		Prompt: lipgloss.NewStyle().Foreground(styles.Lavender),
		Error:  lipgloss.NewStyle().Foreground(styles.Red),
	}
}
