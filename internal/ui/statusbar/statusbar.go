package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Argeon482/Pet-Farm/internal/types"
	"github.com/Argeon482/Pet-Farm/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	view      types.View
	simulated bool
	info      string
	width     int
	styles    *styles.Styles
}

// New creates a new StatusBar for the given view and width
func New(view types.View, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		view:   view,
		width:  width,
		styles: styles,
	}
}

// WithSimulation adds the time travel hints
func (sb StatusBar) WithSimulation(simulated bool) StatusBar {
	sb.simulated = simulated
	return sb
}

// WithInfo sets right-aligned text such as check-in progress
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(sb.view.String())

	hints := GetHints(sb.view)
	if sb.simulated {
		hints += "  " + TimeHints()
	}

	content := badge
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, sb.styles.StatusHint.Render(hints))
	}

	if sb.info != "" {
		info := sb.styles.StatusInfo.Render(sb.info)
		gap := sb.width - lipgloss.Width(content) - lipgloss.Width(info) - 2
		if gap > 0 {
			content = lipgloss.JoinHorizontal(lipgloss.Left, content, lipgloss.NewStyle().Width(gap).Render(""), info)
		}
	}

	return sb.styles.StatusBar.Width(sb.width).MaxHeight(1).Render(content)
}
