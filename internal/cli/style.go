package cli

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	highlight  = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special    = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning    = lipgloss.AdaptiveColor{Light: "#F29F05", Dark: "#F29F05"}
	errorColor = lipgloss.AdaptiveColor{Light: "#E05252", Dark: "#E05252"}
	muted      = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

	titleStyle = lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(muted)
	moneyStyle = lipgloss.NewStyle().Foreground(special)
	lossStyle  = lipgloss.NewStyle().Foreground(errorColor)

	// Status dots
	dotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).SetString("•")
	okDot    = lipgloss.NewStyle().Foreground(special).SetString("●")
	warnDot  = lipgloss.NewStyle().Foreground(warning).SetString("●")
	errDot   = lipgloss.NewStyle().Foreground(errorColor).SetString("●")
)

// PrintSuccess prints a green-dot line
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", okDot.String(), msg)
}

// PrintError prints a red-dot line
func PrintError(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", errDot.String(), msg)
}

// PrintWarning prints an amber-dot line
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", warnDot.String(), msg)
}

// newTable returns a tabwriter for aligned columns; callers must Flush
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatMoney renders large amounts compactly, e.g. 140.00M or 1.25B
func formatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%s%.2fB", sign, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s%.2fM", sign, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s%.1fK", sign, v/1e3)
	default:
		return fmt.Sprintf("%s%.0f", sign, v)
	}
}

// signedMoney renders a difference with a colored sign
func signedMoney(v float64) string {
	if v < 0 {
		return lossStyle.Render(formatMoney(v))
	}
	return moneyStyle.Render("+" + formatMoney(v))
}

// formatDuration renders a remaining time as "2d 4h", "3h 15m" or "45m"
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "now"
	}
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// progressBar renders a ten-cell bar for a 0..1 fraction
func progressBar(fraction float64) string {
	filled := int(math.Round(fraction * 10))
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + mutedStyle.Render(strings.Repeat("░", 10-filled))
}
