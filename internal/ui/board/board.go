// Package board renders the factory floor: one column per service block and
// one card per house.
package board

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Argeon482/Pet-Farm/internal/ui/styles"
)

// minColumnWidth keeps cards readable on narrow terminals
const minColumnWidth = 24

// Render renders the visible block columns. When not every column fits,
// the window scrolls to keep the cursor column on screen.
func Render(columns []Column, cursor Cursor, now time.Time, s *styles.Styles, width, height int) string {
	if len(columns) == 0 {
		return ""
	}
	cursor = cursor.Clamp(columns)

	fit := max(1, width/minColumnWidth)
	fit = min(fit, len(columns))
	first := 0
	if cursor.Column >= fit {
		first = cursor.Column - fit + 1
	}
	columnWidth := width / fit

	var rendered []string
	for i := first; i < first+fit; i++ {
		isActive := i == cursor.Column
		cursorHouse := 0
		if isActive {
			cursorHouse = cursor.House
		}
		col := renderColumn(columns[i], cursorHouse, isActive, now, columnWidth, height, s)
		rendered = append(rendered, lipgloss.NewStyle().Width(columnWidth).MaxHeight(height).Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
