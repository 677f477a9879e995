package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Argeon482/Pet-Farm/internal/ui/styles"
)

// cardHeight is the rendered height of one house card
const cardHeight = 6

// renderColumn renders a service block header and as many house cards as fit,
// scrolled so the cursor card stays visible
func renderColumn(col Column, cursorHouse int, isActive bool, now time.Time, width, height int, s *styles.Styles) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}
	headerText := fmt.Sprintf("─ %s (%d) ", col.Title, len(col.Houses))
	if remaining := width - lipgloss.Width(headerText) - 2; remaining > 0 {
		headerText += strings.Repeat("─", remaining)
	}
	header := headerStyle.Render(headerText)

	visible := max(1, (height-1)/cardHeight)
	start := 0
	if isActive && cursorHouse >= visible {
		start = cursorHouse - visible + 1
	}
	end := min(len(col.Houses), start+visible)

	cards := make([]string, 0, end-start)
	cardWidth := width - 4
	for i := start; i < end; i++ {
		cards = append(cards, renderCard(col.Houses[i], isActive && i == cursorHouse, now, cardWidth, s))
	}
	if hidden := len(col.Houses) - end; hidden > 0 {
		cards = append(cards, s.Muted.Render(fmt.Sprintf("  +%d more", hidden)))
	}

	body := s.Column.Width(width).Render(strings.Join(cards, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
