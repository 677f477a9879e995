package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Argeon482/Pet-Farm/internal/core/completion"
	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/ui/styles"
)

// barWidth is the number of cells in a slot progress bar
const barWidth = 8

// renderCard renders a house with one line per slot
func renderCard(h domain.House, isCursor bool, now time.Time, width int, s *styles.Styles) string {
	due := false
	lines := make([]string, 0, domain.SlotsPerHouse+1)

	cursor := " "
	if isCursor {
		cursor = "▶"
	}
	title := cursor + s.HouseID.Render(fmt.Sprintf("House %d", h.ID))
	if h.PerfectionAttempts > 0 {
		title += s.Muted.Render(fmt.Sprintf("  ★%d", h.PerfectionAttempts))
	}
	lines = append(lines, title)

	for _, slot := range h.Slots {
		line, slotDue := renderSlot(slot, now, s)
		due = due || slotDue
		lines = append(lines, line)
	}

	cardStyle := s.Card
	switch {
	case isCursor:
		cardStyle = s.CardActive
	case due:
		cardStyle = s.CardDue
	}
	return cardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderSlot renders "F ████░░░░ 3h20m" and reports whether the pet is due
func renderSlot(slot domain.Slot, now time.Time, s *styles.Styles) (string, bool) {
	if !slot.NPC.Assigned() {
		return s.SlotEmpty.Render("· no NPC"), false
	}
	rank := s.Rank(slot.NPC.Rank).Render(slot.NPC.Rank.String())
	if !slot.Pet.Scheduled() {
		return rank + " " + s.SlotEmpty.Render("idle"), false
	}

	p := completion.Progress(slot.Pet, now)
	filled := int(p * barWidth)
	bar := strings.Repeat("█", filled) + s.Muted.Render(strings.Repeat("░", barWidth-filled))
	if !slot.Pet.Finish.After(now) {
		return rank + " " + bar + " " + s.TaskActive.Render("DUE"), true
	}
	return rank + " " + bar + " " + s.Label.Render(shortDuration(slot.Pet.Finish.Sub(now))), false
}

// shortDuration renders 2d4h, 3h20m or 45m
func shortDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	switch {
	case h >= 24:
		return fmt.Sprintf("%dd%dh", h/24, h%24)
	case h > 0:
		return fmt.Sprintf("%dh%02dm", h, m)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// RenderCard is the exported version for testing
func RenderCard(h domain.House, isCursor bool, now time.Time, width int, s *styles.Styles) string {
	return renderCard(h, isCursor, now, width, s)
}
