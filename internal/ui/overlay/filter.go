package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// FilterSource tags selections from the filter menu
const FilterSource = "filter"

type filterMode int

const (
	filterModeNormal filterMode = iota
	filterModeBlock
	filterModeRank
)

// FilterMenu toggles the block, action and output rank filters of the
// upcoming task list. Every change emits a SelectionMsg so the list can
// refresh while the menu stays open.
type FilterMenu struct {
	filter *domain.Filter
	blocks []string
	mode   filterMode
	styles *Styles
}

// NewFilterMenu creates a filter menu over the given service blocks
func NewFilterMenu(filter *domain.Filter, blocks []string) *FilterMenu {
	return &FilterMenu{
		filter: filter,
		blocks: blocks,
		styles: New(),
	}
}

// Init initializes the menu
func (m *FilterMenu) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m *FilterMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	k := key.String()

	switch m.mode {
	case filterModeBlock:
		if k == "esc" {
			m.mode = filterModeNormal
			return m, nil
		}
		if i := blockIndex(k); i >= 0 && i < len(m.blocks) {
			m.filter.ToggleBlock(m.blocks[i])
			m.mode = filterModeNormal
			return m, m.changed(k)
		}
		return m, nil

	case filterModeRank:
		if k == "esc" {
			m.mode = filterModeNormal
			return m, nil
		}
		if r, err := domain.ParseRank(k); err == nil && r != domain.RankNone {
			m.filter.ToggleOutputRank(r)
			m.mode = filterModeNormal
			return m, m.changed(k)
		}
		return m, nil
	}

	switch k {
	case "esc", "q", "enter":
		return m, closeCmd
	case "b":
		m.mode = filterModeBlock
	case "r":
		m.mode = filterModeRank
	case "w":
		m.filter.ToggleAction(domain.ActionSwap)
		return m, m.changed(k)
	case "o":
		m.filter.ToggleAction(domain.ActionCollect)
		return m, m.changed(k)
	case "c":
		m.filter.Clear()
		return m, m.changed(k)
	}
	return m, nil
}

func (m *FilterMenu) changed(key string) tea.Cmd {
	return selectCmd(FilterSource, key, m.filter)
}

// blockIndex maps "1".."9" to 0..8
func blockIndex(k string) int {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return -1
	}
	return int(k[0] - '1')
}

// View renders the menu
func (m *FilterMenu) View() string {
	switch m.mode {
	case filterModeBlock:
		return m.blockView()
	case filterModeRank:
		return m.rankView()
	}

	var b strings.Builder
	b.WriteString(m.line("b", "Service block", m.blockSummary()))
	b.WriteString(m.line("r", "Output rank", m.rankSummary()))
	b.WriteString(m.line("w", "Swaps only", check(m.filter.Action[domain.ActionSwap])))
	b.WriteString(m.line("o", "Collections only", check(m.filter.Action[domain.ActionCollect])))
	b.WriteString(m.line("c", "Clear all", ""))
	if m.filter.IsActive() {
		b.WriteString(m.styles.MenuCount.Render("filters active"))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render("Esc: close"))
	return b.String()
}

func (m *FilterMenu) line(key, label, value string) string {
	out := m.styles.MenuKey.Render("["+key+"]") + " " + m.styles.MenuItem.Render(label)
	if value != "" {
		out += "  " + m.styles.MenuItemActive.Render(value)
	}
	return out + "\n"
}

func check(on bool) string {
	if on {
		return "✓"
	}
	return ""
}

func (m *FilterMenu) blockSummary() string {
	var on []string
	for _, blk := range m.blocks {
		if m.filter.Block[blk] {
			on = append(on, blk)
		}
	}
	return strings.Join(on, ", ")
}

func (m *FilterMenu) rankSummary() string {
	var on []string
	for _, r := range domain.AllRanks {
		if m.filter.OutputRank[r] {
			on = append(on, r.String())
		}
	}
	return strings.Join(on, " ")
}

func (m *FilterMenu) blockView() string {
	var b strings.Builder
	b.WriteString(m.styles.MenuHeader.Render("Toggle block:"))
	b.WriteString("\n")
	if len(m.blocks) == 0 {
		b.WriteString(m.styles.MenuItemDisabled.Render("no service blocks"))
		b.WriteString("\n")
	}
	for i, blk := range m.blocks {
		if i >= 9 {
			break
		}
		b.WriteString(m.line(fmt.Sprint(i+1), blk, check(m.filter.Block[blk])))
	}
	b.WriteString(m.styles.Footer.Render("Esc: back"))
	return b.String()
}

func (m *FilterMenu) rankView() string {
	var b strings.Builder
	b.WriteString(m.styles.MenuHeader.Render("Toggle output rank:"))
	b.WriteString("\n")
	for _, r := range domain.AllRanks {
		b.WriteString(m.line(strings.ToLower(r.String()), r.PetName(), check(m.filter.OutputRank[r])))
	}
	b.WriteString(m.styles.Footer.Render("Esc: back"))
	return b.String()
}

// Title returns the overlay title
func (m *FilterMenu) Title() string {
	return "Filter upcoming"
}

// Size returns the overlay dimensions
func (m *FilterMenu) Size() (width, height int) {
	return 48, 14
}
