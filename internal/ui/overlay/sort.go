package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// SortSource tags selections from the sort menu
const SortSource = "sort"

// SortOption represents a sort option with metadata
type SortOption struct {
	Key         string
	Label       string
	Field       domain.SortField
	Description string
}

// SortOptions are the orderings offered for upcoming tasks
var SortOptions = []SortOption{
	{Key: "p", Label: "Priority", Field: domain.SortByPriority, Description: "highest output rank first"},
	{Key: "t", Label: "Finish", Field: domain.SortByFinish, Description: "soonest finish first"},
	{Key: "b", Label: "Block", Field: domain.SortByBlock, Description: "by service block"},
	{Key: "h", Label: "House", Field: domain.SortByHouse, Description: "by house and slot"},
}

// SortMenu edits a domain.Sort in place. Pressing the active field's key
// again flips the direction.
type SortMenu struct {
	sort   *domain.Sort
	styles *Styles
}

// NewSortMenu creates a sort menu for the given sort state
func NewSortMenu(sort *domain.Sort) *SortMenu {
	return &SortMenu{sort: sort, styles: New()}
}

// Init initializes the menu
func (m *SortMenu) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m *SortMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if k := key.String(); k == "esc" || k == "q" {
		return m, closeCmd
	}
	for _, opt := range SortOptions {
		if opt.Key == key.String() {
			m.sort.Toggle(opt.Field)
			return m, selectCmd(SortSource, opt.Key, *m.sort)
		}
	}
	return m, nil
}

// View renders the menu
func (m *SortMenu) View() string {
	var b strings.Builder
	for _, opt := range SortOptions {
		active := m.sort.Field == opt.Field
		keyStyle, labelStyle := m.styles.MenuItem, m.styles.MenuItem
		if active {
			keyStyle, labelStyle = m.styles.MenuKey, m.styles.MenuItemActive
		}

		b.WriteString(keyStyle.Render("["+opt.Key+"]") + " " + labelStyle.Render(opt.Label))
		b.WriteString(" " + m.styles.MenuItemDisabled.Render("("+opt.Description+")"))
		if active {
			arrow := "↑"
			if m.sort.Order == domain.SortDesc {
				arrow = "↓"
			}
			b.WriteString(" " + m.styles.MenuItemActive.Render("● "+arrow))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render("Press the same key to reverse • Esc to close"))
	return b.String()
}

// Title returns the overlay title
func (m *SortMenu) Title() string {
	return "Sort upcoming"
}

// Size returns the overlay dimensions
func (m *SortMenu) Size() (width, height int) {
	return 56, len(SortOptions) + 6
}
