package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Action is one entry of an ActionMenu. An entry with an empty Key renders
// as a separator and cannot be selected.
type Action struct {
	Key     string
	Label   string
	Enabled bool
	Value   any
}

// Separator returns a non-selectable divider entry
func Separator() Action {
	return Action{Label: "────────────────────"}
}

// ActionMenu is a keyboard driven list of actions. Choosing an entry emits a
// SelectionMsg carrying the menu's source and the chosen Action.
type ActionMenu struct {
	source  string
	title   string
	actions []Action
	cursor  int
	styles  *Styles
}

// NewActionMenu creates a menu; the cursor starts on the first enabled entry
func NewActionMenu(source, title string, actions []Action) *ActionMenu {
	m := &ActionMenu{
		source:  source,
		title:   title,
		actions: actions,
		cursor:  -1,
		styles:  New(),
	}
	m.moveCursorDown()
	return m
}

// Init initializes the menu
func (m *ActionMenu) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m *ActionMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc", "q":
		return m, closeCmd
	case "j", "down":
		m.moveCursorDown()
	case "k", "up":
		m.moveCursorUp()
	case "enter":
		return m, m.selectAt(m.cursor)
	default:
		for i, a := range m.actions {
			if a.Key == key.String() {
				return m, m.selectAt(i)
			}
		}
	}
	return m, nil
}

// View renders the menu
func (m *ActionMenu) View() string {
	var b strings.Builder
	for i, a := range m.actions {
		if a.Key == "" {
			b.WriteString(m.styles.Separator.Render(a.Label))
			b.WriteString("\n")
			continue
		}

		style, keyStyle := m.styles.MenuItem, m.styles.MenuKey
		switch {
		case !a.Enabled:
			style, keyStyle = m.styles.MenuItemDisabled, m.styles.MenuKeyDisabled
		case i == m.cursor:
			style = m.styles.MenuItemActive
		}
		b.WriteString(keyStyle.Render("["+a.Key+"]") + " " + style.Render(a.Label))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render("j/k: move • Enter: choose • Esc: close"))
	return b.String()
}

// Title returns the overlay title
func (m *ActionMenu) Title() string {
	return m.title
}

// Size fits the longest label
func (m *ActionMenu) Size() (width, height int) {
	width = 40
	for _, a := range m.actions {
		width = max(width, len(a.Label)+10)
	}
	return width, len(m.actions) + 6
}

// Cursor returns the index of the highlighted entry, -1 if none is enabled
func (m *ActionMenu) Cursor() int {
	return m.cursor
}

func (m *ActionMenu) selectable(i int) bool {
	return i >= 0 && i < len(m.actions) && m.actions[i].Enabled && m.actions[i].Key != ""
}

func (m *ActionMenu) moveCursorDown() {
	n := len(m.actions)
	for i := 1; i <= n; i++ {
		next := ((m.cursor+i)%n + n) % n
		if m.selectable(next) {
			m.cursor = next
			return
		}
	}
}

func (m *ActionMenu) moveCursorUp() {
	n := len(m.actions)
	for i := 1; i <= n; i++ {
		prev := ((m.cursor-i)%n + n) % n
		if m.selectable(prev) {
			m.cursor = prev
			return
		}
	}
}

func (m *ActionMenu) selectAt(i int) tea.Cmd {
	if !m.selectable(i) {
		return nil
	}
	a := m.actions[i]
	return selectCmd(m.source, a.Key, a)
}
