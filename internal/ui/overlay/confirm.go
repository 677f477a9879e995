package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog asks a yes/no question. The answer arrives as a SelectionMsg
// whose Value is a ConfirmResult.
type ConfirmDialog struct {
	source  string
	title   string
	message string
	yes     bool
	styles  *Styles
}

// ConfirmResult is the answer of a ConfirmDialog
type ConfirmResult struct {
	Confirmed bool
}

// NewConfirmDialog creates a dialog that defaults to No
func NewConfirmDialog(source, title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		source:  source,
		title:   title,
		message: message,
		styles:  New(),
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "y", "Y":
		return c, c.answer(true)
	case "n", "N", "esc":
		return c, c.answer(false)
	case "enter":
		return c, c.answer(c.yes)
	case "left", "h":
		c.yes = true
	case "right", "l":
		c.yes = false
	case "tab":
		c.yes = !c.yes
	}
	return c, nil
}

func (c *ConfirmDialog) answer(yes bool) tea.Cmd {
	key := "no"
	if yes {
		key = "yes"
	}
	return selectCmd(c.source, key, ConfirmResult{Confirmed: yes})
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder
	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle, noStyle := c.styles.MenuItem, c.styles.MenuItemActive
	if c.yes {
		yesStyle, noStyle = noStyle, yesStyle
	}
	b.WriteString(yesStyle.Render("[Y] Yes") + "    " + noStyle.Render("[N] No"))
	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render("Tab: switch • Enter: confirm • Esc: cancel"))
	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	return 56, strings.Count(c.message, "\n") + 7
}
