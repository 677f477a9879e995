package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory groups bindings under a heading
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

const helpViewHeight = 20

// HelpOverlay displays the keybinding reference
type HelpOverlay struct {
	styles    *Styles
	simulated bool
	scroll    int
}

// NewHelpOverlay creates a help overlay. Time travel keys are listed only
// when the clock is simulated.
func NewHelpOverlay(simulated bool) *HelpOverlay {
	return &HelpOverlay{
		styles:    New(),
		simulated: simulated,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and closing
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	maxScroll := max(0, len(h.lines())-helpViewHeight)
	switch key.String() {
	case "esc", "q", "?":
		return h, closeCmd
	case "j", "down":
		h.scroll = min(h.scroll+1, maxScroll)
	case "k", "up":
		h.scroll = max(h.scroll-1, 0)
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = maxScroll
	}
	return h, nil
}

func (h *HelpOverlay) lines() []string {
	var lines []string
	for i, cat := range h.Categories() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.MenuHeader.Render(cat.Name+":"))
		for _, b := range cat.Bindings {
			lines = append(lines, "  "+h.styles.MenuKey.Render(padKey(b.Key))+"  "+h.styles.MenuItem.Render(b.Description))
		}
	}
	return lines
}

func padKey(k string) string {
	if n := 7 - len(k); n > 0 {
		return k + strings.Repeat(" ", n)
	}
	return k
}

// View renders the visible window of bindings
func (h *HelpOverlay) View() string {
	lines := h.lines()
	end := min(h.scroll+helpViewHeight, len(lines))
	out := strings.Join(lines[h.scroll:end], "\n")
	if len(lines) > helpViewHeight {
		out += "\n" + h.styles.Footer.Render("j/k: scroll • g/G: top/bottom • Esc: close")
	}
	return out
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Keys"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 56, helpViewHeight + 4
}

// Categories returns the bindings shown by the overlay
func (h *HelpOverlay) Categories() []KeyCategory {
	cats := []KeyCategory{
		{
			Name: "Views",
			Bindings: []KeyBinding{
				{Key: "1-5", Description: "Dashboard, briefing, factory, warehouse, sales"},
				{Key: "Tab", Description: "Next view (Shift+Tab previous)"},
				{Key: "r", Description: "Refresh the briefing"},
				{Key: "?", Description: "This help"},
				{Key: "q", Description: "Quit"},
			},
		},
		{
			Name: "Dashboard",
			Bindings: []KeyBinding{
				{Key: "S", Description: "Edit check-in hours"},
				{Key: "L", Description: "Load a scenario"},
			},
		},
		{
			Name: "Briefing",
			Bindings: []KeyBinding{
				{Key: "j/k", Description: "Move through tasks"},
				{Key: "Enter", Description: "Complete the selected task"},
				{Key: "c", Description: "Complete the active task"},
				{Key: "/", Description: "Search upcoming tasks"},
				{Key: "f", Description: "Filter upcoming tasks"},
				{Key: "s", Description: "Sort upcoming tasks"},
			},
		},
		{
			Name: "Factory",
			Bindings: []KeyBinding{
				{Key: "h/l", Description: "Move between service blocks"},
				{Key: "j/k", Description: "Move between houses"},
				{Key: "Space", Description: "House menu"},
				{Key: "a", Description: "Add a house"},
			},
		},
		{
			Name: "Warehouse",
			Bindings: []KeyBinding{
				{Key: "j/k", Description: "Select item"},
				{Key: "+/-", Description: "Adjust stock by one"},
				{Key: "e", Description: "Enter a stock level"},
			},
		},
		{
			Name: "Sales",
			Bindings: []KeyBinding{
				{Key: "s", Description: "Sell collected pets"},
				{Key: "p", Description: "Perfection attempt (uses one S-Pet)"},
			},
		},
	}
	if h.simulated {
		cats = append(cats, KeyCategory{
			Name: "Time travel",
			Bindings: []KeyBinding{
				{Key: "n/N", Description: "Jump to next/previous check-in"},
				{Key: ">", Description: "Advance one day"},
				{Key: "W", Description: "Advance one week"},
			},
		})
	}
	return cats
}
