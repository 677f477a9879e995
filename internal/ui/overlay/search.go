package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchMsg is emitted on every keystroke for live filtering
type SearchMsg struct {
	Query string
}

// SearchOverlay is a one-line search bar for the upcoming task list
type SearchOverlay struct {
	input      textinput.Model
	matchCount int
	styles     *Styles
}

// NewSearchOverlay creates a search bar seeded with the current query
func NewSearchOverlay(query string) *SearchOverlay {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "pet, task or house-slot..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.SetValue(query)
	ti.Focus()

	return &SearchOverlay{input: ti, styles: New()}
}

// SetMatchCount updates the match count display
func (s *SearchOverlay) SetMatchCount(count int) {
	s.matchCount = count
}

// Init implements tea.Model
func (s *SearchOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Enter keeps the query, Esc clears it.
func (s *SearchOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			return s, closeCmd
		case tea.KeyEsc:
			s.input.SetValue("")
			return s, tea.Batch(
				func() tea.Msg { return SearchMsg{} },
				closeCmd,
			)
		}
	}

	prev := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if q := s.input.Value(); q != prev {
		return s, tea.Batch(cmd, func() tea.Msg { return SearchMsg{Query: q} })
	}
	return s, cmd
}

// View implements tea.Model
func (s *SearchOverlay) View() string {
	view := s.input.View()
	if s.input.Value() != "" {
		view += s.styles.Footer.UnsetMarginTop().Render(fmt.Sprintf(" (%d matches)", s.matchCount))
	}
	return view
}

// Title is empty; the search bar has no frame title
func (s *SearchOverlay) Title() string {
	return ""
}

// Size implements Overlay
func (s *SearchOverlay) Size() (width, height int) {
	return 60, 1
}
