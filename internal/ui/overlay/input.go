package overlay

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputMsg carries the submitted value of an InputDialog
type InputMsg struct {
	ID    string
	Value string
}

// Validator rejects a value before it is submitted
type Validator func(string) error

// InputDialog asks for a single line of text, e.g. a sale quantity or a
// list of check-in hours
type InputDialog struct {
	id       string
	title    string
	prompt   string
	input    textinput.Model
	validate Validator
	err      error
	styles   *Styles
}

// NewInputDialog creates a dialog; validate may be nil
func NewInputDialog(id, title, prompt, initial string, validate Validator) *InputDialog {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 36
	ti.SetValue(initial)
	ti.Focus()

	return &InputDialog{
		id:       id,
		title:    title,
		prompt:   prompt,
		input:    ti,
		validate: validate,
		styles:   New(),
	}
}

// Init implements tea.Model
func (d *InputDialog) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Enter submits a valid value and closes.
func (d *InputDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return d, closeCmd
		case tea.KeyEnter:
			value := d.input.Value()
			if d.validate != nil {
				if err := d.validate(value); err != nil {
					d.err = err
					return d, nil
				}
			}
			id := d.id
			return d, tea.Batch(
				closeCmd,
				func() tea.Msg { return InputMsg{ID: id, Value: value} },
			)
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	d.err = nil
	return d, cmd
}

// Err returns the last validation error
func (d *InputDialog) Err() error {
	return d.err
}

// Value returns the current text
func (d *InputDialog) Value() string {
	return d.input.Value()
}

// View implements tea.Model
func (d *InputDialog) View() string {
	out := d.styles.Prompt.Render(d.prompt) + "\n" + d.input.View()
	if d.err != nil {
		out += "\n" + d.styles.Error.Render(d.err.Error())
	}
	return out + "\n" + d.styles.Footer.Render("Enter: save • Esc: cancel")
}

// Title returns the dialog title
func (d *InputDialog) Title() string {
	return d.title
}

// Size returns the dialog dimensions
func (d *InputDialog) Size() (width, height int) {
	return 48, 8
}
