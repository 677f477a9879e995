package overlay

import tea "github.com/charmbracelet/bubbletea"

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and flattens batches into their messages
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findSelection(msgs []tea.Msg) (SelectionMsg, bool) {
	for _, m := range msgs {
		if sel, ok := m.(SelectionMsg); ok {
			return sel, true
		}
	}
	return SelectionMsg{}, false
}

func hasClose(msgs []tea.Msg) bool {
	for _, m := range msgs {
		if _, ok := m.(CloseOverlayMsg); ok {
			return true
		}
	}
	return false
}
