package overlay

import (
	"strings"
	"testing"
)

func houseActions() []Action {
	return []Action{
		{Key: "s", Label: "Start pet", Enabled: false},
		{Key: "n", Label: "Set NPC", Enabled: true, Value: 7},
		Separator(),
		{Key: "d", Label: "Remove house", Enabled: true},
	}
}

func TestActionMenu_CursorSkipsDisabledAndSeparators(t *testing.T) {
	m := NewActionMenu("house", "House 3", houseActions())
	if m.Cursor() != 1 {
		t.Fatalf("initial cursor = %d, want 1 (first enabled)", m.Cursor())
	}

	m.Update(key("j"))
	if m.Cursor() != 3 {
		t.Errorf("cursor after j = %d, want 3", m.Cursor())
	}
	m.Update(key("j"))
	if m.Cursor() != 1 {
		t.Errorf("cursor should wrap to 1, got %d", m.Cursor())
	}
	m.Update(key("k"))
	if m.Cursor() != 3 {
		t.Errorf("cursor after k = %d, want 3", m.Cursor())
	}
}

func TestActionMenu_Select(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		wantKey string
		wantOK  bool
	}{
		{"enter selects cursor", []string{"enter"}, "n", true},
		{"direct key", []string{"d"}, "d", true},
		{"disabled key ignored", []string{"s"}, "", false},
		{"unknown key ignored", []string{"z"}, "", false},
		{"move then enter", []string{"j", "enter"}, "d", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewActionMenu("house", "House 3", houseActions())
			var sel SelectionMsg
			var ok bool
			for _, k := range tt.keys {
				_, cmd := m.Update(key(k))
				if s, found := findSelection(run(cmd)); found {
					sel, ok = s, true
				}
			}
			if ok != tt.wantOK {
				t.Fatalf("selected = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if sel.Source != "house" || sel.Key != tt.wantKey {
				t.Errorf("selection = %+v, want source house key %s", sel, tt.wantKey)
			}
			if _, isAction := sel.Value.(Action); !isAction {
				t.Errorf("Value should be the Action, got %T", sel.Value)
			}
		})
	}
}

func TestActionMenu_ValueCarried(t *testing.T) {
	m := NewActionMenu("npc", "NPC", houseActions())
	_, cmd := m.Update(key("n"))
	sel, _ := findSelection(run(cmd))
	if v := sel.Value.(Action).Value; v != 7 {
		t.Errorf("Value = %v, want 7", v)
	}
}

func TestActionMenu_Close(t *testing.T) {
	m := NewActionMenu("house", "House", houseActions())
	for _, k := range []string{"esc", "q"} {
		_, cmd := m.Update(key(k))
		if !hasClose(run(cmd)) {
			t.Errorf("%s should close the menu", k)
		}
	}
}

func TestActionMenu_View(t *testing.T) {
	m := NewActionMenu("house", "House 3", houseActions())
	view := m.View()
	for _, want := range []string{"[n]", "Set NPC", "Remove house", "────"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.Title() != "House 3" {
		t.Errorf("Title() = %q", m.Title())
	}
}

func TestActionMenu_NoEnabledEntries(t *testing.T) {
	m := NewActionMenu("x", "Empty", []Action{{Key: "a", Label: "off"}})
	if m.Cursor() != -1 {
		t.Errorf("cursor = %d, want -1", m.Cursor())
	}
	if _, cmd := m.Update(key("enter")); cmd != nil {
		t.Error("enter with no enabled entry should do nothing")
	}
}
