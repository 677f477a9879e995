package overlay

import (
	"strings"
	"testing"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

func TestFilterMenu(t *testing.T) {
	blocks := []string{"Starter Block A", "Starter Block B", "Champion"}

	tests := []struct {
		name  string
		keys  []string
		check func(t *testing.T, f *domain.Filter)
	}{
		{"block", []string{"b", "2"}, func(t *testing.T, f *domain.Filter) {
			if !f.Block["Starter Block B"] || len(f.Block) != 1 {
				t.Errorf("Block = %v", f.Block)
			}
		}},
		{"block out of range", []string{"b", "7"}, func(t *testing.T, f *domain.Filter) {
			if len(f.Block) != 0 {
				t.Errorf("Block = %v, want empty", f.Block)
			}
		}},
		{"block toggled twice", []string{"b", "1", "b", "1"}, func(t *testing.T, f *domain.Filter) {
			if len(f.Block) != 0 {
				t.Errorf("Block = %v, want empty", f.Block)
			}
		}},
		{"rank", []string{"r", "s"}, func(t *testing.T, f *domain.Filter) {
			if !f.OutputRank[domain.RankS] {
				t.Errorf("OutputRank = %v", f.OutputRank)
			}
		}},
		{"collect", []string{"o"}, func(t *testing.T, f *domain.Filter) {
			if !f.Action[domain.ActionCollect] {
				t.Errorf("Action = %v", f.Action)
			}
		}},
		{"swap", []string{"w"}, func(t *testing.T, f *domain.Filter) {
			if !f.Action[domain.ActionSwap] {
				t.Errorf("Action = %v", f.Action)
			}
		}},
		{"clear", []string{"w", "r", "a", "c"}, func(t *testing.T, f *domain.Filter) {
			if f.IsActive() {
				t.Error("clear should reset all filters")
			}
		}},
		{"esc leaves sub mode", []string{"b", "esc", "o"}, func(t *testing.T, f *domain.Filter) {
			if len(f.Block) != 0 || !f.Action[domain.ActionCollect] {
				t.Errorf("filter = %+v", f)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := domain.NewFilter()
			m := NewFilterMenu(f, blocks)
			for _, k := range tt.keys {
				m.Update(key(k))
			}
			tt.check(t, f)
		})
	}
}

func TestFilterMenu_EmitsChange(t *testing.T) {
	m := NewFilterMenu(domain.NewFilter(), nil)
	_, cmd := m.Update(key("o"))
	sel, ok := findSelection(run(cmd))
	if !ok || sel.Source != FilterSource {
		t.Fatalf("selection = %+v, %v", sel, ok)
	}

	_, cmd = m.Update(key("esc"))
	if !hasClose(run(cmd)) {
		t.Error("esc in normal mode should close")
	}
}

func TestFilterMenu_View(t *testing.T) {
	f := domain.NewFilter()
	m := NewFilterMenu(f, []string{"Starter Block A"})
	m.Update(key("b"))
	if !strings.Contains(m.View(), "Starter Block A") {
		t.Error("block mode should list blocks")
	}
	m.Update(key("1"))
	view := m.View()
	if !strings.Contains(view, "Starter Block A") || !strings.Contains(view, "filters active") {
		t.Errorf("summary should show active block filter:\n%s", view)
	}
}
