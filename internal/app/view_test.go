package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Argeon482/Pet-Farm/internal/types"
)

func lineCount(view string) int {
	return len(strings.Split(strings.TrimRight(view, "\n"), "\n"))
}

func TestViewHeight(t *testing.T) {
	m, _ := newTestModel(t)
	m.width = 80
	m.height = 24

	for _, v := range types.Views {
		t.Run(v.String(), func(t *testing.T) {
			m.view = v
			if got := lineCount(m.View()); got > m.height {
				t.Errorf("view is too tall: got %d lines, want %d", got, m.height)
			}
		})
	}

	t.Run("with overlay", func(t *testing.T) {
		m.overlayStack.Push(&testOverlay{})
		defer m.overlayStack.Pop()
		if got := lineCount(m.View()); got > m.height {
			t.Errorf("view with overlay is too tall: got %d lines", got)
		}
	})

	t.Run("with toasts", func(t *testing.T) {
		for i := 0; i < 6; i++ {
			m.toasts = append(m.toasts, types.Toast{Message: "test toast", Expires: time.Now().Add(time.Hour)})
		}
		if got := lineCount(m.View()); got > m.height {
			t.Errorf("view with toasts is too tall: got %d lines", got)
		}
	})
}

func TestView_Contents(t *testing.T) {
	tests := []struct {
		view types.View
		want []string
	}{
		{types.ViewDashboard, []string{"Weekly projection", "Cash", "Next check-in", "15:00"}},
		{types.ViewBriefing, []string{"Due now (3)", "2-1", "Upcoming before"}},
		{types.ViewFactory, []string{"House 1", "House 2"}},
		{types.ViewWarehouse, []string{"Warehouse", "Collected"}},
		{types.ViewSales, []string{"S-Pets held", "No sales yet"}},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			m, _ := newTestModel(t)
			m.view = tt.view
			view := m.View()
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q", want)
				}
			}
		})
	}
}

func TestView_SimulatedClock(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "SIM Mon Mar 10 12:00") {
		t.Error("header should show the simulated clock")
	}
}

func TestView_Loading(t *testing.T) {
	m, _ := newTestModel(t)
	m.loading = true
	if !strings.Contains(m.View(), "Loading farm") {
		t.Error("loading view should say so")
	}

	m.width = 0
	if m.View() != "Loading..." {
		t.Error("model without a size should render a placeholder")
	}
}

func TestView_OverlayTitle(t *testing.T) {
	m, _ := newTestModel(t)
	m.overlayStack.Push(&testOverlay{})
	view := m.View()
	if !strings.Contains(view, "Test") || !strings.Contains(view, "test overlay") {
		t.Error("overlay title and content should be drawn")
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "░░░░░░░░░░"},
		{0.5, "█████░░░░░"},
		{1, "██████████"},
		{1.5, "██████████"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.fraction); got != tt.want {
			t.Errorf("progressBar(%v) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{-time.Minute, "now"},
		{45 * time.Minute, "45m"},
		{3*time.Hour + 15*time.Minute, "3h 15m"},
		{52 * time.Hour, "2d 4h"},
	}
	for _, tt := range tests {
		if got := remaining(tt.d); got != tt.want {
			t.Errorf("remaining(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{140_000_000, "140.00M"},
		{2_500, "2.5K"},
		{-1_200_000_000, "-1.20B"},
		{99, "99"},
	}
	for _, tt := range tests {
		if got := money(tt.v); got != tt.want {
			t.Errorf("money(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

type testOverlay struct{}

func (o *testOverlay) View() string                            { return "test overlay" }
func (o *testOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return o, nil }
func (o *testOverlay) Init() tea.Cmd                           { return nil }
func (o *testOverlay) Title() string                           { return "Test" }
func (o *testOverlay) Size() (int, int)                        { return 20, 10 }
