package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/logging"
	"github.com/Argeon482/Pet-Farm/internal/services/clock"
	"github.com/Argeon482/Pet-Farm/internal/services/farm"
	"github.com/Argeon482/Pet-Farm/internal/services/snapshot"
	"github.com/Argeon482/Pet-Farm/internal/types"
	"github.com/Argeon482/Pet-Farm/internal/ui/overlay"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// testFarm has three due slots, completed in the order 2-1, 1-1, 1-0:
//
//	house 1 (Nursery): F finished 1h ago, E finished 2h ago, slot 3 empty
//	house 2 (Factory): E slot idle, A finished 30m ago, slot 3 empty
func testFarm() snapshot.State {
	st := snapshot.New(100, domain.DefaultPrices(), domain.Schedule{9, 15, 21})
	finished := func(r domain.Rank, ago time.Duration) domain.Slot {
		return domain.Slot{
			NPC: domain.NPC{Rank: r, Days: 15, Expiration: testNow.Add(240 * time.Hour)},
			Pet: domain.Pet{Name: r.PetName(), Start: testNow.Add(-100 * time.Hour), Finish: testNow.Add(-ago)},
		}
	}

	h1 := domain.House{ID: 1, Division: domain.DivisionNursery}
	h1.Slots[0] = finished(domain.RankF, time.Hour)
	h1.Slots[1] = finished(domain.RankE, 2*time.Hour)

	h2 := domain.House{ID: 2, Division: domain.DivisionFactory}
	h2.Slots[0].NPC = domain.NPC{Rank: domain.RankE, Days: 7}
	h2.Slots[1] = finished(domain.RankA, 30*time.Minute)

	st.Houses = []domain.House{h1, h2}
	st.Warehouse[st.Warehouse.Find(domain.FeedItemID(domain.RankF))].Stock = 3
	return st
}

// newTestModel returns a loaded model on a simulated clock
func newTestModel(t *testing.T) (Model, *clock.Simulated) {
	t.Helper()
	clk := clock.NewSimulated(testNow)
	svc := farm.NewService(testFarm(), clk, farm.Options{Store: &farm.MemoryStore{}}, logging.Discard())
	m := New(svc, Options{Simulated: clk, Logger: logging.Discard()})
	m.width = 120
	m.height = 32
	m = settle(t, m, m.loadBriefingCmd(false))
	return m, clk
}

// run executes cmd and flattens batches
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

// settle feeds the model's own messages back until none are left. Cursor
// blinks and ticks are dropped.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range run(cmd) {
		switch msg.(type) {
		case briefingMsg, opDoneMsg, completedMsg,
			overlay.SelectionMsg, overlay.InputMsg, overlay.CloseOverlayMsg, overlay.SearchMsg:
			next, c := m.Update(msg)
			m = settle(t, next.(Model), c)
		}
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(keyMsg(k))
		m = settle(t, next.(Model), cmd)
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func lastToast(m Model) types.Toast {
	if len(m.toasts) == 0 {
		return types.Toast{}
	}
	return m.toasts[len(m.toasts)-1]
}

func TestModel_LoadsBriefing(t *testing.T) {
	m, _ := newTestModel(t)

	if m.loading {
		t.Error("model should stop loading after the first briefing")
	}
	if len(m.brief.Due) != 3 {
		t.Fatalf("due tasks = %d, want 3", len(m.brief.Due))
	}
	if got := m.brief.Due[0].Key(); got != "2-1" {
		t.Errorf("first due task = %s, want 2-1", got)
	}
}

func TestModel_ViewSwitching(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want types.View
	}{
		{"number key", []string{"3"}, types.ViewFactory},
		{"tab", []string{"tab"}, types.ViewBriefing},
		{"shift+tab wraps", []string{"shift+tab"}, types.ViewSales},
		{"tab from sales wraps", []string{"5", "tab"}, types.ViewDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			m = press(t, m, tt.keys...)
			if m.view != tt.want {
				t.Errorf("view = %s, want %s", m.view, tt.want)
			}
		})
	}
}

func TestModel_CompleteInOrder(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "2", "c")

	if done, _ := m.svc.Progress(); done != 1 {
		t.Fatalf("done = %d, want 1", done)
	}
	if got := m.svc.State().Collected.Quantity(domain.RankS); got != 1 {
		t.Errorf("collected S = %d, want 1", got)
	}
	if m.dueCursor != 1 {
		t.Errorf("cursor should move to the next task, got %d", m.dueCursor)
	}

	m = press(t, m, "enter")
	if done, _ := m.svc.Progress(); done != 2 {
		t.Errorf("done = %d after enter, want 2", done)
	}
}

func TestModel_CompleteOutOfOrderRefused(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "2", "j", "enter")

	if done, _ := m.svc.Progress(); done != 0 {
		t.Errorf("done = %d, want 0", done)
	}
	if lastToast(m).Level != types.ToastError {
		t.Errorf("expected an error toast, got %+v", lastToast(m))
	}
}

func TestModel_TimeTravel(t *testing.T) {
	tests := []struct {
		key  string
		want time.Time
	}{
		{"n", time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)},
		{"N", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		{">", testNow.AddDate(0, 0, 1)},
		{"W", testNow.AddDate(0, 0, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, clk := newTestModel(t)
			m = press(t, m, tt.key)
			if !clk.Now().Equal(tt.want) {
				t.Errorf("clock = %s, want %s", clk.Now(), tt.want)
			}
			if !m.brief.GeneratedAt.Equal(tt.want) {
				t.Errorf("briefing generated at %s, want %s", m.brief.GeneratedAt, tt.want)
			}
		})
	}
}

func TestModel_TimeTravelNeedsSimulatedClock(t *testing.T) {
	clk := clock.NewSimulated(testNow)
	svc := farm.NewService(testFarm(), clk, farm.Options{}, logging.Discard())
	m := New(svc, Options{Logger: logging.Discard()})
	m = settle(t, m, m.loadBriefingCmd(false))

	m = press(t, m, "n", ">")
	if !clk.Now().Equal(testNow) {
		t.Errorf("clock moved without time travel enabled: %s", clk.Now())
	}
}

func TestModel_AddHouseFromTemplateMenu(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "3", "a")
	if m.overlayStack.IsEmpty() {
		t.Fatal("a should open the template menu")
	}

	m = press(t, m, "5") // EMPTY
	if !m.overlayStack.IsEmpty() {
		t.Error("menu should close after choosing")
	}
	houses := m.svc.State().Houses
	if len(houses) != 3 || houses[2].ID != 3 {
		t.Errorf("houses = %+v, want a third house", houses)
	}
}

func TestModel_RemoveHouseNeedsConfirmation(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "3", "space", "d", "n")
	if len(m.svc.State().Houses) != 2 {
		t.Fatal("declining should keep the house")
	}

	m = press(t, m, "space", "d", "y")
	houses := m.svc.State().Houses
	if len(houses) != 1 || houses[0].ID != 2 {
		t.Errorf("houses = %+v, want only house 2", houses)
	}
}

func TestModel_SetNPCRankThroughMenus(t *testing.T) {
	m, _ := newTestModel(t)
	// house 1 is the first card of the Nursery column
	m = press(t, m, "3", "space", "3", "r", "d")

	slot := m.svc.State().Houses[0].Slots[2]
	if slot.NPC.Rank != domain.RankD {
		t.Errorf("slot 3 NPC = %s, want D", slot.NPC.Rank)
	}
	if !m.overlayStack.IsEmpty() {
		t.Error("all menus should be closed")
	}
}

func TestModel_RankMenuBlocksDuplicateRank(t *testing.T) {
	m, _ := newTestModel(t)
	// slot 3 of house 1 may not take F, slot 1 already has it
	m = press(t, m, "3", "space", "3", "r", "f")

	if got := m.svc.State().Houses[0].Slots[2].NPC.Rank; got != domain.RankNone {
		t.Errorf("slot 3 NPC = %s, want none", got)
	}
}

func TestModel_ScheduleInput(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "S")
	if _, ok := m.overlayStack.Current().(*overlay.InputDialog); !ok {
		t.Fatalf("S should open the schedule dialog, got %T", m.overlayStack.Current())
	}

	m = settle(t, m, func() tea.Msg { return overlay.InputMsg{ID: inputSchedule, Value: "20, 8"} })
	got := m.svc.State().Checkins
	if len(got) != 2 || hoursCSV(got) != "8,20" {
		t.Errorf("checkins = %v, want 8,20", got)
	}

	m = settle(t, m, func() tea.Msg { return overlay.InputMsg{ID: inputSchedule, Value: "25"} })
	if lastToast(m).Level != types.ToastError {
		t.Error("an invalid hour should raise an error toast")
	}
}

func TestModel_SellCollectedPets(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "2", "c")
	cash := m.svc.State().Cash

	m = press(t, m, "5", "s")
	if _, ok := m.overlayStack.Current().(*overlay.InputDialog); !ok {
		t.Fatal("s should open the sell dialog")
	}
	m.overlayStack.Pop()
	m = settle(t, m, func() tea.Msg { return overlay.InputMsg{ID: inputSell, Value: "1"} })

	st := m.svc.State()
	if st.Collected.Quantity(domain.RankS) != 0 {
		t.Error("sold pet should leave the collection")
	}
	if want := cash + st.Prices.Price(domain.RankS); st.Cash != want {
		t.Errorf("cash = %v, want %v", st.Cash, want)
	}
	if len(st.Sales) != 1 {
		t.Errorf("sales = %d, want 1", len(st.Sales))
	}
}

func TestModel_SellWithNothingHeld(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "5", "s")
	if !m.overlayStack.IsEmpty() {
		t.Error("sell dialog should not open with no S-Pets")
	}
	if lastToast(m).Level != types.ToastWarning {
		t.Error("expected a warning toast")
	}
}

func TestModel_WarehouseStockKeys(t *testing.T) {
	m, _ := newTestModel(t)
	id := m.svc.State().Warehouse[0].ID
	before := m.svc.State().Warehouse.Stock(id)

	m = press(t, m, "4", "+", "+", "-")
	if got := m.svc.State().Warehouse.Stock(id); got != before+1 {
		t.Errorf("stock = %d, want %d", got, before+1)
	}

	m = press(t, m, "e")
	m.overlayStack.Pop()
	m = settle(t, m, func() tea.Msg { return overlay.InputMsg{ID: inputStock, Value: "42"} })
	if got := m.svc.State().Warehouse.Stock(id); got != 42 {
		t.Errorf("stock = %d, want 42", got)
	}
}

func TestModel_LoadScenarioAsksBeforeReplacing(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "L")

	menu, ok := m.overlayStack.Current().(*overlay.ActionMenu)
	if !ok {
		t.Fatalf("L should open the scenario menu, got %T", m.overlayStack.Current())
	}
	if !strings.Contains(menu.View(), "two-house") {
		t.Error("menu should list the two-house scenario")
	}

	key := ""
	for i, s := range snapshot.Scenarios() {
		if s.Name == "two-house" {
			key = string(rune('1' + i))
		}
	}
	m = press(t, m, key)
	if _, ok := m.overlayStack.Current().(*overlay.ConfirmDialog); !ok {
		t.Fatalf("existing houses should ask for confirmation, got %T", m.overlayStack.Current())
	}

	m = press(t, m, "y")
	if got := m.svc.State().Scenario; got != "two-house" {
		t.Errorf("scenario = %q, want two-house", got)
	}
	if !m.overlayStack.IsEmpty() {
		t.Error("overlays should be closed")
	}
}

func TestModel_SearchFiltersUpcoming(t *testing.T) {
	m, _ := newTestModel(t)
	m.brief.Upcoming = []domain.Task{
		{HouseID: 1, SlotIndex: 0, CurrentPet: "F-Pet", Description: "Swap F-Pet", ServiceBlock: "Nursery Block A", FinishAt: testNow.Add(time.Hour)},
		{HouseID: 2, SlotIndex: 2, CurrentPet: "A-Pet", Description: "Collect S-Pet", ServiceBlock: "Factory Block A", FinishAt: testNow.Add(30 * time.Minute)},
	}

	m = settle(t, m, func() tea.Msg { return overlay.SearchMsg{Query: "a-pet"} })
	got := m.upcoming()
	if len(got) != 1 || got[0].Key() != "2-2" {
		t.Errorf("upcoming = %+v, want only 2-2", got)
	}

	m = settle(t, m, func() tea.Msg { return overlay.SearchMsg{} })
	got = m.upcoming()
	if len(got) != 2 {
		t.Fatalf("upcoming = %d, want 2 after clearing", len(got))
	}
	if got[0].Key() != "2-2" {
		t.Errorf("upcoming should sort by finish, first = %s", got[0].Key())
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "?")
	if _, ok := m.overlayStack.Current().(*overlay.HelpOverlay); !ok {
		t.Fatal("? should open help")
	}
	m = press(t, m, "esc")
	if !m.overlayStack.IsEmpty() {
		t.Error("esc should close help")
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_ExpireToasts(t *testing.T) {
	m, _ := newTestModel(t)
	m.toasts = []types.Toast{
		{Message: "old", Expires: time.Now().Add(-time.Second)},
		{Message: "new", Expires: time.Now().Add(time.Minute)},
	}
	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if len(m.toasts) != 1 || m.toasts[0].Message != "new" {
		t.Errorf("toasts = %+v", m.toasts)
	}
}
