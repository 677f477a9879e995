package app

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/services/snapshot"
	"github.com/Argeon482/Pet-Farm/internal/types"
	"github.com/Argeon482/Pet-Farm/internal/ui/overlay"
)

// Overlay sources
const (
	srcScenario        = "scenario"
	srcScenarioConfirm = "scenario-confirm"
	srcTemplate        = "template"
	srcHouse           = "house"
	srcSlot            = "slot"
	srcRank            = "rank"
	srcDivision        = "division"
	srcRemoveConfirm   = "remove-confirm"
	srcClearConfirm    = "clear-confirm"

	inputSchedule = "schedule"
	inputStock    = "stock"
	inputSell     = "sell"
)

// handleKey processes keyboard input when no overlay is open
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.sim != nil))
	case "tab":
		m.view = m.view.Next()
		return m, nil
	case "shift+tab":
		m.view = m.view.Prev()
		return m, nil
	case "1", "2", "3", "4", "5":
		m.view = types.Views[int(key[0]-'1')]
		return m, nil
	case "r":
		m.addToast(types.ToastInfo, "Briefing refreshed")
		return m, m.loadBriefingCmd(true)
	}

	if m.sim != nil {
		if model, cmd, ok := m.handleTimeTravel(key); ok {
			return model, cmd
		}
	}

	switch m.view {
	case types.ViewDashboard:
		return m.handleDashboardKey(key)
	case types.ViewBriefing:
		return m.handleBriefingKey(key)
	case types.ViewFactory:
		return m.handleFactoryKey(key)
	case types.ViewWarehouse:
		return m.handleWarehouseKey(key)
	case types.ViewSales:
		return m.handleSalesKey(key)
	}
	return m, nil
}

// handleTimeTravel moves the simulated clock and opens a new check-in session
func (m Model) handleTimeTravel(key string) (tea.Model, tea.Cmd, bool) {
	var label string
	switch key {
	case "n", "N":
		forward := key == "n"
		at, ok := m.sim.SkipToCheckin(m.svc.State().Checkins, forward)
		if !ok {
			m.addToast(types.ToastWarning, "No check-in hours configured")
			return m, nil, true
		}
		label = "Check-in " + at.Format("Mon 15:04")
	case ">":
		label = "+1 day: " + m.sim.AdvanceDays(1).Format("Mon 15:04")
	case "W":
		label = "+1 week: " + m.sim.AdvanceWeeks(1).Format("Mon Jan 2 15:04")
	default:
		return m, nil, false
	}
	m.logger.Debug("time travel", "now", m.sim.Now())
	m.addToast(types.ToastInfo, label)
	return m, m.loadBriefingCmd(true), true
}

func (m Model) handleDashboardKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "S":
		dlg := overlay.NewInputDialog(inputSchedule, "Check-in hours", "Hours of day, comma separated",
			hoursCSV(m.svc.State().Checkins), validateSchedule)
		return m, m.overlayStack.Push(dlg)
	case "L":
		var actions []overlay.Action
		for i, s := range snapshot.Scenarios() {
			actions = append(actions, overlay.Action{
				Key:     strconv.Itoa(i + 1),
				Label:   s.Name + "  " + s.Description,
				Enabled: true,
				Value:   s.Name,
			})
		}
		return m, m.overlayStack.Push(overlay.NewActionMenu(srcScenario, "Load scenario", actions))
	}
	return m, nil
}

func (m Model) handleBriefingKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		m.dueCursor = clampIndex(m.dueCursor+1, len(m.brief.Due))
	case "k", "up":
		m.dueCursor = clampIndex(m.dueCursor-1, len(m.brief.Due))
	case "enter":
		if len(m.brief.Due) == 0 {
			return m, nil
		}
		return m, m.completeCmd(m.brief.Due[m.dueCursor])
	case "c":
		task, ok := m.svc.ActiveTask()
		if !ok {
			m.addToast(types.ToastInfo, "All due tasks are done")
			return m, nil
		}
		return m, m.completeCmd(task)
	case "/":
		s := overlay.NewSearchOverlay(m.upcomingFilter.SearchQuery)
		s.SetMatchCount(len(m.upcoming()))
		return m, m.overlayStack.Push(s)
	case "f":
		blocks, _ := m.brief.UpcomingByBlock()
		return m, m.overlayStack.Push(overlay.NewFilterMenu(m.upcomingFilter, blocks))
	case "s":
		return m, m.overlayStack.Push(overlay.NewSortMenu(m.upcomingSort))
	}
	return m, nil
}

func (m Model) handleFactoryKey(key string) (tea.Model, tea.Cmd) {
	cols := m.columns()
	switch key {
	case "h", "left":
		m.cursor.Column--
		m.cursor.House = 0
	case "l", "right":
		m.cursor.Column++
		m.cursor.House = 0
	case "j", "down":
		m.cursor.House++
	case "k", "up":
		m.cursor.House--
	case "a":
		var actions []overlay.Action
		for i, t := range domain.Templates {
			actions = append(actions, overlay.Action{
				Key: strconv.Itoa(i + 1), Label: string(t), Enabled: true, Value: t,
			})
		}
		return m, m.overlayStack.Push(overlay.NewActionMenu(srcTemplate, "Add house", actions))
	case "D":
		if len(m.svc.State().Houses) == 0 {
			return m, nil
		}
		return m, m.overlayStack.Push(overlay.NewConfirmDialog(srcClearConfirm, "Clear farm",
			fmt.Sprintf("Remove all %d houses?", len(m.svc.State().Houses))))
	case " ", "space", "enter":
		h, ok := m.cursor.Clamp(cols).Selected(cols)
		if !ok {
			return m, nil
		}
		m.target = target{house: h.ID}
		return m, m.overlayStack.Push(houseMenu(h))
	}
	m.cursor = m.cursor.Clamp(cols)
	return m, nil
}

func (m Model) handleWarehouseKey(key string) (tea.Model, tea.Cmd) {
	items := m.svc.State().Warehouse
	if len(items) == 0 {
		return m, nil
	}
	m.itemCursor = clampIndex(m.itemCursor, len(items))
	item := items[m.itemCursor]

	switch key {
	case "j", "down":
		m.itemCursor = clampIndex(m.itemCursor+1, len(items))
	case "k", "up":
		m.itemCursor = clampIndex(m.itemCursor-1, len(items))
	case "+", "=":
		return m, opCmd("", func() error { return m.svc.SetStock(item.ID, item.Stock+1) })
	case "-":
		if item.Stock == 0 {
			return m, nil
		}
		return m, opCmd("", func() error { return m.svc.SetStock(item.ID, item.Stock-1) })
	case "e":
		dlg := overlay.NewInputDialog(inputStock, item.Name, "Stock level", strconv.Itoa(item.Stock), validateCount)
		m.editItem = item.ID
		return m, m.overlayStack.Push(dlg)
	}
	return m, nil
}

func (m Model) handleSalesKey(key string) (tea.Model, tea.Cmd) {
	held := m.svc.State().Collected.Quantity(domain.RankS)
	switch key {
	case "s":
		if held == 0 {
			m.addToast(types.ToastWarning, "No S-Pets to sell")
			return m, nil
		}
		dlg := overlay.NewInputDialog(inputSell, "Sell S-Pets",
			fmt.Sprintf("Quantity (%d held)", held), strconv.Itoa(held), validatePositive)
		return m, m.overlayStack.Push(dlg)
	case "p":
		return m, opCmd("Perfection attempt recorded", func() error {
			_, err := m.svc.AttemptPerfection()
			return err
		})
	}
	return m, nil
}

func hoursCSV(s domain.Schedule) string {
	parts := make([]string, len(s))
	for i, h := range s {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, ",")
}

func validateSchedule(v string) error {
	s, err := domain.ParseSchedule(v)
	if err != nil {
		return err
	}
	if len(s) == 0 {
		return fmt.Errorf("enter at least one hour")
	}
	return nil
}

func validateCount(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number of zero or more")
	}
	return nil
}

func validatePositive(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a whole number above zero")
	}
	return nil
}
