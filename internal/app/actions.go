package app

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Argeon482/Pet-Farm/internal/core/completion"
	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/types"
	"github.com/Argeon482/Pet-Farm/internal/ui/overlay"
)

// handleSelection routes a menu choice by the menu that produced it
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	// sort and filter menus edit their state in place and stay open
	if msg.Source == overlay.SortSource || msg.Source == overlay.FilterSource {
		return m, nil
	}

	if confirm, ok := msg.Value.(overlay.ConfirmResult); ok {
		m.overlayStack.Pop()
		if !confirm.Confirmed {
			return m, nil
		}
		return m.handleConfirmed(msg.Source)
	}

	action, ok := msg.Value.(overlay.Action)
	if !ok {
		return m, nil
	}

	t := m.target
	switch msg.Source {
	case srcScenario:
		name := action.Value.(string)
		if len(m.svc.State().Houses) > 0 {
			m.pendingScenario = name
			return m, m.overlayStack.Replace(overlay.NewConfirmDialog(srcScenarioConfirm, "Load "+name,
				fmt.Sprintf("Replace the current %d houses?", len(m.svc.State().Houses))))
		}
		m.overlayStack.Pop()
		return m, m.loadScenarioCmd(name)

	case srcTemplate:
		tmpl := action.Value.(domain.HouseTemplate)
		m.overlayStack.Pop()
		return m, opCmd("Added "+string(tmpl)+" house", func() error {
			_, err := m.svc.AddHouses(tmpl, 1)
			return err
		})

	case srcHouse:
		return m.handleHouseAction(action)

	case srcSlot:
		return m.handleSlotAction(action)

	case srcRank:
		rank := action.Value.(domain.Rank)
		m.overlayStack.Pop()
		return m, opCmd(fmt.Sprintf("House %d slot %d NPC set to %s", t.house, t.slot+1, rankLabel(rank)), func() error {
			return m.svc.SetNPC(t.house, t.slot, rank)
		})

	case srcDivision:
		d := action.Value.(domain.Division)
		m.overlayStack.Pop()
		return m, opCmd(fmt.Sprintf("House %d moved to %s", t.house, d), func() error {
			return m.svc.SetDivision(t.house, d)
		})
	}
	return m, nil
}

func (m Model) handleConfirmed(source string) (tea.Model, tea.Cmd) {
	t := m.target
	switch source {
	case srcScenarioConfirm:
		name := m.pendingScenario
		m.pendingScenario = ""
		return m, m.loadScenarioCmd(name)
	case srcRemoveConfirm:
		return m, opCmd(fmt.Sprintf("Removed house %d", t.house), func() error {
			return m.svc.RemoveHouse(t.house)
		})
	case srcClearConfirm:
		return m, opCmd("Farm cleared", m.svc.ClearHouses)
	}
	return m, nil
}

func (m Model) loadScenarioCmd(name string) tea.Cmd {
	return opCmd("Loaded scenario "+name, func() error {
		return m.svc.LoadScenario(name)
	})
}

func (m Model) handleHouseAction(action overlay.Action) (tea.Model, tea.Cmd) {
	t := m.target
	house, ok := m.findHouse(t.house)
	if !ok {
		m.overlayStack.Pop()
		return m, nil
	}

	switch action.Key {
	case "1", "2", "3":
		m.target.slot = int(action.Key[0] - '1')
		return m, m.overlayStack.Replace(slotMenu(house, m.target.slot))
	case "v":
		return m, m.overlayStack.Replace(divisionMenu(house.Division))
	case "x":
		m.overlayStack.Pop()
		return m, opCmd(fmt.Sprintf("House %d reset", t.house), func() error {
			return m.svc.ResetHouse(t.house)
		})
	case "d":
		return m, m.overlayStack.Replace(overlay.NewConfirmDialog(srcRemoveConfirm, "Remove house",
			fmt.Sprintf("Remove house %d and its pets?", t.house)))
	}
	return m, nil
}

func (m Model) handleSlotAction(action overlay.Action) (tea.Model, tea.Cmd) {
	t := m.target
	where := fmt.Sprintf("House %d slot %d", t.house, t.slot+1)

	switch action.Key {
	case "r":
		house, _ := m.findHouse(t.house)
		return m, m.overlayStack.Replace(rankMenu(house, t.slot))
	case "s":
		m.overlayStack.Pop()
		return m, opCmd(where+": pet started", func() error {
			return m.svc.StartPet(t.house, t.slot)
		})
	case "i":
		m.overlayStack.Pop()
		return m, opCmd(where+": pet finished", func() error {
			return m.svc.InstantComplete(t.house, t.slot)
		})
	case "7", "5":
		days := 7
		if action.Key == "5" {
			days = 15
		}
		m.overlayStack.Pop()
		return m, opCmd(fmt.Sprintf("%s: %d-day NPC", where, days), func() error {
			return m.svc.SetNPCDuration(t.house, t.slot, days)
		})
	}
	return m, nil
}

// handleInput applies a submitted text dialog
func (m Model) handleInput(msg overlay.InputMsg) (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(msg.Value)
	switch msg.ID {
	case inputSchedule:
		sched, err := domain.ParseSchedule(value)
		if err != nil {
			m.addToast(types.ToastError, err.Error())
			return m, nil
		}
		return m, opCmd("Check-ins set to "+sched.String(), func() error {
			return m.svc.SetSchedule(sched)
		})

	case inputStock:
		n, err := strconv.Atoi(value)
		if err != nil {
			m.addToast(types.ToastError, err.Error())
			return m, nil
		}
		id := m.editItem
		return m, opCmd(fmt.Sprintf("%s stock set to %d", id, n), func() error {
			return m.svc.SetStock(id, n)
		})

	case inputSell:
		n, err := strconv.Atoi(value)
		if err != nil {
			m.addToast(types.ToastError, err.Error())
			return m, nil
		}
		svc := m.svc
		return m, func() tea.Msg {
			sale, err := svc.SellPets(domain.RankS, n, 0)
			if err != nil {
				return opDoneMsg{err: err}
			}
			return opDoneMsg{label: fmt.Sprintf("Sold %d S-Pets for %s", sale.Quantity, money(sale.Total))}
		}
	}
	return m, nil
}

// handleCompleted reports a completed task and reloads the session briefing
func (m Model) handleCompleted(msg completedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.addToast(types.ToastError, msg.err.Error())
		return m, nil
	}

	res := msg.result
	task := msg.task
	switch {
	case !res.Applied:
		m.addToast(types.ToastWarning, fmt.Sprintf("House %d slot %d changed since the briefing, skipped", task.HouseID, task.SlotIndex+1))
	case res.Placement == completion.PlacementCollected:
		m.addToast(types.ToastSuccess, "S-Pet collected")
	case res.Placement == completion.PlacementSlot:
		m.addToast(types.ToastSuccess, fmt.Sprintf("%s started in house %d slot %d", task.OutputRank.PetName(), res.PlacedHouse, res.PlacedSlot+1))
	case res.Placement == completion.PlacementQueued:
		m.addToast(types.ToastWarning, fmt.Sprintf("No free %s slot, %s queued in the warehouse", task.OutputRank, task.OutputRank.PetName()))
	default:
		m.addToast(types.ToastSuccess, "Task "+task.Key()+" done")
	}
	if res.Applied && !res.Restocked {
		m.addToast(types.ToastWarning, fmt.Sprintf("No %s in stock, house %d slot %d is idle", domain.FeedItemID(task.CurrentRank), task.HouseID, task.SlotIndex+1))
	}

	m.dueCursor++
	return m, m.loadBriefingCmd(false)
}

func (m Model) findHouse(id int) (domain.House, bool) {
	houses := m.svc.State().Houses
	i := domain.FindHouse(houses, id)
	if i < 0 {
		return domain.House{}, false
	}
	return houses[i], true
}

func houseMenu(h domain.House) *overlay.ActionMenu {
	actions := make([]overlay.Action, 0, domain.SlotsPerHouse+4)
	for i, s := range h.Slots {
		label := fmt.Sprintf("Slot %d: %s", i+1, slotSummary(s))
		actions = append(actions, overlay.Action{Key: strconv.Itoa(i + 1), Label: label, Enabled: true})
	}
	actions = append(actions,
		overlay.Separator(),
		overlay.Action{Key: "v", Label: "Change division", Enabled: true},
		overlay.Action{Key: "x", Label: "Reset house", Enabled: true},
		overlay.Action{Key: "d", Label: "Remove house", Enabled: true},
	)
	return overlay.NewActionMenu(srcHouse, fmt.Sprintf("House %d · %s", h.ID, h.Division), actions)
}

func slotMenu(h domain.House, slot int) *overlay.ActionMenu {
	s := h.Slots[slot]
	assigned := s.NPC.Assigned()
	actions := []overlay.Action{
		{Key: "r", Label: "Set NPC rank", Enabled: true},
		{Key: "7", Label: "7-day NPC", Enabled: assigned},
		{Key: "5", Label: "15-day NPC", Enabled: assigned},
		overlay.Separator(),
		{Key: "s", Label: "Start pet", Enabled: assigned && s.Pet.Empty()},
		{Key: "i", Label: "Finish pet now", Enabled: s.Pet.Scheduled()},
	}
	return overlay.NewActionMenu(srcSlot, fmt.Sprintf("House %d slot %d", h.ID, slot+1), actions)
}

// rankMenu offers every NPC rank not already used by another slot
func rankMenu(h domain.House, slot int) *overlay.ActionMenu {
	actions := make([]overlay.Action, 0, len(domain.NPCRanks)+2)
	for _, r := range domain.NPCRanks {
		actions = append(actions, overlay.Action{
			Key:     strings.ToLower(r.String()),
			Label:   r.String() + "-NPC  trains " + r.PetName(),
			Enabled: !h.HasRank(r, slot),
			Value:   r,
		})
	}
	actions = append(actions, overlay.Separator(),
		overlay.Action{Key: "-", Label: "No NPC", Enabled: true, Value: domain.RankNone})
	return overlay.NewActionMenu(srcRank, fmt.Sprintf("House %d slot %d NPC", h.ID, slot+1), actions)
}

func divisionMenu(current domain.Division) *overlay.ActionMenu {
	keys := map[domain.Division]string{
		domain.DivisionChampion: "c",
		domain.DivisionNursery:  "n",
		domain.DivisionFactory:  "f",
	}
	actions := make([]overlay.Action, 0, len(domain.Divisions))
	for _, d := range domain.Divisions {
		actions = append(actions, overlay.Action{Key: keys[d], Label: string(d), Enabled: d != current, Value: d})
	}
	return overlay.NewActionMenu(srcDivision, "Division", actions)
}

func slotSummary(s domain.Slot) string {
	if !s.NPC.Assigned() {
		return "no NPC"
	}
	out := s.NPC.Rank.String() + "-NPC"
	if s.Pet.Scheduled() {
		out += ", " + s.Pet.Name
	} else {
		out += ", idle"
	}
	return out
}

func rankLabel(r domain.Rank) string {
	if r == domain.RankNone {
		return "none"
	}
	return r.String()
}
