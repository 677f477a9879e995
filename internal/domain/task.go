package domain

import (
	"fmt"
	"time"
)

// Action is what the user must do with a finished slot
type Action int

const (
	ActionSwap Action = iota
	ActionCollect
)

// String returns the display string
func (a Action) String() string {
	switch a {
	case ActionSwap:
		return "swap"
	case ActionCollect:
		return "collect"
	default:
		return "unknown"
	}
}

// Task is a derived briefing entry for one finished (or soon finished) slot.
// Tasks are regenerated on every briefing pass and never stored.
type Task struct {
	HouseID      int       `json:"houseId"`
	SlotIndex    int       `json:"slotIndex"`
	CurrentPet   string    `json:"currentPet"`
	Action       Action    `json:"action"`
	Description  string    `json:"task"`
	FinishAt     time.Time `json:"finishAt"`
	ServiceBlock string    `json:"serviceBlock"`
	CurrentRank  Rank      `json:"currentRank"`
	// OutputRank is the rank the slot's NPC just produced (S for collection)
	OutputRank Rank `json:"outputRank"`
}

// Key identifies the task's slot, e.g. "12-0"
func (t Task) Key() string {
	return TaskKey(t.HouseID, t.SlotIndex)
}

// TaskKey builds the "<house>-<slot>" key used by checklists
func TaskKey(houseID, slot int) string {
	return fmt.Sprintf("%d-%d", houseID, slot)
}

// ParseTaskKey splits a "<house>-<slot>" key. Slot numbers are 0-based.
func ParseTaskKey(key string) (houseID, slot int, err error) {
	if _, err := fmt.Sscanf(key, "%d-%d", &houseID, &slot); err != nil {
		return 0, 0, fmt.Errorf("invalid task key %q: %w", key, err)
	}
	if slot < 0 || slot >= SlotsPerHouse {
		return 0, 0, fmt.Errorf("invalid task key %q: slot out of range", key)
	}
	return houseID, slot, nil
}

// NewTask derives the task for a slot with a scheduled pet. It returns false
// when the slot's NPC rank cannot produce anything (unset, or not F..A).
func NewTask(h House, slot int, block string) (Task, bool) {
	s := h.Slots[slot]
	rank := s.NPC.Rank
	if !rank.IsNPC() {
		return Task{}, false
	}
	output, ok := rank.Next()
	if !ok {
		return Task{}, false
	}

	pet := s.Pet.Name
	if pet == "" {
		pet = rank.PetName()
	}

	t := Task{
		HouseID:      h.ID,
		SlotIndex:    slot,
		CurrentPet:   pet,
		FinishAt:     s.Pet.Finish,
		ServiceBlock: block,
		CurrentRank:  rank,
		OutputRank:   output,
	}
	if output == RankS {
		t.Action = ActionCollect
		t.Description = fmt.Sprintf("Ready for collection (%s)", output.PetName())
	} else {
		t.Action = ActionSwap
		t.Description = fmt.Sprintf("Swap for %s", output.PetName())
	}
	return t, true
}
