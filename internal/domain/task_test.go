package domain

import (
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	finish := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		rank       Rank
		petName    string
		wantOK     bool
		wantAction Action
		wantOutput Rank
		wantPet    string
		wantText   string
	}{
		{RankF, "", true, ActionSwap, RankE, "F-Pet", "Swap for E-Pet"},
		{RankE, "Bolt", true, ActionSwap, RankD, "Bolt", "Swap for D-Pet"},
		{RankB, "", true, ActionSwap, RankA, "B-Pet", "Swap for A-Pet"},
		{RankA, "", true, ActionCollect, RankS, "A-Pet", "Ready for collection (S-Pet)"},
		{RankNone, "", false, 0, 0, "", ""},
		{RankS, "", false, 0, 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			h := House{ID: 4}
			h.Slots[2] = Slot{NPC: NPC{Rank: tt.rank}, Pet: Pet{Name: tt.petName, Finish: finish}}

			task, ok := NewTask(h, 2, "Factory Block B")
			if ok != tt.wantOK {
				t.Fatalf("NewTask() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if task.Action != tt.wantAction {
				t.Errorf("Action = %v, want %v", task.Action, tt.wantAction)
			}
			if task.OutputRank != tt.wantOutput {
				t.Errorf("OutputRank = %v, want %v", task.OutputRank, tt.wantOutput)
			}
			if task.CurrentPet != tt.wantPet {
				t.Errorf("CurrentPet = %q, want %q", task.CurrentPet, tt.wantPet)
			}
			if task.Description != tt.wantText {
				t.Errorf("Description = %q, want %q", task.Description, tt.wantText)
			}
			if task.Key() != "4-2" || task.ServiceBlock != "Factory Block B" || !task.FinishAt.Equal(finish) {
				t.Errorf("NewTask() = %+v", task)
			}
		})
	}
}

func TestParseTaskKey(t *testing.T) {
	tests := []struct {
		key       string
		wantHouse int
		wantSlot  int
		wantErr   bool
	}{
		{"1-0", 1, 0, false},
		{"12-2", 12, 2, false},
		{"3-3", 0, 0, true},
		{"3", 0, 0, true},
		{"a-b", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			h, s, err := ParseTaskKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTaskKey(%q) err = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if h != tt.wantHouse || s != tt.wantSlot {
				t.Errorf("ParseTaskKey(%q) = %d, %d", tt.key, h, s)
			}
		})
	}
}

func TestAction_String(t *testing.T) {
	if ActionSwap.String() != "swap" || ActionCollect.String() != "collect" || Action(9).String() != "unknown" {
		t.Error("Action.String() mismatch")
	}
}
