package domain

import (
	"fmt"
	"time"
)

// SlotsPerHouse is the fixed number of production bays in every house
const SlotsPerHouse = 3

// DefaultNPCDays is the NPC lifetime assigned when a rank is set without one
const DefaultNPCDays = 15

// ValidNPCDays reports whether days is an NPC lifetime on offer
func ValidNPCDays(days int) bool {
	return days == 7 || days == 15
}

// Division determines service-block grouping. Champion houses also unlock perfection.
type Division string

const (
	DivisionChampion Division = "Champion Pet"
	DivisionNursery  Division = "Nursery"
	DivisionFactory  Division = "Factory"
)

// Divisions lists all divisions in display order
var Divisions = []Division{DivisionChampion, DivisionNursery, DivisionFactory}

// Valid reports whether d is a known division
func (d Division) Valid() bool {
	switch d {
	case DivisionChampion, DivisionNursery, DivisionFactory:
		return true
	default:
		return false
	}
}

// ParseDivision accepts the display name or a short form ("champion", "nursery", "factory")
func ParseDivision(s string) (Division, error) {
	switch s {
	case "Champion Pet", "champion", "Champion":
		return DivisionChampion, nil
	case "Nursery", "nursery":
		return DivisionNursery, nil
	case "Factory", "factory":
		return DivisionFactory, nil
	}
	return "", fmt.Errorf("unknown division %q", s)
}

// NPC is the worker assignment of a slot
type NPC struct {
	Rank Rank `json:"rank" yaml:"rank"`
	// Days is the NPC lifetime (7 or 15); 0 when unset
	Days int `json:"days,omitempty" yaml:"days,omitempty"`
	// Expiration stays zero until the NPC is first used
	Expiration time.Time `json:"expiration,omitempty" yaml:"expiration,omitempty"`
}

// Assigned reports whether the NPC has a rank
func (n NPC) Assigned() bool {
	return n.Rank != RankNone
}

// Active reports whether the NPC counts for profit projection (rank and lifetime set)
func (n NPC) Active() bool {
	return n.Rank != RankNone && n.Days > 0
}

// Pet is the pet currently training in a slot
type Pet struct {
	Name   string    `json:"name,omitempty" yaml:"name,omitempty"`
	Start  time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	Finish time.Time `json:"finish,omitempty" yaml:"finish,omitempty"`
}

// Empty reports whether no pet occupies the slot
func (p Pet) Empty() bool {
	return p.Name == "" && p.Start.IsZero() && p.Finish.IsZero()
}

// Scheduled reports whether the pet has a finish time
func (p Pet) Scheduled() bool {
	return !p.Finish.IsZero()
}

// Slot pairs an NPC assignment with a pet in training
type Slot struct {
	NPC NPC `json:"npc" yaml:"npc"`
	Pet Pet `json:"pet" yaml:"pet"`
}

// House is a production unit with exactly three slots
type House struct {
	ID                 int                 `json:"id" yaml:"id"`
	Division           Division            `json:"division" yaml:"division"`
	PerfectionAttempts int                 `json:"perfectionAttempts" yaml:"perfectionAttempts"`
	Slots              [SlotsPerHouse]Slot `json:"slots" yaml:"slots"`
}

// Validate checks the house uniqueness constraint: no two slots share an NPC rank
func (h House) Validate() error {
	seen := make(map[Rank]int, SlotsPerHouse)
	for i, s := range h.Slots {
		if s.NPC.Rank == RankNone {
			continue
		}
		if !s.NPC.Rank.IsNPC() {
			return &FarmError{Op: "validate", HouseID: h.ID, Slot: i, Err: fmt.Errorf("%w: %s cannot occupy an NPC slot", ErrUnknownRank, s.NPC.Rank)}
		}
		if prev, dup := seen[s.NPC.Rank]; dup {
			return &FarmError{Op: "validate", HouseID: h.ID, Slot: i, Err: fmt.Errorf("%w: %s already in slot %d", ErrDuplicateRank, s.NPC.Rank, prev+1)}
		}
		seen[s.NPC.Rank] = i
	}
	return nil
}

// HasRank reports whether any slot other than skip holds rank r
func (h House) HasRank(r Rank, skip int) bool {
	for i, s := range h.Slots {
		if i != skip && s.NPC.Rank == r {
			return true
		}
	}
	return false
}

// FindHouse returns the index of the house with the given id, or -1
func FindHouse(houses []House, id int) int {
	for i, h := range houses {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// CloneHouses returns a copy of houses. Slots are arrays of values, so the copy
// shares no mutable state with the input.
func CloneHouses(houses []House) []House {
	if houses == nil {
		return nil
	}
	out := make([]House, len(houses))
	copy(out, houses)
	return out
}

// NextHouseID returns max(existing id)+1, or 1 for an empty collection
func NextHouseID(houses []House) int {
	last := 0
	for _, h := range houses {
		if h.ID > last {
			last = h.ID
		}
	}
	return last + 1
}

// HasChampion reports whether any house belongs to the Champion division
func HasChampion(houses []House) bool {
	for _, h := range houses {
		if h.Division == DivisionChampion {
			return true
		}
	}
	return false
}
