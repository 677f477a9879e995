package completion

import (
	"time"

	"github.com/Argeon482/Pet-Farm/internal/core/cycle"
	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// Placement says where the produced unit went
type Placement int

const (
	PlacementNone Placement = iota
	// PlacementCollected: an S pet went to the collected inventory
	PlacementCollected
	// PlacementSlot: the unit started training in a free slot of its rank
	PlacementSlot
	// PlacementQueued: no free slot, the unit waits in the rank's WIP item
	PlacementQueued
)

func (p Placement) String() string {
	switch p {
	case PlacementCollected:
		return "collected"
	case PlacementSlot:
		return "slot"
	case PlacementQueued:
		return "queued"
	default:
		return "none"
	}
}

// Result is the outcome of applying one task. Houses and Warehouse are new
// collections; the inputs are never modified.
type Result struct {
	Houses    []domain.House
	Warehouse domain.Warehouse
	// CollectedDelta is the number of S pets to add to the collected inventory
	CollectedDelta int
	// Applied is false when the task was stale and nothing changed
	Applied bool

	Placement   Placement
	PlacedHouse int
	PlacedSlot  int
	// Restocked reports whether the source slot was refilled from the warehouse
	Restocked bool
}

// Apply completes a task against the given state.
//
// The task must still describe its source slot: same NPC rank and a pet with
// the same finish time. Otherwise the task is stale and Apply returns the state
// unchanged with Applied false. Applying the same task twice is therefore a no-op
// the second time.
func Apply(task domain.Task, houses []domain.House, warehouse domain.Warehouse, table cycle.Table, now time.Time) Result {
	res := Result{
		Houses:    domain.CloneHouses(houses),
		Warehouse: warehouse.Clone(),
	}

	hi := domain.FindHouse(res.Houses, task.HouseID)
	if hi < 0 || task.SlotIndex < 0 || task.SlotIndex >= domain.SlotsPerHouse {
		return res
	}
	src := &res.Houses[hi].Slots[task.SlotIndex]
	if src.NPC.Rank != task.CurrentRank || !src.Pet.Scheduled() || !src.Pet.Finish.Equal(task.FinishAt) {
		return res
	}
	output, ok := src.NPC.Rank.Next()
	if !ok {
		return res
	}
	res.Applied = true

	if output == domain.RankS {
		res.CollectedDelta = 1
		res.Placement = PlacementCollected
	} else {
		place(&res, output, table, now)
	}

	src.Pet = domain.Pet{}

	feed := res.Warehouse.Find(domain.FeedItemID(src.NPC.Rank))
	if feed >= 0 && res.Warehouse[feed].Stock > 0 {
		if Start(src, table, now) {
			res.Warehouse[feed].Stock--
			res.Restocked = true
		}
	}
	return res
}

// place starts the produced unit in the first free slot of its rank, scanning
// houses then slots in order, or queues it in the warehouse. A rank without a
// cycle entry cannot start anywhere, so its unit is queued.
func place(res *Result, output domain.Rank, table cycle.Table, now time.Time) {
	if _, ok := table.Duration(output); ok {
		for hi := range res.Houses {
			for si := range res.Houses[hi].Slots {
				s := &res.Houses[hi].Slots[si]
				if s.NPC.Rank != output || !s.Pet.Empty() {
					continue
				}
				Start(s, table, now)
				res.Placement = PlacementSlot
				res.PlacedHouse = res.Houses[hi].ID
				res.PlacedSlot = si
				return
			}
		}
	}
	res.Warehouse = enqueue(res.Warehouse, output)
	res.Placement = PlacementQueued
}

// enqueue adds one unit to the WIP item of rank r, creating the item if needed
func enqueue(w domain.Warehouse, r domain.Rank) domain.Warehouse {
	id := domain.FeedItemID(r)
	if i := w.Find(id); i >= 0 {
		w[i].Stock++
		return w
	}
	return append(w, domain.Item{
		ID:    id,
		Name:  r.String() + "-Pets (Awaiting " + r.String() + "-NPC)",
		Stock: 1,
	})
}
