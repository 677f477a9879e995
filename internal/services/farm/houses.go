package farm

import (
	"fmt"
	"time"

	"github.com/Argeon482/Pet-Farm/internal/core/completion"
	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/services/snapshot"
)

// MaxHousesPerAdd bounds a single AddHouses call
const MaxHousesPerAdd = 100

// AddHouses appends qty houses built from template and returns them
func (s *Service) AddHouses(template domain.HouseTemplate, qty int) ([]domain.House, error) {
	var added []domain.House
	err := s.update("add-houses", func(st *snapshot.State, _ time.Time) error {
		if qty < 1 || qty > MaxHousesPerAdd {
			return &domain.FarmError{Op: "add-houses", Err: fmt.Errorf("%w: quantity must be 1-%d", domain.ErrInvalidArgument, MaxHousesPerAdd)}
		}
		id := domain.NextHouseID(st.Houses)
		for i := 0; i < qty; i++ {
			h, err := template.Build(id + i)
			if err != nil {
				return &domain.FarmError{Op: "add-houses", Err: err}
			}
			st.Houses = append(st.Houses, h)
			added = append(added, h)
		}
		return nil
	}, "template", template, "quantity", qty)
	if err != nil {
		return nil, err
	}
	return added, nil
}

// RemoveHouse deletes a house
func (s *Service) RemoveHouse(id int) error {
	return s.update("remove-house", func(st *snapshot.State, _ time.Time) error {
		i, err := houseIndex(st, "remove-house", id)
		if err != nil {
			return err
		}
		st.Houses = append(st.Houses[:i], st.Houses[i+1:]...)
		return nil
	}, "house", id)
}

// ClearHouses deletes every house
func (s *Service) ClearHouses() error {
	return s.update("clear-houses", func(st *snapshot.State, _ time.Time) error {
		st.Houses = []domain.House{}
		return nil
	})
}

// ResetHouse empties every slot and resets the perfection counter
func (s *Service) ResetHouse(id int) error {
	return s.update("reset-house", func(st *snapshot.State, _ time.Time) error {
		i, err := houseIndex(st, "reset-house", id)
		if err != nil {
			return err
		}
		st.Houses[i].Slots = [domain.SlotsPerHouse]domain.Slot{}
		st.Houses[i].PerfectionAttempts = 0
		return nil
	}, "house", id)
}

// SetDivision moves a house to another division
func (s *Service) SetDivision(id int, d domain.Division) error {
	return s.update("set-division", func(st *snapshot.State, _ time.Time) error {
		if !d.Valid() {
			return &domain.FarmError{Op: "set-division", HouseID: id, Err: fmt.Errorf("%w: unknown division %q", domain.ErrInvalidArgument, d)}
		}
		i, err := houseIndex(st, "set-division", id)
		if err != nil {
			return err
		}
		st.Houses[i].Division = d
		return nil
	}, "house", id, "division", d)
}

// SetNPC assigns rank to a slot, or clears it with domain.RankNone.
// A new rank gets the default lifetime when none is set and loses the old
// expiration; clearing also drops the lifetime. The running pet is kept.
func (s *Service) SetNPC(houseID, slot int, rank domain.Rank) error {
	const op = "set-npc"
	return s.update(op, func(st *snapshot.State, _ time.Time) error {
		h, sl, err := slotAt(st, op, houseID, slot)
		if err != nil {
			return err
		}
		if rank == domain.RankNone {
			sl.NPC = domain.NPC{}
			return nil
		}
		if !rank.IsNPC() {
			return &domain.FarmError{Op: op, HouseID: houseID, Slot: slot, Err: fmt.Errorf("%w: %s cannot work a slot", domain.ErrUnknownRank, rank)}
		}
		if h.HasRank(rank, slot) {
			return &domain.FarmError{Op: op, HouseID: houseID, Slot: slot, Err: fmt.Errorf("%w: %s", domain.ErrDuplicateRank, rank)}
		}
		if sl.NPC.Rank != rank {
			sl.NPC.Expiration = time.Time{}
		}
		sl.NPC.Rank = rank
		if sl.NPC.Days == 0 {
			sl.NPC.Days = domain.DefaultNPCDays
		}
		return nil
	}, "house", houseID, "slot", slot, "rank", rank)
}

// SetNPCDuration sets the NPC lifetime to 7 or 15 days
func (s *Service) SetNPCDuration(houseID, slot, days int) error {
	const op = "set-npc-duration"
	return s.update(op, func(st *snapshot.State, _ time.Time) error {
		if !domain.ValidNPCDays(days) {
			return &domain.FarmError{Op: op, HouseID: houseID, Slot: slot, Err: fmt.Errorf("%w: duration must be 7 or 15 days", domain.ErrInvalidArgument)}
		}
		_, sl, err := assignedSlot(st, op, houseID, slot)
		if err != nil {
			return err
		}
		sl.NPC.Days = days
		return nil
	}, "house", houseID, "slot", slot, "days", days)
}

// SetNPCExpiration sets the NPC to expire remaining from now
func (s *Service) SetNPCExpiration(houseID, slot int, remaining time.Duration) error {
	const op = "set-npc-expiration"
	return s.update(op, func(st *snapshot.State, now time.Time) error {
		if remaining <= 0 {
			return &domain.FarmError{Op: op, HouseID: houseID, Slot: slot, Err: fmt.Errorf("%w: remaining time must be positive", domain.ErrInvalidArgument)}
		}
		_, sl, err := assignedSlot(st, op, houseID, slot)
		if err != nil {
			return err
		}
		sl.NPC.Expiration = now.Add(remaining)
		return nil
	}, "house", houseID, "slot", slot, "remaining", remaining)
}

// StartPet starts a fresh pet in an empty slot: one full cycle from now
func (s *Service) StartPet(houseID, slot int) error {
	const op = "start-pet"
	return s.update(op, func(st *snapshot.State, now time.Time) error {
		sl, err := s.startable(st, op, houseID, slot)
		if err != nil {
			return err
		}
		completion.Start(sl, s.table, now)
		return nil
	}, "house", houseID, "slot", slot)
}

// StartPetAtProgress starts a pet that is already percent (0-100) done
func (s *Service) StartPetAtProgress(houseID, slot int, percent float64) error {
	const op = "start-pet"
	return s.update(op, func(st *snapshot.State, now time.Time) error {
		sl, err := s.startable(st, op, houseID, slot)
		if err != nil {
			return err
		}
		if err := completion.StartAtProgress(sl, s.table, now, percent); err != nil {
			return &domain.FarmError{Op: op, HouseID: houseID, Slot: slot, Err: err}
		}
		return nil
	}, "house", houseID, "slot", slot, "percent", percent)
}

// InstantComplete makes a started pet finish now
func (s *Service) InstantComplete(houseID, slot int) error {
	const op = "instant-complete"
	return s.update(op, func(st *snapshot.State, now time.Time) error {
		_, sl, err := slotAt(st, op, houseID, slot)
		if err != nil {
			return err
		}
		if sl.Pet.Start.IsZero() {
			return &domain.FarmError{Op: op, HouseID: houseID, Slot: slot, Err: domain.ErrNoPet}
		}
		sl.Pet.Finish = now
		return nil
	}, "house", houseID, "slot", slot)
}

// startable returns the slot when a pet can be started in it
func (s *Service) startable(st *snapshot.State, op string, houseID, slot int) (*domain.Slot, error) {
	_, sl, err := assignedSlot(st, op, houseID, slot)
	if err != nil {
		return nil, err
	}
	fail := func(e error) error {
		return &domain.FarmError{Op: op, HouseID: houseID, Slot: slot, Err: e}
	}
	switch {
	case sl.NPC.Days <= 0:
		return nil, fail(domain.ErrNoDuration)
	case !sl.Pet.Empty():
		return nil, fail(domain.ErrSlotBusy)
	}
	if _, ok := s.table.Duration(sl.NPC.Rank); !ok {
		return nil, fail(fmt.Errorf("%w: no cycle for %s", domain.ErrUnknownRank, sl.NPC.Rank))
	}
	return sl, nil
}

func houseIndex(st *snapshot.State, op string, id int) (int, error) {
	i := domain.FindHouse(st.Houses, id)
	if i < 0 {
		return -1, &domain.FarmError{Op: op, Err: fmt.Errorf("%w: house %d", domain.ErrNotFound, id)}
	}
	return i, nil
}

func slotAt(st *snapshot.State, op string, houseID, slot int) (*domain.House, *domain.Slot, error) {
	i, err := houseIndex(st, op, houseID)
	if err != nil {
		return nil, nil, err
	}
	if slot < 0 || slot >= domain.SlotsPerHouse {
		return nil, nil, &domain.FarmError{Op: op, Err: fmt.Errorf("%w: house %d has no slot %d", domain.ErrInvalidArgument, houseID, slot+1)}
	}
	h := &st.Houses[i]
	return h, &h.Slots[slot], nil
}

func assignedSlot(st *snapshot.State, op string, houseID, slot int) (*domain.House, *domain.Slot, error) {
	h, sl, err := slotAt(st, op, houseID, slot)
	if err != nil {
		return nil, nil, err
	}
	if !sl.NPC.Assigned() {
		return nil, nil, &domain.FarmError{Op: op, HouseID: houseID, Slot: slot, Err: domain.ErrNoNPC}
	}
	return h, sl, nil
}
