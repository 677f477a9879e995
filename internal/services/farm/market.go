package farm

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/services/snapshot"
)

// SetStock sets the stock of a warehouse item
func (s *Service) SetStock(itemID string, stock int) error {
	return s.update("set-stock", func(st *snapshot.State, _ time.Time) error {
		i, err := itemIndex(st, "set-stock", itemID)
		if err != nil {
			return err
		}
		if stock < 0 {
			return &domain.FarmError{Op: "set-stock", Err: fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidArgument)}
		}
		st.Warehouse[i].Stock = stock
		return nil
	}, "item", itemID, "stock", stock)
}

// SetSafetyStock sets the low-stock threshold of a warehouse item
func (s *Service) SetSafetyStock(itemID string, safety int) error {
	return s.update("set-safety-stock", func(st *snapshot.State, _ time.Time) error {
		i, err := itemIndex(st, "set-safety-stock", itemID)
		if err != nil {
			return err
		}
		if safety < 0 {
			return &domain.FarmError{Op: "set-safety-stock", Err: fmt.Errorf("%w: safety stock cannot be negative", domain.ErrInvalidArgument)}
		}
		st.Warehouse[i].SafetyStock = safety
		return nil
	}, "item", itemID, "safety", safety)
}

// SellPets sells qty collected pets of rank at unitPrice, or at the
// configured price when unitPrice is zero. The sale is recorded newest first
// and its total is added to cash.
func (s *Service) SellPets(rank domain.Rank, qty int, unitPrice float64) (domain.SaleRecord, error) {
	const op = "sell"
	var sale domain.SaleRecord
	err := s.update(op, func(st *snapshot.State, now time.Time) error {
		if !rank.Valid() {
			return &domain.FarmError{Op: op, Err: domain.ErrUnknownRank}
		}
		if qty < 1 {
			return &domain.FarmError{Op: op, Err: fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidArgument)}
		}
		if held := st.Collected.Quantity(rank); qty > held {
			return &domain.FarmError{Op: op, Err: fmt.Errorf("%w: %d %s held", domain.ErrInsufficientStock, held, rank.PetName())}
		}
		price := unitPrice
		if price == 0 {
			price = st.Prices.Price(rank)
		}
		if price <= 0 {
			return &domain.FarmError{Op: op, Err: fmt.Errorf("%w: no price for %s", domain.ErrInvalidArgument, rank.PetName())}
		}

		sale = domain.SaleRecord{
			ID:           uuid.NewString(),
			Rank:         rank,
			Quantity:     qty,
			PricePerUnit: price,
			Total:        float64(qty) * price,
			Timestamp:    now,
		}
		st.Collected = st.Collected.Add(rank, -qty)
		st.Sales = append([]domain.SaleRecord{sale}, st.Sales...)
		st.Cash += sale.Total
		return nil
	}, "rank", rank, "quantity", qty)
	if err != nil {
		return domain.SaleRecord{}, err
	}
	return sale, nil
}

// AttemptPerfection spends one collected S pet on the first Champion house
// and returns that house.
func (s *Service) AttemptPerfection() (domain.House, error) {
	const op = "perfect"
	var champion domain.House
	err := s.update(op, func(st *snapshot.State, _ time.Time) error {
		idx := -1
		for i, h := range st.Houses {
			if h.Division == domain.DivisionChampion {
				idx = i
				break
			}
		}
		if idx < 0 {
			return &domain.FarmError{Op: op, Err: domain.ErrNoChampion}
		}
		if st.Collected.Quantity(domain.RankS) < 1 {
			return &domain.FarmError{Op: op, HouseID: st.Houses[idx].ID, Err: fmt.Errorf("%w: no S-Pets collected", domain.ErrInsufficientStock)}
		}
		st.Collected = st.Collected.Add(domain.RankS, -1)
		st.Houses[idx].PerfectionAttempts++
		champion = st.Houses[idx]
		return nil
	})
	if err != nil {
		return domain.House{}, err
	}
	return champion, nil
}

// SetSchedule replaces the check-in hours. An empty schedule is refused.
func (s *Service) SetSchedule(hours domain.Schedule) error {
	return s.update("set-schedule", func(st *snapshot.State, _ time.Time) error {
		sched, err := domain.NewSchedule(hours...)
		if err != nil {
			return &domain.FarmError{Op: "set-schedule", Err: err}
		}
		if len(sched) == 0 {
			return &domain.FarmError{Op: "set-schedule", Err: fmt.Errorf("%w: at least one check-in is required", domain.ErrInvalidSchedule)}
		}
		st.Checkins = sched
		return nil
	}, "hours", hours.String())
}

// SetPrice sets the unit price of one rank
func (s *Service) SetPrice(rank domain.Rank, price float64) error {
	return s.update("set-price", func(st *snapshot.State, _ time.Time) error {
		if !rank.Valid() {
			return &domain.FarmError{Op: "set-price", Err: domain.ErrUnknownRank}
		}
		if price < 0 {
			return &domain.FarmError{Op: "set-price", Err: fmt.Errorf("%w: negative price", domain.ErrInvalidArgument)}
		}
		if st.Prices.Pets == nil {
			st.Prices.Pets = make(map[domain.Rank]float64)
		}
		st.Prices.Pets[rank] = price
		return nil
	}, "rank", rank, "price", price)
}

// SetNPCCosts sets the flat 7-day and 15-day NPC costs
func (s *Service) SetNPCCosts(cost7, cost15 float64) error {
	return s.update("set-npc-costs", func(st *snapshot.State, _ time.Time) error {
		if cost7 < 0 || cost15 < 0 {
			return &domain.FarmError{Op: "set-npc-costs", Err: fmt.Errorf("%w: negative cost", domain.ErrInvalidArgument)}
		}
		st.Prices.NPCCost7Day = cost7
		st.Prices.NPCCost15Day = cost15
		return nil
	}, "cost7", cost7, "cost15", cost15)
}

// SetCash overwrites the cash balance
func (s *Service) SetCash(cash float64) error {
	return s.update("set-cash", func(st *snapshot.State, _ time.Time) error {
		st.Cash = cash
		return nil
	}, "cash", cash)
}

func itemIndex(st *snapshot.State, op, id string) (int, error) {
	i := st.Warehouse.Find(id)
	if i < 0 {
		return -1, &domain.FarmError{Op: op, Err: fmt.Errorf("%w: warehouse item %q", domain.ErrNotFound, id)}
	}
	return i, nil
}
