package profit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Argeon482/Pet-Farm/internal/core/cycle"
	"github.com/Argeon482/Pet-Farm/internal/domain"
)

func houseWith(id int, division domain.Division, npcs ...domain.NPC) domain.House {
	h := domain.House{ID: id, Division: division}
	for i, n := range npcs {
		h.Slots[i].NPC = n
	}
	return h
}

func TestProject_ZeroGuard(t *testing.T) {
	table := cycle.Default()
	prices := domain.DefaultPrices()

	tests := []struct {
		name     string
		houses   []domain.House
		checkins domain.Schedule
	}{
		{"no houses", nil, domain.Schedule{9, 15, 21}},
		{"no active slots", []domain.House{houseWith(1, domain.DivisionNursery, domain.NPC{Rank: domain.RankF})}, domain.Schedule{9, 15, 21}},
		{"empty schedule", []domain.House{houseWith(1, domain.DivisionFactory, domain.NPC{Rank: domain.RankA, Days: 15})}, domain.Schedule{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.houses, table, prices, tt.checkins)
			assert.Equal(t, Projection{}, got)
		})
	}
}

func TestProject_SingleASlot(t *testing.T) {
	houses := []domain.House{houseWith(1, domain.DivisionFactory, domain.NPC{Rank: domain.RankA, Days: 15})}

	got := Project(houses, cycle.Default(), domain.DefaultPrices(), domain.Schedule{9, 15, 21})

	wantSPets := 168.0 / 459.0
	assert.InDelta(t, wantSPets, got.SPetsPerWeek, 1e-9)
	assert.InDelta(t, wantSPets*140_000_000, got.GrossRevenue, 1e-3)
	assert.InDelta(t, 51_241_830, got.GrossRevenue, 1)
	assert.InDelta(t, 28_000_000.0/15*7, got.NPCExpenses, 1e-6)
	assert.Zero(t, got.PerfectionExpenses)
	assert.InDelta(t, got.GrossRevenue-got.NPCExpenses, got.NetProfit, 1e-6)
}

func TestProject_ChampionDivertsRevenue(t *testing.T) {
	houses := []domain.House{
		houseWith(1, domain.DivisionChampion, domain.NPC{Rank: domain.RankA, Days: 7}),
	}

	got := Project(houses, cycle.Default(), domain.DefaultPrices(), domain.Schedule{9, 21})

	assert.Equal(t, got.GrossRevenue, got.PerfectionExpenses)
	assert.InDelta(t, 14_000_000.0, got.NPCExpenses, 1e-6)
	assert.InDelta(t, -got.NPCExpenses, got.NetProfit, 1e-6)
}

func TestProject_MissingPriceIsZero(t *testing.T) {
	houses := []domain.House{houseWith(1, domain.DivisionFactory, domain.NPC{Rank: domain.RankA, Days: 15})}
	prices := domain.PriceConfig{Pets: map[domain.Rank]float64{}}

	got := Project(houses, cycle.Default(), prices, domain.Schedule{9})

	assert.Zero(t, got.GrossRevenue)
	assert.Zero(t, got.NPCExpenses)
	assert.Greater(t, got.SPetsPerWeek, 0.0)
}

func TestProject_EverySlotCounts(t *testing.T) {
	one := []domain.House{houseWith(1, domain.DivisionNursery, domain.NPC{Rank: domain.RankF, Days: 15})}
	three := []domain.House{houseWith(1, domain.DivisionNursery,
		domain.NPC{Rank: domain.RankF, Days: 15},
		domain.NPC{Rank: domain.RankE, Days: 15},
		domain.NPC{Rank: domain.RankD, Days: 15},
	)}
	checkins := domain.Schedule{9, 15, 21}

	a := Project(one, cycle.Default(), domain.DefaultPrices(), checkins)
	b := Project(three, cycle.Default(), domain.DefaultPrices(), checkins)

	assert.InDelta(t, 3*a.SPetsPerWeek, b.SPetsPerWeek, 1e-9)
	assert.InDelta(t, 3*a.NPCExpenses, b.NPCExpenses, 1e-6)
}

func TestCompare(t *testing.T) {
	houses := []domain.House{houseWith(1, domain.DivisionFactory, domain.NPC{Rank: domain.RankA, Days: 15})}
	table := cycle.Default()
	prices := domain.DefaultPrices()

	got := Compare(houses, table, prices, domain.Schedule{12}, domain.Schedule{9, 15, 21})

	// One visit a day leaves pets idle longer than three visits
	assert.Less(t, got.User.SPetsPerWeek, got.Ideal.SPetsPerWeek)
	assert.InDelta(t, got.User.NetProfit-got.Ideal.NetProfit, got.Difference.NetProfit, 1e-6)
	assert.InDelta(t, 0, got.Difference.NPCExpenses, 1e-9)
}
