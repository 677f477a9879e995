package farm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/services/snapshot"
)

func withCollected(st snapshot.State, r domain.Rank, n int) snapshot.State {
	st.Collected = st.Collected.Add(r, n)
	return st
}

func TestSetStock(t *testing.T) {
	svc, _, _ := newTestService(t, fixture())
	fid := domain.FeedItemID(domain.RankF)

	require.NoError(t, svc.SetStock(fid, 40))
	require.NoError(t, svc.SetSafetyStock(fid, 12))

	item := svc.State().Warehouse[svc.State().Warehouse.Find(fid)]
	assert.Equal(t, 40, item.Stock)
	assert.Equal(t, 12, item.SafetyStock)

	assert.True(t, errors.Is(svc.SetStock(fid, -1), domain.ErrInvalidArgument))
	assert.True(t, errors.Is(svc.SetStock("z-pet-wip", 1), domain.ErrNotFound))
	assert.True(t, errors.Is(svc.SetSafetyStock(fid, -3), domain.ErrInvalidArgument))
}

func TestSellPets(t *testing.T) {
	svc, _, _ := newTestService(t, withCollected(fixture(), domain.RankS, 3))

	first, err := svc.SellPets(domain.RankS, 2, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 140_000_000.0, first.PricePerUnit)
	assert.Equal(t, 280_000_000.0, first.Total)
	assert.Equal(t, now, first.Timestamp)

	second, err := svc.SellPets(domain.RankS, 1, 150_000_000)
	require.NoError(t, err)

	st := svc.State()
	assert.Equal(t, 100+280_000_000.0+150_000_000.0, st.Cash)
	assert.Equal(t, 0, st.Collected.Quantity(domain.RankS))
	assert.Empty(t, st.Collected, "entries reaching zero are dropped")
	require.Len(t, st.Sales, 2)
	assert.Equal(t, second.ID, st.Sales[0].ID, "newest sale first")
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSellPets_Rejects(t *testing.T) {
	unpriced := withCollected(fixture(), domain.RankE, 5)

	tests := []struct {
		name    string
		state   snapshot.State
		rank    domain.Rank
		qty     int
		price   float64
		wantErr error
	}{
		{"more than held", withCollected(fixture(), domain.RankS, 1), domain.RankS, 2, 0, domain.ErrInsufficientStock},
		{"nothing held", fixture(), domain.RankA, 1, 0, domain.ErrInsufficientStock},
		{"zero quantity", withCollected(fixture(), domain.RankS, 1), domain.RankS, 0, 0, domain.ErrInvalidArgument},
		{"no price", unpriced, domain.RankE, 1, 0, domain.ErrInvalidArgument},
		{"negative price", withCollected(fixture(), domain.RankS, 1), domain.RankS, 1, -5, domain.ErrInvalidArgument},
		{"unknown rank", fixture(), domain.RankNone, 1, 0, domain.ErrUnknownRank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, store := newTestService(t, tt.state)
			_, err := svc.SellPets(tt.rank, tt.qty, tt.price)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, store.Saved)
			assert.Equal(t, 100.0, svc.State().Cash)
		})
	}
}

func TestAttemptPerfection(t *testing.T) {
	st := withCollected(fixture(), domain.RankS, 2)
	st.Houses[1].Division = domain.DivisionChampion
	svc, _, _ := newTestService(t, st)

	h, err := svc.AttemptPerfection()
	require.NoError(t, err)
	assert.Equal(t, 2, h.ID)
	assert.Equal(t, 1, h.PerfectionAttempts)

	_, err = svc.AttemptPerfection()
	require.NoError(t, err)

	got := svc.State()
	assert.Equal(t, 2, got.Houses[1].PerfectionAttempts)
	assert.Equal(t, 0, got.Collected.Quantity(domain.RankS))

	_, err = svc.AttemptPerfection()
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}

func TestAttemptPerfection_NoChampion(t *testing.T) {
	svc, _, _ := newTestService(t, withCollected(fixture(), domain.RankS, 1))

	_, err := svc.AttemptPerfection()
	assert.True(t, errors.Is(err, domain.ErrNoChampion))
	assert.Equal(t, 1, svc.State().Collected.Quantity(domain.RankS))
}

func TestSetSchedule(t *testing.T) {
	svc, _, _ := newTestService(t, fixture())

	require.NoError(t, svc.SetSchedule(domain.Schedule{21, 6}))
	assert.Equal(t, domain.Schedule{6, 21}, svc.State().Checkins)

	assert.True(t, errors.Is(svc.SetSchedule(domain.Schedule{}), domain.ErrInvalidSchedule))
	assert.True(t, errors.Is(svc.SetSchedule(domain.Schedule{6, 6}), domain.ErrInvalidSchedule))
	assert.Equal(t, domain.Schedule{6, 21}, svc.State().Checkins)
}

func TestSetPricesAndCash(t *testing.T) {
	svc, _, _ := newTestService(t, fixture())

	require.NoError(t, svc.SetPrice(domain.RankA, 70_000_000))
	require.NoError(t, svc.SetNPCCosts(10, 20))
	require.NoError(t, svc.SetCash(5))

	st := svc.State()
	assert.Equal(t, 70_000_000.0, st.Prices.Price(domain.RankA))
	assert.Equal(t, 10.0, st.Prices.NPCCost7Day)
	assert.Equal(t, 20.0, st.Prices.NPCCost15Day)
	assert.Equal(t, 5.0, st.Cash)

	assert.True(t, errors.Is(svc.SetPrice(domain.RankS, -1), domain.ErrInvalidArgument))
	assert.True(t, errors.Is(svc.SetPrice(domain.RankNone, 1), domain.ErrUnknownRank))
	assert.True(t, errors.Is(svc.SetNPCCosts(-1, 0), domain.ErrInvalidArgument))
}
