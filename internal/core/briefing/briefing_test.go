package briefing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// houseWithPets builds a house whose slots hold the given NPC ranks and pets
// finishing at the given offsets from now. A zero offset entry means no pet.
func houseWithPets(id int, ranks []domain.Rank, finish []time.Duration) domain.House {
	h := domain.House{ID: id, Division: domain.DivisionFactory}
	for i, r := range ranks {
		h.Slots[i].NPC = domain.NPC{Rank: r, Days: 15}
		if i < len(finish) && finish[i] != 0 {
			h.Slots[i].Pet = domain.Pet{Start: now.Add(-time.Hour), Finish: now.Add(finish[i])}
		}
	}
	return h
}

func TestGenerate_Partition(t *testing.T) {
	schedule := domain.Schedule{9, 15, 21}
	houses := []domain.House{
		houseWithPets(1,
			[]domain.Rank{domain.RankF, domain.RankE, domain.RankD},
			[]time.Duration{-time.Hour, 2 * time.Hour, 5 * time.Hour}),
	}

	b := Generate(houses, schedule, nil, now)

	assert.Equal(t, time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), b.NextCheckin)
	require.Len(t, b.Due, 1)
	assert.Equal(t, "1-0", b.Due[0].Key())
	require.Len(t, b.Upcoming, 1)
	assert.Equal(t, "1-1", b.Upcoming[0].Key())
}

func TestGenerate_DueBoundaryIncludesNow(t *testing.T) {
	h := domain.House{ID: 3, Division: domain.DivisionNursery}
	h.Slots[0].NPC = domain.NPC{Rank: domain.RankF, Days: 15}
	h.Slots[0].Pet = domain.Pet{Start: now.Add(-10 * time.Hour), Finish: now}
	h.Slots[1].NPC = domain.NPC{Rank: domain.RankE, Days: 15}
	h.Slots[1].Pet = domain.Pet{Start: now, Finish: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)}

	b := Generate([]domain.House{h}, domain.Schedule{9, 15, 21}, nil, now)

	require.Len(t, b.Due, 1)
	assert.Equal(t, 0, b.Due[0].SlotIndex)
	// Finishing exactly at the next check-in is neither due nor upcoming
	assert.Empty(t, b.Upcoming)
}

func TestGenerate_PartitionIsDisjoint(t *testing.T) {
	offsets := []time.Duration{-48 * time.Hour, -time.Minute, time.Minute, 2*time.Hour + 59*time.Minute, 3 * time.Hour, 30 * time.Hour}
	var houses []domain.House
	for i, off := range offsets {
		houses = append(houses, houseWithPets(i+1, []domain.Rank{domain.RankC}, []time.Duration{off}))
	}

	b := Generate(houses, domain.Schedule{9, 15, 21}, nil, now)

	seen := map[string]int{}
	for _, task := range b.Due {
		seen[task.Key()]++
		assert.False(t, task.FinishAt.After(now))
	}
	for _, task := range b.Upcoming {
		seen[task.Key()]++
		assert.True(t, task.FinishAt.After(now))
		assert.True(t, task.FinishAt.Before(b.NextCheckin))
	}
	for key, n := range seen {
		assert.Equal(t, 1, n, "task %s appears in more than one set", key)
	}
	assert.Len(t, b.Due, 2)
	assert.Len(t, b.Upcoming, 2)
}

func TestGenerate_DueOrdering(t *testing.T) {
	// Output ranks in house order: D, S, C, S, E
	houses := []domain.House{
		houseWithPets(1, []domain.Rank{domain.RankE}, []time.Duration{-time.Hour}),
		houseWithPets(2, []domain.Rank{domain.RankA}, []time.Duration{-time.Hour}),
		houseWithPets(3, []domain.Rank{domain.RankD}, []time.Duration{-time.Hour}),
		houseWithPets(4, []domain.Rank{domain.RankA}, []time.Duration{-time.Hour}),
		houseWithPets(5, []domain.Rank{domain.RankF}, []time.Duration{-time.Hour}),
	}

	b := Generate(houses, domain.Schedule{9, 15, 21}, nil, now)

	var outputs []domain.Rank
	var ids []int
	for _, task := range b.Due {
		outputs = append(outputs, task.OutputRank)
		ids = append(ids, task.HouseID)
	}
	assert.Equal(t, []domain.Rank{domain.RankS, domain.RankS, domain.RankC, domain.RankD, domain.RankE}, outputs)
	assert.Equal(t, []int{2, 4, 3, 1, 5}, ids, "ties keep their original order")
}

func TestGenerate_TaskDescriptors(t *testing.T) {
	houses := []domain.House{
		houseWithPets(1, []domain.Rank{domain.RankA, domain.RankB}, []time.Duration{-time.Hour, -time.Hour}),
	}
	houses[0].Slots[1].Pet.Name = "Rex"
	blocks := map[int]string{1: "Factory Block A"}

	b := Generate(houses, domain.Schedule{9, 15, 21}, blocks, now)

	require.Len(t, b.Due, 2)
	collect, swap := b.Due[0], b.Due[1]

	assert.Equal(t, domain.ActionCollect, collect.Action)
	assert.Equal(t, "Ready for collection (S-Pet)", collect.Description)
	assert.Equal(t, "A-Pet", collect.CurrentPet)
	assert.Equal(t, "Factory Block A", collect.ServiceBlock)

	assert.Equal(t, domain.ActionSwap, swap.Action)
	assert.Equal(t, "Swap for A-Pet", swap.Description)
	assert.Equal(t, "Rex", swap.CurrentPet)
	assert.Equal(t, domain.RankB, swap.CurrentRank)
}

func TestGenerate_RankMonotonicity(t *testing.T) {
	for _, r := range domain.NPCRanks {
		t.Run(r.String(), func(t *testing.T) {
			houses := []domain.House{houseWithPets(1, []domain.Rank{r}, []time.Duration{-time.Hour})}
			b := Generate(houses, domain.Schedule{9}, nil, now)
			require.Len(t, b.Due, 1)

			want, _ := r.Next()
			assert.Equal(t, want, b.Due[0].OutputRank)
		})
	}
}

func TestGenerate_SkipsSlotsWithoutRank(t *testing.T) {
	h := domain.House{ID: 1, Division: domain.DivisionNursery}
	h.Slots[0].Pet = domain.Pet{Finish: now.Add(-time.Hour)}

	b := Generate([]domain.House{h}, domain.Schedule{9}, nil, now)

	assert.Empty(t, b.Due)
	assert.Empty(t, b.Upcoming)
}

func TestGenerate_EmptySchedule(t *testing.T) {
	houses := []domain.House{houseWithPets(1, []domain.Rank{domain.RankF}, []time.Duration{5 * time.Hour})}

	b := Generate(houses, domain.Schedule{}, nil, now)

	assert.Equal(t, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), b.NextCheckin)
	assert.Len(t, b.Upcoming, 1)
}

func TestGenerate_NextCheckinWrapsToTomorrow(t *testing.T) {
	late := time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)

	b := Generate(nil, domain.Schedule{9, 15, 21}, nil, late)

	assert.Equal(t, time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC), b.NextCheckin)
	assert.NotNil(t, b.Due)
	assert.NotNil(t, b.Upcoming)
}

func TestBriefing_UpcomingByBlock(t *testing.T) {
	houses := []domain.House{
		houseWithPets(1, []domain.Rank{domain.RankF}, []time.Duration{time.Hour}),
		houseWithPets(2, []domain.Rank{domain.RankF}, []time.Duration{time.Hour}),
		houseWithPets(3, []domain.Rank{domain.RankF}, []time.Duration{time.Hour}),
	}
	blocks := map[int]string{1: "Nursery Block A", 2: "Nursery Block B", 3: "Nursery Block A"}

	b := Generate(houses, domain.Schedule{9, 15, 21}, blocks, now)
	order, grouped := b.UpcomingByBlock()

	assert.Equal(t, []string{"Nursery Block A", "Nursery Block B"}, order)
	assert.Len(t, grouped["Nursery Block A"], 2)
	assert.Len(t, grouped["Nursery Block B"], 1)
}
