// Package profit projects weekly throughput and net profit for a farm layout.
package profit

import (
	"github.com/Argeon482/Pet-Farm/internal/core/cycle"
	"github.com/Argeon482/Pet-Farm/internal/domain"
)

const hoursPerWeek = 7 * 24

// Projection is the expected weekly result of a layout and schedule
type Projection struct {
	GrossRevenue       float64 `json:"grossRevenue"`
	NPCExpenses        float64 `json:"npcExpenses"`
	PerfectionExpenses float64 `json:"perfectionExpenses"`
	NetProfit          float64 `json:"netProfit"`
	SPetsPerWeek       float64 `json:"sPetsPerWeek"`
}

// Project computes the weekly projection.
//
// Every active slot (NPC rank and lifetime set) is modelled as one full
// pipeline from F to S. The cycle is stretched by the average idle time a
// finished pet waits for the next check-in, half the gap between check-ins.
// With no active slots or no check-ins the result is all zero.
func Project(houses []domain.House, table cycle.Table, prices domain.PriceConfig, checkins domain.Schedule) Projection {
	var active []domain.NPC
	for _, h := range houses {
		for _, s := range h.Slots {
			if s.NPC.Active() {
				active = append(active, s.NPC)
			}
		}
	}
	if len(active) == 0 || len(checkins) == 0 {
		return Projection{}
	}

	fullCycle := table.FullPipelineHours()
	avgIdle := (24.0 / float64(len(checkins))) / 2
	effectiveCycle := fullCycle + avgIdle

	pipelinesPerSlot := hoursPerWeek / effectiveCycle
	sPets := float64(len(active)) * pipelinesPerSlot
	gross := sPets * prices.Price(domain.RankS)

	npc := 0.0
	for _, n := range active {
		cost := prices.NPCCost(n.Days)
		if cost > 0 {
			npc += cost / float64(n.Days) * 7
		}
	}

	// A champion house diverts all top output into perfection instead of sales
	perfection := 0.0
	if domain.HasChampion(houses) {
		perfection = gross
	}

	return Projection{
		GrossRevenue:       gross,
		NPCExpenses:        npc,
		PerfectionExpenses: perfection,
		NetProfit:          gross - npc - perfection,
		SPetsPerWeek:       sPets,
	}
}

// Comparison holds a user schedule projection next to a reference one
type Comparison struct {
	User       Projection `json:"user"`
	Ideal      Projection `json:"ideal"`
	Difference Projection `json:"difference"`
}

// Compare projects the same layout under two schedules. Difference is user
// minus ideal, field by field.
func Compare(houses []domain.House, table cycle.Table, prices domain.PriceConfig, user, ideal domain.Schedule) Comparison {
	u := Project(houses, table, prices, user)
	i := Project(houses, table, prices, ideal)
	return Comparison{
		User:  u,
		Ideal: i,
		Difference: Projection{
			GrossRevenue:       u.GrossRevenue - i.GrossRevenue,
			NPCExpenses:        u.NPCExpenses - i.NPCExpenses,
			PerfectionExpenses: u.PerfectionExpenses - i.PerfectionExpenses,
			NetProfit:          u.NetProfit - i.NetProfit,
			SPetsPerWeek:       u.SPetsPerWeek - i.SPetsPerWeek,
		},
	}
}
