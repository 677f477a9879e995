package domain

// PriceConfig holds unit prices per rank and flat NPC engagement costs
type PriceConfig struct {
	Pets         map[Rank]float64 `json:"pets" yaml:"pets"`
	NPCCost7Day  float64          `json:"npcCost7Day" yaml:"npcCost7Day"`
	NPCCost15Day float64          `json:"npcCost15Day" yaml:"npcCost15Day"`
}

// DefaultPrices returns the starting market prices
func DefaultPrices() PriceConfig {
	return PriceConfig{
		Pets: map[Rank]float64{
			RankF: 3_100_000,
			RankC: 18_000_000,
			RankB: 35_000_000,
			RankA: 65_000_000,
			RankS: 140_000_000,
		},
		NPCCost7Day:  14_000_000,
		NPCCost15Day: 28_000_000,
	}
}

// Price returns the unit price of rank r; unpriced ranks are worth 0
func (p PriceConfig) Price(r Rank) float64 {
	return p.Pets[r]
}

// NPCCost returns the flat cost for an NPC lifetime: the 7-day cost for 7,
// the 15-day cost otherwise.
func (p PriceConfig) NPCCost(days int) float64 {
	if days == 7 {
		return p.NPCCost7Day
	}
	return p.NPCCost15Day
}

// Clone returns a copy with its own price map
func (p PriceConfig) Clone() PriceConfig {
	out := p
	out.Pets = make(map[Rank]float64, len(p.Pets))
	for r, v := range p.Pets {
		out.Pets[r] = v
	}
	return out
}
