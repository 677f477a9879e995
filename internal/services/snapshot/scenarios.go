package snapshot

import (
	"fmt"
	"sort"
	"time"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// Scenario builds an example farm relative to now
type Scenario struct {
	Name        string
	Description string
	build       func(now time.Time) State
}

// Build returns the scenario state with pets placed relative to now
func (s Scenario) Build(now time.Time) State {
	st := s.build(now)
	st.Scenario = s.Name
	return st
}

var scenarios = map[string]Scenario{
	"two-house": {
		Name:        "two-house",
		Description: "2-house startup: one nursery, one factory",
		build:       twoHouse,
	},
	"cash-engine": {
		Name:        "cash-engine",
		Description: "13-house cash engine: 9 factory lines fed by 4 nurseries",
		build:       cashEngine,
	},
	"expansion": {
		Name:        "expansion",
		Description: "26-house expansion: two cash engine pods",
		build:       expansion,
	},
	"trifecta": {
		Name:        "trifecta",
		Description: "71-house trifecta: champion house, 20 nurseries, 50 forges",
		build:       trifecta,
	},
}

// Scenarios returns every built-in scenario sorted by name
func Scenarios() []Scenario {
	out := make([]Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupScenario finds a scenario by name
func LookupScenario(name string) (Scenario, error) {
	s, ok := scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: scenario %q", domain.ErrNotFound, name)
	}
	return s, nil
}

// builder places example NPCs and pets relative to a fixed now
type builder struct {
	now time.Time
}

func (b builder) npc(r domain.Rank) domain.NPC {
	return domain.NPC{Rank: r, Days: domain.DefaultNPCDays, Expiration: b.now.Add(domain.DefaultNPCDays * 24 * time.Hour)}
}

// pet started hoursAgo and runs for total hours
func (b builder) pet(r domain.Rank, hoursAgo, total float64) domain.Pet {
	start := b.now.Add(-time.Duration(hoursAgo * float64(time.Hour)))
	return domain.Pet{Name: r.PetName(), Start: start, Finish: start.Add(time.Duration(total * float64(time.Hour)))}
}

func (b builder) slot(r domain.Rank, hoursAgo, total float64) domain.Slot {
	return domain.Slot{NPC: b.npc(r), Pet: b.pet(r, hoursAgo, total)}
}

func (b builder) house(id int, d domain.Division, slots ...domain.Slot) domain.House {
	h := domain.House{ID: id, Division: d}
	copy(h.Slots[:], slots)
	return h
}

func warehouse(f, safety, e, dd, c, bb, a int) domain.Warehouse {
	w := domain.DefaultWarehouse()
	fi := w.Find(domain.FeedItemID(domain.RankF))
	w[fi].Stock = f
	w[fi].SafetyStock = safety
	for r, n := range map[domain.Rank]int{domain.RankE: e, domain.RankD: dd, domain.RankC: c, domain.RankB: bb, domain.RankA: a} {
		w[w.Find(domain.FeedItemID(r))].Stock = n
	}
	return w
}

func base(cash float64) State {
	return New(cash, domain.DefaultPrices(), domain.DefaultCheckinHours)
}

func twoHouse(now time.Time) State {
	b := builder{now: now}
	st := base(250_000_000)
	st.Houses = []domain.House{
		b.house(1, domain.DivisionNursery,
			b.slot(domain.RankF, 2, 10),
			b.slot(domain.RankE, 15, 20),
			b.slot(domain.RankD, 40, 50)),
		b.house(2, domain.DivisionFactory,
			b.slot(domain.RankC, 10, 50),
			b.slot(domain.RankB, 60, 75),
			b.slot(domain.RankA, 100, 250)),
	}
	st.Warehouse = warehouse(20, 10, 2, 1, 1, 0, 0)
	return st
}

// pod builds 9 factory houses and 4 nurseries with ids from idStart
func pod(b builder, idStart int) []domain.House {
	var houses []domain.House
	for i := 0; i < 9; i++ {
		fi := float64(i)
		houses = append(houses, b.house(idStart+i, domain.DivisionFactory,
			b.slot(domain.RankD, 5+fi*4, 50),
			b.slot(domain.RankC, 15+fi*3, 50),
			b.slot(domain.RankB, 25+fi*5, 75)))
	}
	flex := []domain.Rank{domain.RankD, domain.RankC, domain.RankB, domain.RankA}
	for i, r := range flex {
		fi := float64(i)
		total := 50.0
		if r == domain.RankA {
			total = 250
		}
		houses = append(houses, b.house(idStart+9+i, domain.DivisionNursery,
			b.slot(domain.RankF, 1+fi, 10),
			b.slot(domain.RankE, 10+fi, 20),
			b.slot(r, 30+fi*2, total)))
	}
	return houses
}

func cashEngine(now time.Time) State {
	st := base(1_130_000_000)
	st.Houses = pod(builder{now: now}, 1)
	st.Warehouse = warehouse(50, 25, 10, 5, 5, 2, 1)
	st.Collected = domain.Collection{{Rank: domain.RankS, Quantity: 5}}
	return st
}

func expansion(now time.Time) State {
	b := builder{now: now}
	st := base(2_260_000_000)
	st.Houses = append(pod(b, 1), pod(b, 14)...)
	st.Warehouse = warehouse(100, 25, 20, 10, 10, 4, 2)
	st.Collected = domain.Collection{{Rank: domain.RankS, Quantity: 10}}
	return st
}

func trifecta(now time.Time) State {
	b := builder{now: now}
	st := base(5_000_000_000)

	champion := b.house(1, domain.DivisionChampion, b.slot(domain.RankF, 3, 10))
	champion.Slots[1].NPC = b.npc(domain.RankE)
	champion.Slots[2].NPC = b.npc(domain.RankD)
	st.Houses = []domain.House{champion}

	for i := 0; i < 20; i++ {
		off := float64(i % 10)
		st.Houses = append(st.Houses, b.house(2+i, domain.DivisionNursery,
			b.slot(domain.RankF, off, 10),
			b.slot(domain.RankE, 10+off, 20),
			b.slot(domain.RankD, 30+off, 50)))
	}
	for i := 0; i < 50; i++ {
		fi := float64(i)
		st.Houses = append(st.Houses, b.house(22+i, domain.DivisionFactory,
			b.slot(domain.RankC, 20+fi*2, 50),
			b.slot(domain.RankB, 50+fi*3, 75),
			b.slot(domain.RankA, 100+fi*4, 250)))
	}
	st.Warehouse = warehouse(200, 100, 25, 15, 10, 5, 5)
	st.Collected = domain.Collection{{Rank: domain.RankS, Quantity: 20}}
	return st
}
