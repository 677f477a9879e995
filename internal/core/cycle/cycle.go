// Package cycle maps NPC ranks to production cycle durations.
//
// The table is static configuration: it is built once (from defaults or the
// config file) and never mutated afterwards.
package cycle

import (
	"fmt"
	"time"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// Table maps a production rank to its cycle length in hours
type Table struct {
	hours map[domain.Rank]float64
}

// DefaultHours is the stock production time per NPC rank
var DefaultHours = map[domain.Rank]float64{
	domain.RankF: 10,
	domain.RankE: 20,
	domain.RankD: 50,
	domain.RankC: 50,
	domain.RankB: 75,
	domain.RankA: 250,
}

// New builds a table. Only NPC ranks (F..A) with positive hours are accepted.
func New(hours map[domain.Rank]float64) (Table, error) {
	t := Table{hours: make(map[domain.Rank]float64, len(hours))}
	for r, h := range hours {
		if !r.IsNPC() {
			return Table{}, fmt.Errorf("%w: %q has no production cycle", domain.ErrUnknownRank, r.String())
		}
		if h <= 0 {
			return Table{}, fmt.Errorf("cycle for %s must be positive, got %v", r, h)
		}
		t.hours[r] = h
	}
	return t, nil
}

// Default returns the stock table
func Default() Table {
	t, _ := New(DefaultHours)
	return t
}

// Lookup returns the cycle length in hours. A rank without an entry is an error.
func (t Table) Lookup(r domain.Rank) (float64, error) {
	h, ok := t.hours[r]
	if !ok {
		return 0, fmt.Errorf("%w: no cycle for rank %q", domain.ErrUnknownRank, r.String())
	}
	return h, nil
}

// Duration returns the cycle length as a time.Duration, or false when missing
func (t Table) Duration(r domain.Rank) (time.Duration, bool) {
	h, ok := t.hours[r]
	if !ok {
		return 0, false
	}
	return time.Duration(h * float64(time.Hour)), true
}

// FullPipelineHours is the time one unit needs to travel from raw F input to an
// S pet: the sum over every rank F..A in the table.
func (t Table) FullPipelineHours() float64 {
	total := 0.0
	for _, r := range domain.NPCRanks {
		total += t.hours[r]
	}
	return total
}

// Hours returns a copy of the underlying map
func (t Table) Hours() map[domain.Rank]float64 {
	out := make(map[domain.Rank]float64, len(t.hours))
	for r, h := range t.hours {
		out[r] = h
	}
	return out
}

// Len returns the number of ranks with a cycle entry
func (t Table) Len() int {
	return len(t.hours)
}
