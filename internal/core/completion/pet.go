// Package completion applies finished tasks to the farm state and holds the
// primitives for starting pets in slots.
package completion

import (
	"fmt"
	"math"
	"time"

	"github.com/Argeon482/Pet-Farm/internal/core/cycle"
	"github.com/Argeon482/Pet-Farm/internal/domain"
)

const day = 24 * time.Hour

// MarkUsed sets the NPC expiration the first time the NPC is put to work.
// It does nothing when an expiration already exists or no lifetime is set.
func MarkUsed(n *domain.NPC, now time.Time) {
	if !n.Expiration.IsZero() || n.Days <= 0 {
		return
	}
	n.Expiration = now.Add(time.Duration(n.Days) * day)
}

// Start puts a new pet in the slot, finishing one full cycle after now.
// It returns false, leaving the slot untouched, when the NPC rank has no cycle.
func Start(s *domain.Slot, table cycle.Table, now time.Time) bool {
	d, ok := table.Duration(s.NPC.Rank)
	if !ok {
		return false
	}
	s.Pet = domain.Pet{Name: s.NPC.Rank.PetName(), Start: now, Finish: now.Add(d)}
	MarkUsed(&s.NPC, now)
	return true
}

// StartAtProgress starts a pet that is already percent (0-100) through its cycle
func StartAtProgress(s *domain.Slot, table cycle.Table, now time.Time, percent float64) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("%w: progress %v%% out of range", domain.ErrInvalidArgument, percent)
	}
	d, ok := table.Duration(s.NPC.Rank)
	if !ok {
		return fmt.Errorf("%w: no cycle for %s", domain.ErrUnknownRank, s.NPC.Rank.PetName())
	}
	remaining := time.Duration(math.Round(float64(d) * (1 - percent/100)))
	finish := now.Add(remaining)
	s.Pet = domain.Pet{Name: s.NPC.Rank.PetName(), Start: finish.Add(-d), Finish: finish}
	MarkUsed(&s.NPC, now)
	return nil
}

// Progress returns how far the slot's pet is through its cycle, 0 to 1
func Progress(p domain.Pet, now time.Time) float64 {
	if !p.Scheduled() || p.Start.IsZero() {
		return 0
	}
	total := p.Finish.Sub(p.Start)
	if total <= 0 || !now.Before(p.Finish) {
		return 1
	}
	elapsed := now.Sub(p.Start)
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}
