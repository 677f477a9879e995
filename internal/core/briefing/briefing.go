// Package briefing turns the current farm state into the check-in task list.
//
// A briefing splits every slot with a scheduled pet into three sets relative to
// now and the next check-in: due (finished), upcoming (finishes before the next
// visit) and neither. Due tasks come back in the order they must be completed.
package briefing

import (
	"time"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// Briefing is the task list for one check-in
type Briefing struct {
	// Due tasks in completion order
	Due []domain.Task `json:"dueTasks"`
	// Upcoming tasks in house/slot order; callers group by service block
	Upcoming    []domain.Task `json:"upcomingTasks"`
	NextCheckin time.Time     `json:"nextCheckin"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// Generate builds the briefing at now. blocks maps house id to service block
// label (see domain.AssignServiceBlocks); houses missing from it get "".
//
// An empty schedule is tolerated: the next check-in falls back to
// Schedule.FallbackInstant.
func Generate(houses []domain.House, checkins domain.Schedule, blocks map[int]string, now time.Time) Briefing {
	next, ok := checkins.Next(now)
	if !ok {
		next = checkins.FallbackInstant(now)
	}

	b := Briefing{
		Due:         []domain.Task{},
		Upcoming:    []domain.Task{},
		NextCheckin: next,
		GeneratedAt: now,
	}

	for _, h := range houses {
		for slot, s := range h.Slots {
			if !s.Pet.Scheduled() {
				continue
			}
			task, ok := domain.NewTask(h, slot, blocks[h.ID])
			if !ok {
				continue
			}
			switch finish := s.Pet.Finish; {
			case !finish.After(now):
				b.Due = append(b.Due, task)
			case finish.Before(next):
				b.Upcoming = append(b.Upcoming, task)
			}
		}
	}

	b.Due = domain.SortByPriorityDesc(b.Due)
	return b
}

// UpcomingByBlock groups upcoming tasks by service block in first-seen order
func (b Briefing) UpcomingByBlock() ([]string, map[string][]domain.Task) {
	return domain.GroupByBlock(b.Upcoming)
}

// FindDue returns the due task with the given key
func (b Briefing) FindDue(key string) (domain.Task, bool) {
	for _, t := range b.Due {
		if t.Key() == key {
			return t, true
		}
	}
	return domain.Task{}, false
}
