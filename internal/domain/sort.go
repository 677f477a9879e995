package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByPriority SortField = "priority"
	SortByFinish   SortField = "finish"
	SortByBlock    SortField = "block"
	SortByHouse    SortField = "house"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state for task lists
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction
// If field is different, sets new field with ascending order
// If field is same, toggles between ascending and descending
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply sorts a copy of tasks. Sorting is stable, so ties keep their input order.
func (s *Sort) Apply(tasks []Task) []Task {
	if len(tasks) == 0 {
		return tasks
	}

	result := make([]Task, len(tasks))
	copy(result, tasks)

	less := func(i, j int) bool { return false }
	switch s.Field {
	case SortByPriority:
		// Ascending priority means most urgent first: highest output rank leads
		less = func(i, j int) bool { return result[i].OutputRank > result[j].OutputRank }
	case SortByFinish:
		less = func(i, j int) bool { return result[i].FinishAt.Before(result[j].FinishAt) }
	case SortByBlock:
		less = func(i, j int) bool { return result[i].ServiceBlock < result[j].ServiceBlock }
	case SortByHouse:
		less = func(i, j int) bool {
			if result[i].HouseID != result[j].HouseID {
				return result[i].HouseID < result[j].HouseID
			}
			return result[i].SlotIndex < result[j].SlotIndex
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if s.Order == SortDesc {
			return less(j, i)
		}
		return less(i, j)
	})
	return result
}

// SortByPriorityDesc orders tasks for the due checklist: highest output rank
// first (collections, then A, B, C...), ties in their original order.
func SortByPriorityDesc(tasks []Task) []Task {
	s := Sort{Field: SortByPriority, Order: SortAsc}
	return s.Apply(tasks)
}

// GroupByBlock groups tasks by service block, keeping first-seen block order
// and task order within each block.
func GroupByBlock(tasks []Task) (blocks []string, grouped map[string][]Task) {
	grouped = make(map[string][]Task)
	for _, t := range tasks {
		if _, ok := grouped[t.ServiceBlock]; !ok {
			blocks = append(blocks, t.ServiceBlock)
		}
		grouped[t.ServiceBlock] = append(grouped[t.ServiceBlock], t)
	}
	return blocks, grouped
}
