package domain

import "strings"

// Filter represents task filtering state
type Filter struct {
	Block       map[string]bool
	Action      map[Action]bool
	OutputRank  map[Rank]bool
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Block:      make(map[string]bool),
		Action:     make(map[Action]bool),
		OutputRank: make(map[Rank]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Block) > 0 ||
		len(f.Action) > 0 ||
		len(f.OutputRank) > 0 ||
		f.SearchQuery != ""
}

// Apply filters a list of tasks, preserving order
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters
// Uses AND logic between filter types, OR logic within filter types
func (f *Filter) Matches(t Task) bool {
	if len(f.Block) > 0 && !f.Block[t.ServiceBlock] {
		return false
	}
	if len(f.Action) > 0 && !f.Action[t.Action] {
		return false
	}
	if len(f.OutputRank) > 0 && !f.OutputRank[t.OutputRank] {
		return false
	}

	// Search query (case-insensitive, matches pet name, description or key)
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(t.CurrentPet), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) &&
			!strings.Contains(t.Key(), query) {
			return false
		}
	}

	return true
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Block = make(map[string]bool)
	f.Action = make(map[Action]bool)
	f.OutputRank = make(map[Rank]bool)
	f.SearchQuery = ""
}

// ToggleBlock toggles a service block filter
func (f *Filter) ToggleBlock(block string) {
	if f.Block[block] {
		delete(f.Block, block)
	} else {
		f.Block[block] = true
	}
}

// ToggleAction toggles an action filter
func (f *Filter) ToggleAction(a Action) {
	if f.Action[a] {
		delete(f.Action, a)
	} else {
		f.Action[a] = true
	}
}

// ToggleOutputRank toggles an output rank filter
func (f *Filter) ToggleOutputRank(r Rank) {
	if f.OutputRank[r] {
		delete(f.OutputRank, r)
	} else {
		f.OutputRank[r] = true
	}
}
