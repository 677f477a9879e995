package briefing

import (
	"fmt"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

// TaskState is the checklist position of a due task
type TaskState int

const (
	TaskPending TaskState = iota
	TaskActive
	TaskCompleted
)

func (s TaskState) String() string {
	switch s {
	case TaskPending:
		return "pending"
	case TaskActive:
		return "active"
	case TaskCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Checklist enforces completion of due tasks strictly in briefing order.
// Only the first uncompleted task (the active one) may be completed.
type Checklist struct {
	tasks     []domain.Task
	completed map[string]bool
}

// NewChecklist starts an empty checklist over the briefing's due tasks
func NewChecklist(b Briefing) *Checklist {
	tasks := make([]domain.Task, len(b.Due))
	copy(tasks, b.Due)
	return &Checklist{tasks: tasks, completed: make(map[string]bool)}
}

// Tasks returns the due tasks in order
func (c *Checklist) Tasks() []domain.Task {
	return c.tasks
}

// Active returns the first uncompleted task. ok is false once every task is done.
func (c *Checklist) Active() (task domain.Task, ok bool) {
	for _, t := range c.tasks {
		if !c.completed[t.Key()] {
			return t, true
		}
	}
	return domain.Task{}, false
}

// IsActive reports whether key identifies the active task
func (c *Checklist) IsActive(key string) bool {
	t, ok := c.Active()
	return ok && t.Key() == key
}

// State returns the checklist state of the task with the given key
func (c *Checklist) State(key string) TaskState {
	switch {
	case c.completed[key]:
		return TaskCompleted
	case c.IsActive(key):
		return TaskActive
	default:
		return TaskPending
	}
}

// Complete marks the active task done. Any other task is refused with
// domain.ErrNotActiveTask.
func (c *Checklist) Complete(key string) error {
	if c.completed[key] {
		return fmt.Errorf("task %s: already completed", key)
	}
	if !c.IsActive(key) {
		return fmt.Errorf("task %s: %w", key, domain.ErrNotActiveTask)
	}
	c.completed[key] = true
	return nil
}

// Extend appends the tasks whose keys the checklist does not hold yet. Order
// and completion state of the existing tasks are unchanged.
func (c *Checklist) Extend(tasks []domain.Task) {
	known := make(map[string]bool, len(c.tasks))
	for _, t := range c.tasks {
		known[t.Key()] = true
	}
	for _, t := range tasks {
		if !known[t.Key()] {
			c.tasks = append(c.tasks, t)
			known[t.Key()] = true
		}
	}
}

// Done returns how many tasks have been completed
func (c *Checklist) Done() int {
	return len(c.completed)
}

// Remaining returns how many tasks are still open
func (c *Checklist) Remaining() int {
	return len(c.tasks) - len(c.completed)
}

// Finished reports whether every due task has been completed
func (c *Checklist) Finished() bool {
	return c.Remaining() == 0
}
