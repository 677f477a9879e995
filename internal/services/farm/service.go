// Package farm owns the application state and exposes every user operation
// on it: the check-in briefing and its checklist, factory floor edits,
// warehouse, sales and perfection.
//
// Operations copy the state, mutate the copy and commit it only when every
// step succeeded, so a failed operation never leaves a partial change behind.
// When a Store is configured the committed state is persisted before it
// becomes visible.
package farm

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Argeon482/Pet-Farm/internal/core/briefing"
	"github.com/Argeon482/Pet-Farm/internal/core/completion"
	"github.com/Argeon482/Pet-Farm/internal/core/cycle"
	"github.com/Argeon482/Pet-Farm/internal/core/dashboard"
	"github.com/Argeon482/Pet-Farm/internal/core/profit"
	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/services/clock"
	"github.com/Argeon482/Pet-Farm/internal/services/snapshot"
)

// Options configures a Service. Zero values fall back to the defaults.
type Options struct {
	Table             cycle.Table
	BlocksPerDivision int
	ExpiryWindow      time.Duration
	// Store persists every committed state; nil keeps the state in memory only
	Store Store
}

// Service is the farm state plus the static configuration it is planned
// against. It is safe for concurrent use.
type Service struct {
	mu     sync.Mutex
	state  snapshot.State
	clock  clock.Clock
	table  cycle.Table
	blocks int
	window time.Duration
	store  Store
	logger *slog.Logger

	// current check-in session, nil until the first briefing
	brief     *briefing.Briefing
	checklist *briefing.Checklist
}

// NewService creates a service over st
func NewService(st snapshot.State, clk clock.Clock, opts Options, logger *slog.Logger) *Service {
	if opts.Table.Len() == 0 {
		opts.Table = cycle.Default()
	}
	if opts.BlocksPerDivision < 1 {
		opts.BlocksPerDivision = domain.DefaultBlocksPerDivision
	}
	if opts.ExpiryWindow <= 0 {
		opts.ExpiryWindow = dashboard.DefaultExpiryWindow
	}
	return &Service{
		state:  st.Clone(),
		clock:  clk,
		table:  opts.Table,
		blocks: opts.BlocksPerDivision,
		window: opts.ExpiryWindow,
		store:  opts.Store,
		logger: logger,
	}
}

// Now returns the service clock's current time
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// Clock returns the clock the service reads
func (s *Service) Clock() clock.Clock {
	return s.clock
}

// CycleTable returns the cycle durations in use
func (s *Service) CycleTable() cycle.Table {
	return s.table
}

// State returns a copy of the current state
func (s *Service) State() snapshot.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Blocks returns the derived service block of every house
func (s *Service) Blocks() map[int]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.AssignServiceBlocks(s.state.Houses, s.blocks)
}

// Briefing returns the briefing of the current check-in session, starting a
// session if none is open.
func (s *Service) Briefing() briefing.Briefing {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureSession()
	return *s.brief
}

// RefreshBriefing regenerates the briefing at the current time and starts a
// new checklist.
func (s *Service) RefreshBriefing() briefing.Briefing {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brief = nil
	s.ensureSession()
	return *s.brief
}

// TaskState returns the checklist state of a due task in the current session
func (s *Service) TaskState(key string) briefing.TaskState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureSession()
	return s.checklist.State(key)
}

// ActiveTask returns the due task that must be completed next
func (s *Service) ActiveTask() (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureSession()
	return s.checklist.Active()
}

// Progress returns completed and total due tasks of the current session
func (s *Service) Progress() (done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureSession()
	return s.checklist.Done(), len(s.checklist.Tasks())
}

func (s *Service) ensureSession() {
	if s.brief != nil {
		return
	}
	b := s.generate(s.clock.Now())
	s.brief = &b
	s.checklist = briefing.NewChecklist(b)
}

func (s *Service) generate(now time.Time) briefing.Briefing {
	blocks := domain.AssignServiceBlocks(s.state.Houses, s.blocks)
	return briefing.Generate(s.state.Houses, s.state.Checkins, blocks, now)
}

// regenerate rebuilds the session briefing after a completion. Due tasks stay
// those of the open checklist, extended by newly due ones, so completion order
// and progress carry over; upcoming tasks and the next check-in are fresh.
func (s *Service) regenerate(now time.Time) {
	b := s.generate(now)
	s.checklist.Extend(b.Due)
	b.Due = append([]domain.Task(nil), s.checklist.Tasks()...)
	s.brief = &b
}

// CompleteTask completes the active due task identified by key. Any other due
// task is refused with domain.ErrNotActiveTask. After a completion the session
// briefing is regenerated from the new state. A task whose slot changed
// since the briefing was generated is marked done without touching the state;
// the returned result then has Applied false.
func (s *Service) CompleteTask(key string) (completion.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureSession()

	task, ok := s.brief.FindDue(key)
	if !ok {
		return completion.Result{}, &domain.FarmError{Op: "complete", Err: fmt.Errorf("%w: no due task %s", domain.ErrNotFound, key)}
	}
	if s.checklist.State(key) != briefing.TaskActive {
		return completion.Result{}, &domain.FarmError{Op: "complete", HouseID: task.HouseID, Slot: task.SlotIndex, Err: s.checklist.Complete(key)}
	}

	now := s.clock.Now()
	res := completion.Apply(task, s.state.Houses, s.state.Warehouse, s.table, now)
	if !res.Applied {
		s.logger.Warn("stale task skipped", "task", key, "rank", task.CurrentRank)
		_ = s.checklist.Complete(key)
		return res, nil
	}

	next := s.state.Clone()
	next.Houses = res.Houses
	next.Warehouse = res.Warehouse
	next.Collected = next.Collected.Add(domain.RankS, res.CollectedDelta)
	if err := s.commit("complete", next, now); err != nil {
		return completion.Result{}, err
	}
	_ = s.checklist.Complete(key)
	s.regenerate(now)

	s.logger.Info("task completed",
		"task", key,
		"output", task.OutputRank,
		"placement", res.Placement,
		"restocked", res.Restocked)
	return res, nil
}

// Profit projects weekly profit for the current houses and schedule
func (s *Service) Profit() profit.Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return profit.Project(s.state.Houses, s.table, s.state.Prices, s.state.Checkins)
}

// Compare projects the current houses under schedule user and under the
// recommended schedule.
func (s *Service) Compare(user domain.Schedule) profit.Comparison {
	s.mu.Lock()
	defer s.mu.Unlock()
	return profit.Compare(s.state.Houses, s.table, s.state.Prices, user, domain.Schedule(domain.DefaultCheckinHours))
}

// Alerts returns expiring NPCs and low stock at the current time
func (s *Service) Alerts() []dashboard.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dashboard.Alerts(s.state.Houses, s.state.Warehouse, s.clock.Now(), s.window)
}

// NextAction returns the next pet to finish
func (s *Service) NextAction() (dashboard.Action, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blocks := domain.AssignServiceBlocks(s.state.Houses, s.blocks)
	return dashboard.NextAction(s.state.Houses, blocks, s.clock.Now())
}

// Save persists the current state without changing it
func (s *Service) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(s.state); err != nil {
		return &domain.FarmError{Op: "save", Err: err}
	}
	return nil
}

// LoadScenario replaces the farm with a built-in example. The profile id is kept.
func (s *Service) LoadScenario(name string) error {
	sc, err := snapshot.LookupScenario(name)
	if err != nil {
		return &domain.FarmError{Op: "load-scenario", Err: err}
	}
	return s.update("load-scenario", func(st *snapshot.State, now time.Time) error {
		id := st.ProfileID
		*st = sc.Build(now)
		st.ProfileID = id
		return nil
	}, "scenario", name)
}

// update runs fn against a copy of the state and commits the copy. It closes
// the current check-in session because the edit may change which slots are due.
func (s *Service) update(op string, fn func(st *snapshot.State, now time.Time) error, attrs ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	next := s.state.Clone()
	if err := fn(&next, now); err != nil {
		s.logger.Debug("operation rejected", append([]any{"op", op, "error", err}, attrs...)...)
		return err
	}
	if err := s.commit(op, next, now); err != nil {
		return err
	}
	s.brief, s.checklist = nil, nil
	s.logger.Info(op, attrs...)
	return nil
}

// commit persists next and makes it the current state. Caller holds s.mu.
func (s *Service) commit(op string, next snapshot.State, now time.Time) error {
	next.UpdatedAt = now
	if s.store != nil {
		if err := s.store.Save(next); err != nil {
			s.logger.Error("save failed", "op", op, "error", err)
			return &domain.FarmError{Op: op, Err: err}
		}
	}
	s.state = next
	return nil
}
