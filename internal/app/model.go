// Package app contains the interactive planner: a bubbletea model over the
// farm service with dashboard, briefing, factory, warehouse and sales views.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Argeon482/Pet-Farm/internal/core/briefing"
	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/services/clock"
	"github.com/Argeon482/Pet-Farm/internal/services/farm"
	"github.com/Argeon482/Pet-Farm/internal/types"
	"github.com/Argeon482/Pet-Farm/internal/ui/board"
	"github.com/Argeon482/Pet-Farm/internal/ui/overlay"
	"github.com/Argeon482/Pet-Farm/internal/ui/styles"
	"github.com/Argeon482/Pet-Farm/internal/ui/toast"
)

const (
	toastDuration      = 3 * time.Second
	errorToastDuration = 6 * time.Second
	tickInterval       = time.Second
)

// Options configures the model
type Options struct {
	// Simulated enables time travel keys; nil runs on the service clock
	Simulated *clock.Simulated
	// StatePath is shown on the dashboard
	StatePath string
	Logger    *slog.Logger
}

// target is the house and slot a chain of menus operates on
type target struct {
	house int
	slot  int
}

// Model is the main application state
type Model struct {
	svc       *farm.Service
	sim       *clock.Simulated
	logger    *slog.Logger
	statePath string

	view  types.View
	brief briefing.Briefing

	// Briefing view
	dueCursor      int
	upcomingFilter *domain.Filter
	upcomingSort   *domain.Sort

	// Factory view
	cursor board.Cursor
	target target

	// Warehouse view
	itemCursor int
	editItem   string

	// scenario waiting for confirmation
	pendingScenario string

	overlayStack *overlay.Stack
	toasts       []types.Toast

	loading bool
	spinner spinner.Model

	width  int
	height int
	styles *styles.Styles
}

// New creates the model over svc
func New(svc *farm.Service, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.New().Selected

	return Model{
		svc:            svc,
		sim:            opts.Simulated,
		logger:         logger.With("component", "tui"),
		statePath:      opts.StatePath,
		view:           types.ViewDashboard,
		upcomingFilter: domain.NewFilter(),
		upcomingSort:   &domain.Sort{Field: domain.SortByFinish, Order: domain.SortAsc},
		overlayStack:   overlay.NewStack(),
		loading:        true,
		spinner:        sp,
		styles:         styles.New(),
	}
}

// Init loads the first briefing and starts the clock tick
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadBriefingCmd(false),
		tickEvery(tickInterval),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(tickInterval)

	case briefingMsg:
		m.loading = false
		m.brief = msg.brief
		m.dueCursor = clampIndex(m.dueCursor, len(m.brief.Due))
		m.cursor = m.cursor.Clamp(m.columns())
		m.itemCursor = clampIndex(m.itemCursor, len(m.svc.State().Warehouse))
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.logger.Warn("operation failed", "op", msg.label, "error", msg.err)
			m.addToast(types.ToastError, msg.err.Error())
			return m, nil
		}
		if msg.label != "" {
			m.addToast(types.ToastSuccess, msg.label)
		}
		return m, m.loadBriefingCmd(false)

	case completedMsg:
		return m.handleCompleted(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.InputMsg:
		return m.handleInput(msg)

	case overlay.SearchMsg:
		m.upcomingFilter.SearchQuery = msg.Query
		if s, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
			s.SetMatchCount(len(m.upcoming()))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)
	}

	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// columns builds the factory board from the current state
func (m Model) columns() []board.Column {
	return board.BuildColumns(m.svc.State().Houses, m.svc.Blocks())
}

// upcoming returns the filtered and sorted upcoming tasks
func (m Model) upcoming() []domain.Task {
	return m.upcomingSort.Apply(m.upcomingFilter.Apply(m.brief.Upcoming))
}

func (m *Model) addToast(level types.ToastLevel, message string) {
	d := toastDuration
	if level == types.ToastError {
		d = errorToastDuration
	}
	m.toasts = append(m.toasts, types.Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(d),
	})
}

func (m *Model) expireToasts() {
	m.toasts = toast.Active(m.toasts, time.Now())
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
