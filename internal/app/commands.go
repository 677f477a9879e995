package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Argeon482/Pet-Farm/internal/core/briefing"
	"github.com/Argeon482/Pet-Farm/internal/core/completion"
	"github.com/Argeon482/Pet-Farm/internal/domain"
)

type tickMsg time.Time

type briefingMsg struct {
	brief briefing.Briefing
}

// opDoneMsg reports a state edit; label is the success toast
type opDoneMsg struct {
	label string
	err   error
}

type completedMsg struct {
	task   domain.Task
	result completion.Result
	err    error
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadBriefingCmd reads the current session's briefing; refresh starts a new
// check-in session first
func (m Model) loadBriefingCmd(refresh bool) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		if refresh {
			return briefingMsg{brief: svc.RefreshBriefing()}
		}
		return briefingMsg{brief: svc.Briefing()}
	}
}

// opCmd runs a state edit off the update loop
func opCmd(label string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{label: label, err: fn()}
	}
}

func (m Model) completeCmd(task domain.Task) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		res, err := svc.CompleteTask(task.Key())
		return completedMsg{task: task, result: res, err: err}
	}
}
