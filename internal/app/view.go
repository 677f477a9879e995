package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Argeon482/Pet-Farm/internal/core/briefing"
	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/types"
	"github.com/Argeon482/Pet-Farm/internal/ui/board"
	"github.com/Argeon482/Pet-Farm/internal/ui/statusbar"
	"github.com/Argeon482/Pet-Farm/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading farm...")
	}

	header := m.renderHeader()
	bar := statusbar.New(m.view, m.width, m.styles).
		WithSimulation(m.sim != nil).
		WithInfo(m.statusInfo()).
		Render()

	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(bar), 1)

	toasts := toast.New(m.styles).Render(m.toasts, m.width)
	if toasts != "" {
		toasts = lipgloss.NewStyle().MaxHeight(bodyHeight / 2).Render(toasts)
		bodyHeight -= lipgloss.Height(toasts)
	}

	var body string
	if current := m.overlayStack.Current(); current != nil {
		body = m.renderOverlay(bodyHeight)
	} else {
		body = m.renderBody(bodyHeight)
	}
	body = lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		MaxWidth(m.width).
		MaxHeight(bodyHeight).
		Render(body)

	parts := []string{header, body}
	if toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, bar)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, len(types.Views))
	for i, v := range types.Views {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == m.view {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	now := m.svc.Now().Format("Mon Jan 2 15:04")
	clockView := m.styles.Clock.Render(now)
	if m.sim != nil {
		clockView = m.styles.ClockSim.Render("SIM " + now)
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(clockView), 1)
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(1).
		Render(left + strings.Repeat(" ", gap) + clockView)
}

// renderOverlay draws the top overlay centered over the body area
func (m Model) renderOverlay(height int) string {
	current := m.overlayStack.Current()
	content := current.View()
	if title := current.Title(); title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), content)
	}

	w, h := current.Size()
	box := m.styles.Overlay.
		Width(min(w, m.width-4)).
		MaxHeight(min(h+4, height)).
		Render(content)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) statusInfo() string {
	done, total := m.svc.Progress()
	if total == 0 {
		return "no tasks due"
	}
	return fmt.Sprintf("%d/%d due done", done, total)
}

func (m Model) renderBody(height int) string {
	switch m.view {
	case types.ViewBriefing:
		return m.renderBriefing(height)
	case types.ViewFactory:
		return board.Render(m.columns(), m.cursor, m.svc.Now(), m.styles, m.width, height)
	case types.ViewWarehouse:
		return m.renderWarehouse()
	case types.ViewSales:
		return m.renderSales(height)
	default:
		return m.renderDashboard()
	}
}

func (m Model) row(label, value string) string {
	return m.styles.Label.Render(fmt.Sprintf("%-14s", label)) + " " + value
}

func (m Model) renderDashboard() string {
	st := m.svc.State()
	now := m.svc.Now()
	proj := m.svc.Profit()

	champions := 0
	for _, h := range st.Houses {
		if h.Division == domain.DivisionChampion {
			champions++
		}
	}

	next := m.styles.Muted.Render("no check-in hours")
	if at, ok := st.Checkins.Next(now); ok {
		next = at.Format("Mon 15:04") + m.styles.Muted.Render(" in "+remaining(at.Sub(now)))
	}

	farm := []string{
		m.styles.PanelTitle.Render("Farm"),
		m.row("Cash", m.styles.Money.Render(money(st.Cash))),
		m.row("Houses", fmt.Sprintf("%d (%d champion)", len(st.Houses), champions)),
		m.row("S-Pets held", m.styles.Value.Render(fmt.Sprint(st.Collected.Quantity(domain.RankS)))),
		m.row("Check-ins", st.Checkins.String()),
		m.row("Next check-in", next),
	}
	if st.Scenario != "" {
		farm = append(farm, m.row("Scenario", st.Scenario))
	}
	if m.statePath != "" {
		farm = append(farm, m.row("State", m.styles.Muted.Render(m.statePath)))
	}

	net := m.styles.Money.Render(money(proj.NetProfit))
	if proj.NetProfit < 0 {
		net = m.styles.Loss.Render(money(proj.NetProfit))
	}
	weekly := []string{
		m.styles.PanelTitle.Render("Weekly projection"),
		m.row("Gross revenue", money(proj.GrossRevenue)),
		m.row("NPC expenses", m.styles.Loss.Render(money(-proj.NPCExpenses))),
		m.row("Perfection", m.styles.Loss.Render(money(-proj.PerfectionExpenses))),
		m.row("Net profit", net),
		m.row("S-Pets/week", fmt.Sprintf("%.1f", proj.SPetsPerWeek)),
	}

	panelWidth := max(min(m.width/2-2, 52), 30)
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Panel.Width(panelWidth).Render(strings.Join(farm, "\n")),
		m.styles.Panel.Width(panelWidth).Render(strings.Join(weekly, "\n")),
	)
	if m.width < 2*panelWidth+4 {
		panels = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Panel.Width(panelWidth).Render(strings.Join(farm, "\n")),
			m.styles.Panel.Width(panelWidth).Render(strings.Join(weekly, "\n")),
		)
	}

	lines := []string{panels, ""}
	if a, ok := m.svc.NextAction(); ok {
		lines = append(lines, m.styles.PanelTitle.Render("Next action ")+
			fmt.Sprintf("House %d slot %d: %s ready %s (%s)", a.HouseID, a.Slot+1, a.Rank.PetName(),
				a.At.Format("Mon 15:04"), a.ServiceBlock))
	} else {
		lines = append(lines, m.styles.Muted.Render("Nothing is training"))
	}

	alerts := m.svc.Alerts()
	if len(alerts) > 0 {
		lines = append(lines, "", m.styles.PanelTitle.Render(fmt.Sprintf("Alerts (%d)", len(alerts))))
		for _, a := range alerts {
			lines = append(lines, m.styles.Warning.Render("  ! ")+a.Message)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBriefing(height int) string {
	b := m.brief
	now := m.svc.Now()
	done, total := m.svc.Progress()

	var lines []string
	title := fmt.Sprintf("Due now (%d)", len(b.Due))
	if total > 0 {
		title += "  " + progressBar(float64(done)/float64(total)) + fmt.Sprintf(" %d/%d", done, total)
	}
	lines = append(lines, m.styles.PanelTitle.Render(title))

	if len(b.Due) == 0 {
		lines = append(lines, m.styles.Muted.Render("  Nothing to do at this check-in"))
	}
	for i, t := range b.Due {
		state := m.svc.TaskState(t.Key())
		marker := "  "
		if i == m.dueCursor {
			marker = m.styles.Selected.Render("▶ ")
		}
		line := fmt.Sprintf("%s %-6s %-22s %s", stateIcon(state), t.Key(), t.ServiceBlock, t.Description)
		lines = append(lines, marker+m.styles.TaskState(state).Render(line))
	}

	lines = append(lines, "")
	header := fmt.Sprintf("Upcoming before %s", b.NextCheckin.Format("Mon 15:04"))
	if m.upcomingFilter.IsActive() {
		header += m.styles.Warning.Render(" [filtered]")
	}
	lines = append(lines, m.styles.PanelTitle.Render(header))

	upcoming := m.upcoming()
	if len(upcoming) == 0 {
		lines = append(lines, m.styles.Muted.Render("  Nothing finishes before the next check-in"))
	}
	blocks, grouped := domain.GroupByBlock(upcoming)
	for _, blk := range blocks {
		lines = append(lines, "  "+m.styles.Label.Render(blk))
		for _, t := range grouped[blk] {
			lines = append(lines, fmt.Sprintf("    %-6s %-28s %s", t.Key(), t.Description,
				m.styles.Muted.Render(t.FinishAt.Format("15:04")+" · in "+remaining(t.FinishAt.Sub(now)))))
		}
	}

	if len(lines) > height {
		lines = append(lines[:height-1], m.styles.Muted.Render(fmt.Sprintf("  +%d more", len(lines)-height+1)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderWarehouse() string {
	st := m.svc.State()
	lines := []string{m.styles.PanelTitle.Render("Warehouse")}
	for i, item := range st.Warehouse {
		marker := "  "
		if i == m.itemCursor {
			marker = m.styles.Selected.Render("▶ ")
		}
		line := fmt.Sprintf("%-10s %-36s %6d  safety %d", item.ID, item.Name, item.Stock, item.SafetyStock)
		if item.BelowSafety() {
			line = m.styles.Warning.Render(line + "  low")
		}
		lines = append(lines, marker+line)
	}

	lines = append(lines, "", m.styles.PanelTitle.Render("Collected"))
	if len(st.Collected) == 0 {
		lines = append(lines, m.styles.Muted.Render("  none"))
	}
	for _, c := range st.Collected {
		lines = append(lines, fmt.Sprintf("  %-8s %d", c.Rank.PetName(), c.Quantity))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSales(height int) string {
	st := m.svc.State()
	held := st.Collected.Quantity(domain.RankS)
	price := st.Prices.Price(domain.RankS)

	lines := []string{
		m.styles.PanelTitle.Render("Market"),
		m.row("S-Pets held", fmt.Sprint(held)),
		m.row("S-Pet price", money(price)),
		m.row("Held value", m.styles.Money.Render(money(float64(held)*price))),
		m.row("Cash", m.styles.Money.Render(money(st.Cash))),
	}
	for _, h := range st.Houses {
		if h.Division == domain.DivisionChampion {
			lines = append(lines, m.row("Perfection", fmt.Sprintf("house %d, %d attempts", h.ID, h.PerfectionAttempts)))
		}
	}

	lines = append(lines, "", m.styles.PanelTitle.Render(fmt.Sprintf("Sales (%d)", len(st.Sales))))
	if len(st.Sales) == 0 {
		lines = append(lines, m.styles.Muted.Render("  No sales yet"))
	}
	room := max(height-len(lines), 1)
	for i, s := range st.Sales {
		if i >= room {
			break
		}
		lines = append(lines, fmt.Sprintf("  %s  %3d × %-6s %10s", s.Timestamp.Format("Jan 2 15:04"),
			s.Quantity, s.Rank.PetName(), m.styles.Money.Render(money(s.Total))))
	}
	return strings.Join(lines, "\n")
}

func stateIcon(s briefing.TaskState) string {
	switch s {
	case briefing.TaskCompleted:
		return "✓"
	case briefing.TaskActive:
		return "▸"
	default:
		return "○"
	}
}

func progressBar(fraction float64) string {
	filled := int(math.Round(math.Max(0, math.Min(1, fraction)) * 10))
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// money renders large amounts with K, M and B suffixes
func money(v float64) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%s%.2fB", sign, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s%.2fM", sign, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s%.1fK", sign, v/1e3)
	default:
		return fmt.Sprintf("%s%.0f", sign, v)
	}
}

func remaining(d time.Duration) string {
	if d <= 0 {
		return "now"
	}
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
