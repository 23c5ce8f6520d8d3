package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zencheck/zencheck/internal/stats"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		m.Dashboard.Tab = nextStatsTab(m.Dashboard.Tab)
		return m, nil
	case "m":
		return m, m.fetchQuoteCmd()
	case " ", "enter":
		// Quick check: complete the next pending daily task from the dashboard.
		if daily, ok := m.App.DailyGroup(); ok {
			if next, found := stats.NextFocus(daily); found {
				m.App.ToggleTask(daily.ID, next.ID)
				m.Status = StatusBar{Text: "checked off: " + next.Text, IsError: false}
			}
		}
		return m, nil
	}
	return m, nil
}

func nextStatsTab(tab StatsTab) StatsTab {
	switch tab {
	case StatsTabDay:
		return StatsTabMonth
	case StatsTabMonth:
		return StatsTabYear
	default:
		return StatsTabDay
	}
}

func dayProgressInput(m Model) (progressPct, taskCount int) {
	completed, total := stats.DayStats(m.App.Groups)
	if total == 0 {
		return 0, 0
	}
	return 100 * completed / total, total
}
