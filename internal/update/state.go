package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/zencheck/zencheck/internal/model"
	"github.com/zencheck/zencheck/internal/stats"
	"github.com/zencheck/zencheck/internal/views"
)

// visibleGroups hides the calendar bucket from the group cycle; it is only
// reachable through the calendar view.
func (m Model) visibleGroups() []model.ChecklistGroup {
	out := make([]model.ChecklistGroup, 0, len(m.App.Groups))
	for _, g := range m.App.Groups {
		if g.EffectiveType() == model.GroupCalendar {
			continue
		}
		out = append(out, g)
	}
	return out
}

func (m Model) currentGroup() (model.ChecklistGroup, bool) {
	groups := m.visibleGroups()
	if len(groups) == 0 {
		return model.ChecklistGroup{}, false
	}
	i := m.Lists.GroupCursor
	if i < 0 || i >= len(groups) {
		i = 0
	}
	return groups[i], true
}

func (m Model) currentTask() (model.Task, bool) {
	g, ok := m.currentGroup()
	if !ok || len(g.Tasks) == 0 {
		return model.Task{}, false
	}
	i := m.Lists.TaskCursor
	if i < 0 || i >= len(g.Tasks) {
		i = 0
	}
	return g.Tasks[i], true
}

// currentSketch finds the group the sketch view is pointed at, which is the
// active group when it is a sketch, else the first sketch in the list.
func (m Model) currentSketch() (model.ChecklistGroup, bool) {
	if g, ok := m.App.ActiveGroup(); ok && g.EffectiveType() == model.GroupSketch {
		return g, true
	}
	for _, g := range m.App.Groups {
		if g.EffectiveType() == model.GroupSketch {
			return g, true
		}
	}
	return model.ChecklistGroup{}, false
}

func (m Model) selectedDate() string {
	if m.App.SelectedDate != "" {
		return m.App.SelectedDate
	}
	return m.App.Today()
}

func (m Model) calendarTasks() []model.Task {
	bucket, ok := m.App.CalendarBucket()
	if !ok {
		return nil
	}
	return stats.CalendarDayGroup(bucket, m.selectedDate()).Tasks
}

func (m *Model) clampCursors() {
	groups := m.visibleGroups()
	if m.Lists.GroupCursor >= len(groups) {
		m.Lists.GroupCursor = len(groups) - 1
	}
	if m.Lists.GroupCursor < 0 {
		m.Lists.GroupCursor = 0
	}
	if g, ok := m.currentGroup(); ok {
		if m.Lists.TaskCursor >= len(g.Tasks) {
			m.Lists.TaskCursor = len(g.Tasks) - 1
		}
	}
	if m.Lists.TaskCursor < 0 {
		m.Lists.TaskCursor = 0
	}
	day := m.calendarTasks()
	if m.Calendar.Cursor >= len(day) {
		m.Calendar.Cursor = len(day) - 1
	}
	if m.Calendar.Cursor < 0 {
		m.Calendar.Cursor = 0
	}
}

func (m *Model) syncBubbleData() {
	m.clampCursors()

	if g, ok := m.currentGroup(); ok {
		items := make([]list.Item, 0, len(g.Tasks))
		for _, t := range g.Tasks {
			desc := t.Category
			if t.HasReminder() {
				desc += " @" + t.NotificationTime
			}
			items = append(items, listItem{title: t.Text, description: desc})
		}
		m.taskList.Title = g.Title
		m.taskList.SetItems(items)
		if len(items) > 0 {
			m.taskList.Select(m.Lists.TaskCursor)
		}
	} else {
		m.taskList.SetItems([]list.Item{})
	}

	day := m.calendarTasks()
	rows := make([]table.Row, 0, len(day))
	for _, t := range day {
		done := "[ ]"
		if t.Completed {
			done = "[x]"
		}
		rows = append(rows, table.Row{t.Date, done, t.Text})
	}
	m.calendarTable.SetRows(rows)
	if len(rows) > 0 && m.Calendar.Cursor < len(rows) {
		m.calendarTable.SetCursor(m.Calendar.Cursor)
	}

	if sketch, ok := m.currentSketch(); ok && !m.Sketch.Editing {
		m.notesArea.SetValue(sketch.Notes)
		md := sketch.Notes
		if strings.TrimSpace(md) == "" {
			md = "_No notes yet_"
		}
		m.previewPort.SetContent(views.RenderMarkdown(md, m.App.Theme))
	}

	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.Lists.AddMode || m.Calendar.AddMode {
		m.quickAddInput.Focus()
	}
}
