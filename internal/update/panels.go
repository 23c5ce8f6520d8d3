package update

import (
	"fmt"
	"time"

	"github.com/zencheck/zencheck/internal/model"
	"github.com/zencheck/zencheck/internal/stats"
	"github.com/zencheck/zencheck/internal/views"
)

func (m Model) renderDashboardView() string {
	data := views.DashboardPanelData{
		Tab:   string(m.Dashboard.Tab),
		Quote: m.Dashboard.Quote,
	}
	for _, w := range m.App.Widgets {
		data.Widgets = append(data.Widgets, views.WidgetData{
			ID: w.ID, Title: w.Title, Icon: w.Icon, Enabled: w.Enabled,
		})
	}

	completed, total := stats.DayStats(m.App.Groups)
	data.DayCompleted = completed
	data.DayTotal = total
	today := m.App.Today()
	data.MonthCompleted = stats.MonthCompleted(m.App.History, today[:7])
	data.YearActiveDays = stats.YearActiveDays(m.App.History, today[:4])

	for _, g := range m.visibleGroups() {
		data.Groups = append(data.Groups, views.GroupLineData{
			Title:    g.Title,
			Color:    string(g.Color),
			Kind:     string(g.EffectiveType()),
			Progress: stats.ProgressPercent(g),
		})
	}
	return views.RenderDashboardPanel(data)
}

func (m Model) renderQuickCheckView() string {
	enabled := false
	for _, w := range m.App.Widgets {
		if w.ID == model.WidgetQuickCheck && w.Enabled {
			enabled = true
		}
	}
	data := views.QuickCheckData{Enabled: enabled}
	if daily, ok := m.App.DailyGroup(); ok {
		data.GroupTitle = daily.Title
		if next, found := stats.NextFocus(daily); found {
			data.NextTask = next.Text
		} else {
			data.AllDone = len(daily.Tasks) > 0
		}
		for _, t := range stats.PendingPreview(daily, stats.PendingPreviewCap) {
			data.Pending = append(data.Pending, t.Text)
		}
	}
	return views.RenderQuickCheckPanel(data)
}

func (m Model) renderListsView() string {
	data := views.GroupListData{TaskListView: m.taskList.View()}
	for i, g := range m.visibleGroups() {
		line := views.GroupLineData{
			Title:    g.Title,
			Color:    string(g.Color),
			Kind:     string(g.EffectiveType()),
			Progress: stats.ProgressPercent(g),
			Selected: i == m.Lists.GroupCursor,
		}
		data.Groups = append(data.Groups, line)
	}
	if m.Lists.AddMode || m.Lists.RenameMode {
		data.InputView = m.quickAddInput.View()
	}
	return views.RenderGroupListPanel(data)
}

func (m Model) renderTaskDetailView() string {
	t, ok := m.currentTask()
	if !ok {
		return "task:\n(no selection)"
	}
	return views.RenderTaskDetailPanel(views.TaskDetailData{
		Text:             t.Text,
		Category:         t.Category,
		Completed:        t.Completed,
		CreatedAt:        t.CreatedAt.Format(model.DateLayout),
		NotificationTime: t.NotificationTime,
		RepeatInterval:   t.RepeatInterval,
		RepeatCount:      t.RepeatCount,
		RemindersSent:    t.RemindersSent,
	})
}

func (m Model) renderReminderEditorIfVisible() string {
	ed := m.ReminderEditor
	return views.RenderReminderEditor(views.ReminderEditorData{
		Active:       ed.Active,
		Field:        ed.Field,
		ClockText:    ed.ClockText,
		IntervalText: ed.IntervalText,
		CountText:    ed.CountText,
		ErrorText:    ed.Err,
	})
}

func (m Model) renderCalendarView() string {
	date := m.selectedDate()
	ref, err := time.Parse(model.DateLayout, date)
	if err != nil {
		ref = time.Now()
	}
	grid := stats.GridFor(ref)

	busy := map[int]bool{}
	if bucket, ok := m.App.CalendarBucket(); ok {
		for day := 1; day <= grid.Days; day++ {
			key := fmt.Sprintf("%04d-%02d-%02d", ref.Year(), int(ref.Month()), day)
			if stats.TasksOnDate(bucket, key) > 0 {
				busy[day] = true
			}
		}
	}

	todayDay := 0
	if t, err := time.Parse(model.DateLayout, m.App.Today()); err == nil && t.Year() == ref.Year() && t.Month() == ref.Month() {
		todayDay = t.Day()
	}

	data := views.CalendarPanelData{
		MonthLabel:    ref.Format("January 2006"),
		LeadingBlanks: grid.LeadingBlanks,
		Days:          grid.Days,
		SelectedDay:   ref.Day(),
		TodayDay:      todayDay,
		BusyDays:      busy,
	}
	if m.Calendar.AddMode {
		data.InputView = m.quickAddInput.View()
	}
	return views.RenderCalendarPanel(data)
}

func (m Model) renderCalendarDayView() string {
	data := views.CalendarDayData{
		Date:      m.selectedDate(),
		TableView: m.calendarTable.View(),
	}
	for i, t := range m.calendarTasks() {
		data.Tasks = append(data.Tasks, views.CalendarTaskData{
			Text:      t.Text,
			Completed: t.Completed,
			Selected:  i == m.Calendar.Cursor,
		})
	}
	return views.RenderCalendarDayPanel(data)
}

func (m Model) renderSketchView() string {
	sketch, ok := m.currentSketch()
	if !ok {
		return "sketch:\n(none, create one with /sketch <title>)"
	}
	return views.RenderSketchPanel(views.SketchData{
		Title:      sketch.Title,
		Editing:    m.Sketch.Editing,
		EditorView: m.notesArea.View(),
	})
}

func (m Model) renderSketchPreview() string {
	if _, ok := m.currentSketch(); !ok {
		return ""
	}
	return "preview:\n" + m.previewPort.View()
}

