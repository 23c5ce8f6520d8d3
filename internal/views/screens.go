package views

import (
	"fmt"
	"strings"
)

type WidgetData struct {
	ID      string
	Title   string
	Icon    string
	Enabled bool
}

type GroupLineData struct {
	Title    string
	Color    string
	Kind     string
	Progress int
	Selected bool
}

type DashboardPanelData struct {
	Widgets        []WidgetData
	Groups         []GroupLineData
	Tab            string
	Quote          string
	DayCompleted   int
	DayTotal       int
	MonthCompleted int
	YearActiveDays int
}

type QuickCheckData struct {
	Enabled    bool
	GroupTitle string
	NextTask   string
	Pending    []string
	AllDone    bool
}

type GroupListData struct {
	Groups       []GroupLineData
	TaskListView string
	InputView    string
}

type TaskDetailData struct {
	Text             string
	Category         string
	Completed        bool
	CreatedAt        string
	NotificationTime string
	RepeatInterval   int
	RepeatCount      int
	RemindersSent    int
}

type ReminderEditorData struct {
	Active       bool
	Field        int
	ClockText    string
	IntervalText string
	CountText    string
	ErrorText    string
}

type CalendarPanelData struct {
	MonthLabel    string
	LeadingBlanks int
	Days          int
	SelectedDay   int
	TodayDay      int
	BusyDays      map[int]bool
	InputView     string
}

type CalendarTaskData struct {
	Text      string
	Completed bool
	Selected  bool
}

type CalendarDayData struct {
	Date      string
	TableView string
	Tasks     []CalendarTaskData
}

type SketchData struct {
	Title      string
	Editing    bool
	EditorView string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	b.WriteString("actions: [s]stats-tab [m]motivation [space]quick-check\n")

	statsEnabled := false
	for _, w := range data.Widgets {
		mark := "off"
		if w.Enabled {
			mark = "on"
		}
		b.WriteString(fmt.Sprintf("widget: %s %s [%s]\n", w.Icon, w.Title, mark))
		if w.ID == "stats" && w.Enabled {
			statsEnabled = true
		}
	}

	if statsEnabled {
		b.WriteString("\nstats [" + data.Tab + "]:\n")
		switch data.Tab {
		case "month":
			b.WriteString(fmt.Sprintf("completed this month: %d\n", data.MonthCompleted))
		case "year":
			b.WriteString(fmt.Sprintf("active days this year: %d\n", data.YearActiveDays))
		default:
			pct := 0
			if data.DayTotal > 0 {
				pct = 100 * data.DayCompleted / data.DayTotal
			}
			b.WriteString(fmt.Sprintf("today: %d/%d %s %d%%\n", data.DayCompleted, data.DayTotal, progressBar(pct, 20), pct))
		}
	}

	if len(data.Groups) > 0 {
		b.WriteString("\nlists:\n")
		for _, g := range data.Groups {
			b.WriteString(fmt.Sprintf("- [%s] %s %s %d%%\n", g.Color, g.Title, progressBar(g.Progress, 10), g.Progress))
		}
	}

	if data.Quote != "" {
		b.WriteString("\nmotivation: " + data.Quote + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderQuickCheckPanel(data QuickCheckData) string {
	if !data.Enabled {
		return "quick-check:\n(widget disabled)"
	}
	var b strings.Builder
	b.WriteString("quick-check:\n")
	if data.GroupTitle != "" {
		b.WriteString(fmt.Sprintf("list: %s\n", data.GroupTitle))
	}
	switch {
	case data.NextTask != "":
		b.WriteString(fmt.Sprintf("next: %s\n", data.NextTask))
	case data.AllDone:
		b.WriteString("next: all done for today\n")
	default:
		b.WriteString("next: (no tasks yet)\n")
	}
	if len(data.Pending) > 0 {
		b.WriteString("pending:\n")
		for _, text := range data.Pending {
			b.WriteString("- " + text + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderGroupListPanel(data GroupListData) string {
	var b strings.Builder
	b.WriteString("lists:\n")
	b.WriteString("actions: [j/k]task [J/K]list [space]toggle [a]add [n]reminder\n")
	for _, g := range data.Groups {
		cursor := " "
		if g.Selected {
			cursor = ">"
		}
		kind := ""
		if g.Kind != "standard" {
			kind = " (" + g.Kind + ")"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s%s %s %d%%\n", cursor, g.Color, g.Title, kind, progressBar(g.Progress, 10), g.Progress))
	}
	if data.InputView != "" {
		b.WriteString(data.InputView + "\n")
	}
	b.WriteString("\n" + data.TaskListView)
	return strings.TrimSpace(b.String())
}

func RenderTaskDetailPanel(data TaskDetailData) string {
	var b strings.Builder
	b.WriteString("task:\n")
	check := "[ ]"
	if data.Completed {
		check = "[x]"
	}
	b.WriteString(fmt.Sprintf("%s %s\n", check, data.Text))
	b.WriteString(fmt.Sprintf("category: %s\n", data.Category))
	b.WriteString(fmt.Sprintf("created: %s\n", data.CreatedAt))
	if data.NotificationTime != "" {
		b.WriteString(fmt.Sprintf("reminder: %s", data.NotificationTime))
		if data.RepeatInterval > 0 {
			b.WriteString(fmt.Sprintf(" repeat every %dh, %d/%d sent", data.RepeatInterval, data.RemindersSent, data.RepeatCount))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("reminder: (none)\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderReminderEditor(data ReminderEditorData) string {
	if !data.Active {
		return ""
	}
	fields := []struct {
		label string
		value string
	}{
		{"clock (HH:MM)", data.ClockText},
		{"repeat interval (hours)", data.IntervalText},
		{"repeat count", data.CountText},
	}
	var b strings.Builder
	b.WriteString("\nreminder-editor:\n")
	b.WriteString("keys: [tab] field [enter] save [esc] close\n")
	for i, f := range fields {
		cursor := " "
		if i == data.Field {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, f.label, f.value))
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RenderCalendarPanel draws a 7-column month grid. Busy days are marked with
// an asterisk, the selection with brackets and today with a dot.
func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar: " + data.MonthLabel + "\n")
	b.WriteString("actions: [h/l]day [[/]]month [g]today [a]add\n")
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	col := 0
	for i := 0; i < data.LeadingBlanks; i++ {
		b.WriteString("    ")
		col++
	}
	for day := 1; day <= data.Days; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == data.SelectedDay:
			cell = "[" + cell + "]"
		case data.BusyDays[day]:
			cell = " " + cell + "*"
		case day == data.TodayDay:
			cell = " " + cell + "."
		default:
			cell = " " + cell + " "
		}
		b.WriteString(cell)
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if data.InputView != "" {
		b.WriteString("\n" + data.InputView)
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendarDayPanel(data CalendarDayData) string {
	var b strings.Builder
	b.WriteString(data.Date + ":\n")
	if len(data.Tasks) == 0 {
		b.WriteString("(nothing scheduled)\n")
	}
	for _, t := range data.Tasks {
		cursor := " "
		if t.Selected {
			cursor = ">"
		}
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, t.Text))
	}
	b.WriteString("\n" + data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderSketchPanel(data SketchData) string {
	var b strings.Builder
	b.WriteString("sketch: " + data.Title + "\n")
	if data.Editing {
		b.WriteString("mode: editing (esc saves)\n")
	} else {
		b.WriteString("mode: viewing ([e] edits)\n")
	}
	b.WriteString(data.EditorView)
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func progressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
