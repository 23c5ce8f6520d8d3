package state

import (
	"strings"
	"time"

	"github.com/zencheck/zencheck/internal/genai"
	"github.com/zencheck/zencheck/internal/model"
	"github.com/zencheck/zencheck/internal/store"
	"github.com/zencheck/zencheck/internal/sweep"
)

// CreateGroup adds a standard checklist at the front of the list and makes it
// the active selection. A blank title is a no-op.
func (a *App) CreateGroup(title string, tasks []model.Task, color model.GroupColor) {
	if strings.TrimSpace(title) == "" {
		return
	}
	g := model.NewGroup(title, tasks, color)
	a.Groups = append([]model.ChecklistGroup{g}, a.Groups...)
	a.ActiveGroupID = g.ID
	a.persistGroups()
}

// CreateSketch adds a notes-capable sketch group and selects it.
func (a *App) CreateSketch(title string) {
	if strings.TrimSpace(title) == "" {
		return
	}
	g := model.NewSketch(title)
	a.Groups = append([]model.ChecklistGroup{g}, a.Groups...)
	a.ActiveGroupID = g.ID
	a.persistGroups()
}

// DeleteGroup removes a group. History rows for its tasks are intentionally
// left behind so past streaks survive. Deleting the daily singleton clears
// the reference; the next startup reseeds it.
func (a *App) DeleteGroup(id string) {
	i := a.groupIndex(id)
	if i < 0 {
		return
	}
	removed := a.Groups[i]
	a.Groups = append(a.Groups[:i], a.Groups[i+1:]...)
	if a.ActiveGroupID == removed.ID {
		a.ActiveGroupID = ""
	}
	if a.dailyGroupID == removed.ID {
		a.dailyGroupID = ""
	}
	if a.calendarGroupID == removed.ID {
		a.calendarGroupID = ""
	}
	a.persistGroups()
}

func (a *App) UpdateGroupTitle(id, title string) {
	i := a.groupIndex(id)
	if i < 0 || strings.TrimSpace(title) == "" {
		return
	}
	a.Groups[i].Title = title
	a.persistGroups()
}

func (a *App) UpdateGroupColor(id string, color model.GroupColor) {
	i := a.groupIndex(id)
	if i < 0 || !color.IsValid() {
		return
	}
	a.Groups[i].Color = color
	a.persistGroups()
}

// AddTask prepends a task to the group, so the newest entry is on top.
func (a *App) AddTask(groupID, text string) {
	i := a.groupIndex(groupID)
	if i < 0 || strings.TrimSpace(text) == "" {
		return
	}
	t := model.NewTask(text, "")
	a.Groups[i].Tasks = append([]model.Task{t}, a.Groups[i].Tasks...)
	a.persistGroups()
}

// AddCalendarTask files a task under the given date in the calendar bucket,
// creating the bucket lazily on first use.
func (a *App) AddCalendarTask(text, date string) {
	if strings.TrimSpace(text) == "" || !model.ValidDate(date) {
		return
	}
	i := a.groupIndex(a.calendarGroupID)
	if i < 0 {
		bucket := model.NewGroup(calendarGroupTitle, nil, model.ColorSlate)
		bucket.Type = model.GroupCalendar
		a.Groups = append(a.Groups, bucket)
		a.calendarGroupID = bucket.ID
		i = a.groupIndex(bucket.ID)
	}
	t := model.NewTask(text, "")
	t.Date = date
	a.Groups[i].Tasks = append([]model.Task{t}, a.Groups[i].Tasks...)
	a.persistGroups()
}

// ToggleTask flips a task's completion. Toggles inside the daily singleton
// are mirrored into today's history row so streak stats track live state.
func (a *App) ToggleTask(groupID, taskID string) {
	gi := a.groupIndex(groupID)
	if gi < 0 {
		return
	}
	ti := a.Groups[gi].FindTask(taskID)
	if ti < 0 {
		return
	}
	task := &a.Groups[gi].Tasks[ti]
	task.Completed = !task.Completed
	a.persistGroups()

	if a.Groups[gi].ID == a.dailyGroupID {
		a.History.Record(a.Today(), taskID, task.Completed)
		a.persistHistory()
	}
}

// DeleteTask removes a task from its group. History rows keyed by the task id
// stay untouched.
func (a *App) DeleteTask(groupID, taskID string) {
	gi := a.groupIndex(groupID)
	if gi < 0 {
		return
	}
	ti := a.Groups[gi].FindTask(taskID)
	if ti < 0 {
		return
	}
	a.Groups[gi].Tasks = append(a.Groups[gi].Tasks[:ti], a.Groups[gi].Tasks[ti+1:]...)
	a.persistGroups()
}

// UpdateTaskNotification arms or disarms a task reminder. An unparseable
// clock or negative repeat setting leaves the task untouched.
func (a *App) UpdateTaskNotification(groupID, taskID, clock string, interval, count int) {
	if clock != "" && !model.ValidClock(clock) {
		return
	}
	if interval < 0 || count < 0 {
		return
	}
	gi := a.groupIndex(groupID)
	if gi < 0 {
		return
	}
	ti := a.Groups[gi].FindTask(taskID)
	if ti < 0 {
		return
	}
	a.Groups[gi].Tasks[ti].ArmReminder(clock, interval, count)
	a.persistGroups()
}

// UpdateSketchNotes replaces the free-form notes of a sketch group. Other
// group types cannot carry notes.
func (a *App) UpdateSketchNotes(groupID, notes string) {
	gi := a.groupIndex(groupID)
	if gi < 0 || a.Groups[gi].EffectiveType() != model.GroupSketch {
		return
	}
	a.Groups[gi].Notes = notes
	a.persistGroups()
}

// ImportGenerated expands an AI-generated checklist into a new standard group
// with one task per item, tagged with its category, and selects it.
func (a *App) ImportGenerated(res genai.Checklist) {
	if strings.TrimSpace(res.Title) == "" {
		return
	}
	var tasks []model.Task
	for _, cat := range res.Categories {
		for _, item := range cat.Items {
			if strings.TrimSpace(item) == "" {
				continue
			}
			tasks = append(tasks, model.NewTask(item, cat.CategoryName))
		}
	}
	a.CreateGroup(res.Title, tasks, model.RandomColor())
}

// ToggleWidget flips the enabled flag of a dashboard widget.
func (a *App) ToggleWidget(id string) {
	for i := range a.Widgets {
		if a.Widgets[i].ID == id {
			a.Widgets[i].Enabled = !a.Widgets[i].Enabled
			a.persistWidgets()
			return
		}
	}
}

func (a *App) SetTheme(theme string) {
	if theme != store.ThemeLight && theme != store.ThemeDark {
		return
	}
	a.Theme = theme
	a.persistTheme()
}

func (a *App) ToggleTheme() {
	if a.Theme == store.ThemeDark {
		a.SetTheme(store.ThemeLight)
	} else {
		a.SetTheme(store.ThemeDark)
	}
}

// SweepReminders runs one reminder pass over all groups at the given instant
// and persists any renewal or disarm it caused. Returns whether anything
// fired or changed.
func (a *App) SweepReminders(now time.Time, notify sweep.Notifier) bool {
	changed := sweep.Once(a.Groups, now, notify)
	if changed {
		a.persistGroups()
	}
	return changed
}
