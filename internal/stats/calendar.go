package stats

import (
	"time"

	"github.com/zencheck/zencheck/internal/model"
)

// MonthGrid describes a 7-column calendar layout for the month containing
// ref: LeadingBlanks is the weekday offset of day 1 (0 = Sunday) and Days is
// the month's day count.
type MonthGrid struct {
	LeadingBlanks int
	Days          int
}

func GridFor(ref time.Time) MonthGrid {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	lastOfMonth := first.AddDate(0, 1, -1)
	return MonthGrid{
		LeadingBlanks: int(first.Weekday()),
		Days:          lastOfMonth.Day(),
	}
}

// CalendarDayGroup synthesizes the active "group" for a selected calendar
// day: the bucket's tasks filtered to that date, with derived identity. It
// is a view, never stored.
func CalendarDayGroup(bucket model.ChecklistGroup, date string) model.ChecklistGroup {
	tasks := make([]model.Task, 0)
	for _, t := range bucket.Tasks {
		if t.Date == date {
			tasks = append(tasks, t)
		}
	}
	return model.ChecklistGroup{
		ID:        bucket.ID + ":" + date,
		Title:     date,
		Tasks:     tasks,
		Color:     bucket.Color,
		CreatedAt: bucket.CreatedAt,
		Type:      model.GroupCalendar,
	}
}

// TasksOnDate counts the bucket's tasks bound to the given date; the calendar
// grid uses it to mark busy days.
func TasksOnDate(bucket model.ChecklistGroup, date string) int {
	n := 0
	for _, t := range bucket.Tasks {
		if t.Date == date {
			n++
		}
	}
	return n
}
