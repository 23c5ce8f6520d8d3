package stats

import (
	"testing"
	"time"

	"github.com/zencheck/zencheck/internal/model"
)

func TestGridFor(t *testing.T) {
	cases := []struct {
		name   string
		ref    time.Time
		blanks int
		days   int
	}{
		// 2024-05-01 is a Wednesday.
		{"may 2024", time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), 3, 31},
		// 2024-09-01 is a Sunday.
		{"september 2024", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), 0, 30},
		// Leap February.
		{"february 2024", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 4, 29},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := GridFor(tc.ref)
			if grid.LeadingBlanks != tc.blanks || grid.Days != tc.days {
				t.Fatalf("got blanks=%d days=%d, want blanks=%d days=%d",
					grid.LeadingBlanks, grid.Days, tc.blanks, tc.days)
			}
		})
	}
}

func TestCalendarDayGroupFiltersByDate(t *testing.T) {
	bucket := model.NewGroup("Calendar", nil, model.ColorCyan)
	bucket.Type = model.GroupCalendar
	a := model.NewTask("dentist", "")
	a.Date = "2024-05-01"
	b := model.NewTask("flight", "")
	b.Date = "2024-05-02"
	bucket.Tasks = []model.Task{a, b}

	day := CalendarDayGroup(bucket, "2024-05-01")
	if len(day.Tasks) != 1 || day.Tasks[0].Text != "dentist" {
		t.Fatalf("unexpected day tasks: %+v", day.Tasks)
	}
	if day.Title != "2024-05-01" {
		t.Fatalf("expected derived title, got %q", day.Title)
	}
	if day.ID == bucket.ID {
		t.Fatal("day group id must be derived, not the bucket id")
	}

	if got := TasksOnDate(bucket, "2024-05-02"); got != 1 {
		t.Fatalf("TasksOnDate: got %d, want 1", got)
	}
}
