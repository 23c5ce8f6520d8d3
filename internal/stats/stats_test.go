package stats

import (
	"testing"

	"github.com/zencheck/zencheck/internal/model"
)

func groupWith(done, pending int) model.ChecklistGroup {
	g := model.NewGroup("G", nil, model.ColorIndigo)
	for i := 0; i < done; i++ {
		t := model.NewTask("done", "")
		t.Completed = true
		g.Tasks = append(g.Tasks, t)
	}
	for i := 0; i < pending; i++ {
		g.Tasks = append(g.Tasks, model.NewTask("pending", ""))
	}
	return g
}

func TestProgressPercentBounds(t *testing.T) {
	cases := []struct {
		name          string
		done, pending int
		want          int
	}{
		{"empty group", 0, 0, 0},
		{"none done", 0, 4, 0},
		{"half done", 2, 2, 50},
		{"rounds", 1, 2, 33},
		{"all done", 3, 0, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProgressPercent(groupWith(tc.done, tc.pending))
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
			if got < 0 || got > 100 {
				t.Fatalf("progress out of bounds: %d", got)
			}
		})
	}
}

func TestDayStats(t *testing.T) {
	groups := []model.ChecklistGroup{groupWith(2, 1), groupWith(0, 3)}
	completed, total := DayStats(groups)
	if completed != 2 || total != 6 {
		t.Fatalf("got %d/%d, want 2/6", completed, total)
	}
}

func TestMonthCompletedAggregation(t *testing.T) {
	h := model.DailyHistory{
		"2024-05-01": {"a": true, "b": false},
		"2024-05-02": {"a": true},
		"2024-06-01": {"a": true},
	}
	if got := MonthCompleted(h, "2024-05"); got != 2 {
		t.Fatalf("month stat: got %d, want 2", got)
	}
}

func TestYearActiveDaysCountsDistinctDates(t *testing.T) {
	h := model.DailyHistory{
		"2024-05-01": {"a": true, "b": false},
		"2024-05-02": {"a": true},
		"2023-12-31": {"a": true},
	}
	if got := YearActiveDays(h, "2024"); got != 2 {
		t.Fatalf("year stat: got %d, want 2", got)
	}
}

func TestPendingPreviewCapsAndPreservesOrder(t *testing.T) {
	g := model.NewGroup("G", nil, model.ColorIndigo)
	for _, text := range []string{"one", "two", "three", "four"} {
		g.Tasks = append(g.Tasks, model.NewTask(text, ""))
	}
	g.Tasks[1].Completed = true

	got := PendingPreview(g, PendingPreviewCap)
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	if got[0].Text != "one" || got[1].Text != "three" || got[2].Text != "four" {
		t.Fatalf("unexpected order: %q %q %q", got[0].Text, got[1].Text, got[2].Text)
	}
}

func TestNextFocus(t *testing.T) {
	g := groupWith(2, 0)
	if _, ok := NextFocus(g); ok {
		t.Fatal("expected all-done sentinel")
	}
	g.Tasks = append(g.Tasks, model.NewTask("next up", ""))
	task, ok := NextFocus(g)
	if !ok || task.Text != "next up" {
		t.Fatalf("expected first incomplete task, got %+v ok=%v", task, ok)
	}
}
