// Package stats holds the derived-view computations: everything here is a
// pure function over the current data model and history, recomputable at any
// time with no side effects.
package stats

import (
	"math"
	"strings"

	"github.com/zencheck/zencheck/internal/model"
)

// PendingPreviewCap bounds the quick-check widget's task preview.
const PendingPreviewCap = 3

// ProgressPercent reports group completion as a rounded 0..100 percentage.
// An empty group reports 0.
func ProgressPercent(g model.ChecklistGroup) int {
	total := len(g.Tasks)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, t := range g.Tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// DayStats counts completed vs. total across every task currently held in
// every group.
func DayStats(groups []model.ChecklistGroup) (completed, total int) {
	for _, g := range groups {
		for _, t := range g.Tasks {
			total++
			if t.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// MonthCompleted sums the recorded true values across all history dates in
// the given month, where monthPrefix is "YYYY-MM".
func MonthCompleted(h model.DailyHistory, monthPrefix string) int {
	sum := 0
	for date, entries := range h {
		if !strings.HasPrefix(date, monthPrefix) {
			continue
		}
		for _, done := range entries {
			if done {
				sum++
			}
		}
	}
	return sum
}

// YearActiveDays counts distinct history dates in the given year ("YYYY"),
// i.e. days with at least one recorded entry regardless of its value.
func YearActiveDays(h model.DailyHistory, yearPrefix string) int {
	count := 0
	for date := range h {
		if strings.HasPrefix(date, yearPrefix) {
			count++
		}
	}
	return count
}

// PendingPreview returns up to n incomplete tasks of the group in existing
// order.
func PendingPreview(g model.ChecklistGroup, n int) []model.Task {
	if n <= 0 {
		return nil
	}
	out := make([]model.Task, 0, n)
	for _, t := range g.Tasks {
		if t.Completed {
			continue
		}
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}

// NextFocus returns the first incomplete task in group order. The second
// return value is false when everything is done.
func NextFocus(g model.ChecklistGroup) (model.Task, bool) {
	for _, t := range g.Tasks {
		if !t.Completed {
			return t, true
		}
	}
	return model.Task{}, false
}
