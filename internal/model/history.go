package model

// DailyHistory is a permanent record of daily-habit completions keyed by
// calendar date (DateLayout) and then task id. Entries are written when a
// daily-habit task is toggled and are never pruned, so the record survives
// later toggles and task deletion.
type DailyHistory map[string]map[string]bool

// Record stores the latest completion value for (date, taskID).
func (h DailyHistory) Record(date, taskID string, completed bool) {
	day, ok := h[date]
	if !ok {
		day = make(map[string]bool)
		h[date] = day
	}
	day[taskID] = completed
}

// Completed reports the recorded value for (date, taskID); absent entries
// read as false.
func (h DailyHistory) Completed(date, taskID string) bool {
	day, ok := h[date]
	if !ok {
		return false
	}
	return day[taskID]
}

// Has reports whether an entry exists at all for (date, taskID).
func (h DailyHistory) Has(date, taskID string) bool {
	day, ok := h[date]
	if !ok {
		return false
	}
	_, ok = day[taskID]
	return ok
}
