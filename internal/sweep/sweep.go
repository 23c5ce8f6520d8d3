// Package sweep implements the polling reminder pass. Every tick the current
// wall clock is compared, minute for minute, against each armed task; there is
// no scheduling queue, so a reminder whose minute was missed (app closed,
// machine asleep) simply never fires.
package sweep

import (
	"time"

	"github.com/zencheck/zencheck/internal/config"
	"github.com/zencheck/zencheck/internal/model"
)

// Once runs a single reminder pass over the groups at the given instant and
// mutates matched tasks in place. It returns whether any task changed.
//
// A task fires when it is incomplete and its armed clock equals the current
// HH:MM. After firing it either renews (repeat budget left: counter advances
// and the clock moves forward by the repeat interval in hours, wrapping past
// midnight) or disarms, leaving the repeat fields behind untouched.
func Once(groups []model.ChecklistGroup, now time.Time, notify Notifier) bool {
	clock := now.Format(model.ClockLayout)
	changed := false

	for gi := range groups {
		for ti := range groups[gi].Tasks {
			t := &groups[gi].Tasks[ti]
			if t.Completed || !t.HasReminder() || t.NotificationTime != clock {
				continue
			}

			send(notify, groups[gi].Title, t.Text)

			if t.RepeatInterval > 0 && t.RemindersSent < t.RepeatCount {
				t.RemindersSent++
				t.NotificationTime = advanceClock(t.NotificationTime, t.RepeatInterval)
			} else {
				t.DisarmKeepRepeat()
			}
			changed = true
		}
	}
	return changed
}

func send(notify Notifier, groupTitle, taskText string) {
	if notify == nil {
		return
	}
	n := Notification{
		Title: "ZenCheck: " + groupTitle,
		Body:  taskText,
	}
	if err := notify.Send(n); err != nil {
		config.Logger.WithError(err).Warn("reminder delivery failed")
	}
}

func advanceClock(clock string, hours int) string {
	parsed, err := time.Parse(model.ClockLayout, clock)
	if err != nil {
		return clock
	}
	return parsed.Add(time.Duration(hours) * time.Hour).Format(model.ClockLayout)
}
