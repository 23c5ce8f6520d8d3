package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DateLayout is the calendar-day key format used throughout the app.
	DateLayout = "2006-01-02"
	// ClockLayout is the minute-granularity reminder clock format.
	ClockLayout = "15:04"

	DefaultCategory = "General"
)

var (
	ErrEmptyText      = errors.New("model: task text is required")
	ErrInvalidDate    = errors.New("model: invalid task date")
	ErrInvalidClock   = errors.New("model: invalid notification time")
	ErrNegativeRepeat = errors.New("model: repeat fields must be non-negative")
	ErrRemindersOver  = errors.New("model: reminders sent exceeds repeat count")
)

type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	// Date is set only for calendar-bound tasks, formatted as DateLayout.
	Date string `json:"date,omitempty"`
	// NotificationTime holds the armed reminder clock (ClockLayout). A task
	// has an active reminder iff this field is non-empty; the repeat fields
	// below are meaningful only while it is.
	NotificationTime string `json:"notificationTime,omitempty"`
	RepeatInterval   int    `json:"repeatInterval,omitempty"`
	RepeatCount      int    `json:"repeatCount,omitempty"`
	RemindersSent    int    `json:"remindersSent,omitempty"`
}

func NewTask(text, category string) Task {
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	return Task{
		ID:        uuid.NewString(),
		Text:      text,
		Category:  category,
		CreatedAt: time.Now(),
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if t.Date != "" && !ValidDate(t.Date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, t.Date)
	}
	if t.NotificationTime != "" && !ValidClock(t.NotificationTime) {
		return fmt.Errorf("%w: %q", ErrInvalidClock, t.NotificationTime)
	}
	if t.RepeatInterval < 0 || t.RepeatCount < 0 || t.RemindersSent < 0 {
		return ErrNegativeRepeat
	}
	if t.NotificationTime != "" && t.RepeatCount > 0 && t.RemindersSent > t.RepeatCount {
		return fmt.Errorf("%w: %d > %d", ErrRemindersOver, t.RemindersSent, t.RepeatCount)
	}
	return nil
}

// HasReminder reports whether a reminder is armed.
func (t Task) HasReminder() bool {
	return t.NotificationTime != ""
}

// ArmReminder is the only path that arms or disarms a reminder. Passing an
// empty clock disarms it entirely, dropping the repeat configuration too.
// Arming always resets the sent counter, even after a prior repeat cycle.
func (t *Task) ArmReminder(clock string, interval, count int) {
	if strings.TrimSpace(clock) == "" {
		t.NotificationTime = ""
		t.RepeatInterval = 0
		t.RepeatCount = 0
		t.RemindersSent = 0
		return
	}
	t.NotificationTime = clock
	t.RepeatInterval = interval
	t.RepeatCount = count
	t.RemindersSent = 0
}

// DisarmKeepRepeat clears only the trigger clock. The repeat fields stay
// behind, stale but inert, which is what a fired non-renewing reminder leaves.
func (t *Task) DisarmKeepRepeat() {
	t.NotificationTime = ""
}

func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func ValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}
