package sweep

import (
	"testing"
	"time"

	"github.com/zencheck/zencheck/internal/model"
)

type recordingNotifier struct {
	sent []Notification
}

func (r *recordingNotifier) Send(n Notification) error {
	r.sent = append(r.sent, n)
	return nil
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, time.UTC)
}

func groupWithTask(t model.Task) []model.ChecklistGroup {
	g := model.NewGroup("Routines", []model.Task{t}, model.ColorIndigo)
	return []model.ChecklistGroup{g}
}

func TestOnceFiresOnExactMinute(t *testing.T) {
	task := model.NewTask("Stretch", "")
	task.ArmReminder("09:30", 0, 0)
	groups := groupWithTask(task)
	n := &recordingNotifier{}

	if Once(groups, at(9, 29), n) {
		t.Fatal("fired a minute early")
	}
	if !Once(groups, at(9, 30), n) {
		t.Fatal("did not fire on the armed minute")
	}
	if len(n.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(n.sent))
	}
	if n.sent[0].Body != "Stretch" {
		t.Fatalf("unexpected notification body %q", n.sent[0].Body)
	}
	if groups[0].Tasks[0].HasReminder() {
		t.Fatal("non-repeating reminder must disarm after firing")
	}
}

func TestOnceSkipsCompletedTasks(t *testing.T) {
	task := model.NewTask("Water plants", "")
	task.ArmReminder("08:00", 1, 3)
	task.Completed = true
	groups := groupWithTask(task)
	n := &recordingNotifier{}

	if Once(groups, at(8, 0), n) {
		t.Fatal("completed task must never fire")
	}
	if len(n.sent) != 0 {
		t.Fatalf("expected no notifications, got %d", len(n.sent))
	}
	if groups[0].Tasks[0].NotificationTime != "08:00" {
		t.Fatal("completed task reminder must stay armed")
	}
}

func TestOnceRenewsUntilBudgetExhausted(t *testing.T) {
	task := model.NewTask("Take medication", "")
	task.ArmReminder("09:00", 1, 2)
	groups := groupWithTask(task)
	n := &recordingNotifier{}

	// Fires at 09:00, renews to 10:00, renews to 11:00, then disarms.
	for _, hour := range []int{9, 10, 11} {
		if !Once(groups, at(hour, 0), n) {
			t.Fatalf("expected fire at %02d:00", hour)
		}
	}
	if got := len(n.sent); got != 3 {
		t.Fatalf("expected 3 deliveries, got %d", got)
	}
	got := groups[0].Tasks[0]
	if got.HasReminder() {
		t.Fatal("reminder must disarm once the repeat budget is spent")
	}
	if got.RepeatInterval != 1 || got.RepeatCount != 2 || got.RemindersSent != 2 {
		t.Fatalf("repeat fields must survive the disarm, got %+v", got)
	}

	if Once(groups, at(12, 0), n) {
		t.Fatal("disarmed reminder fired again")
	}
}

func TestOnceWrapsPastMidnight(t *testing.T) {
	task := model.NewTask("Night check", "")
	task.ArmReminder("23:30", 2, 1)
	groups := groupWithTask(task)

	if !Once(groups, at(23, 30), &recordingNotifier{}) {
		t.Fatal("expected fire at 23:30")
	}
	if got := groups[0].Tasks[0].NotificationTime; got != "01:30" {
		t.Fatalf("expected renewal to wrap to 01:30, got %q", got)
	}
}

func TestOnceNilNotifierStillAdvancesState(t *testing.T) {
	task := model.NewTask("Quiet reminder", "")
	task.ArmReminder("07:15", 0, 0)
	groups := groupWithTask(task)

	if !Once(groups, at(7, 15), nil) {
		t.Fatal("expected state change without a notifier")
	}
	if groups[0].Tasks[0].HasReminder() {
		t.Fatal("reminder must disarm even when delivery is disabled")
	}
}
