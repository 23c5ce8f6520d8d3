package update

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zencheck/zencheck/internal/genai"
	"github.com/zencheck/zencheck/internal/model"
	"github.com/zencheck/zencheck/internal/state"
	"github.com/zencheck/zencheck/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	app := state.New(nil, store.Snapshot{})
	return NewModel(app)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.Current != ViewDashboard {
		t.Fatalf("expected default view %q, got %q", ViewDashboard, m.Current)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if m.Dashboard.Tab != StatsTabDay {
		t.Fatalf("expected day stats tab, got %q", m.Dashboard.Tab)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	if next.Current != ViewLists {
		t.Fatalf("expected lists view, got %q", next.Current)
	}

	updated, _ = next.Update(keyRunes("3"))
	next = updated.(Model)
	if next.Current != ViewCalendar {
		t.Fatalf("expected calendar view, got %q", next.Current)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SwitchViewMsg{View: ViewSketch})
	next := updated.(Model)
	if next.Current != ViewSketch {
		t.Fatalf("expected sketch view, got %q", next.Current)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.Current != ViewSketch {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.Current)
	}
}

func TestThemeToggleKey(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("t"))
	next := updated.(Model)
	if next.App.Theme != store.ThemeDark {
		t.Fatalf("expected dark theme after toggle, got %q", next.App.Theme)
	}
}

func TestPaletteCreatesGroup(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(keyRunes("new Trip"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("palette must close after execution")
	}
	if len(next.App.Groups) == 0 || next.App.Groups[0].Title != "Trip" {
		t.Fatalf("expected Trip group first, got %+v", next.App.Groups)
	}
	if !strings.Contains(next.Status.Text, "created list") {
		t.Fatalf("unexpected status %q", next.Status.Text)
	}
}

func TestPaletteUnknownCommand(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("teleport home"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestListsToggleKey(t *testing.T) {
	m := newTestModel(t)
	m.App.CreateGroup("Errands", nil, model.ColorCyan)
	gid := m.App.Groups[0].ID
	m.App.AddTask(gid, "Buy stamps")

	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeySpace})
	next = updated.(Model)

	if !next.App.Groups[0].Tasks[0].Completed {
		t.Fatal("space must toggle the selected task")
	}
}

func TestAddTaskRefreshesTaskList(t *testing.T) {
	m := newTestModel(t)
	m.App.CreateGroup("Errands", nil, model.ColorCyan)

	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("a"))
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("Buy milk"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if len(next.App.Groups[0].Tasks) != 1 {
		t.Fatalf("expected one task in the group, got %+v", next.App.Groups[0].Tasks)
	}
	items := next.taskList.Items()
	if len(items) != 1 {
		t.Fatalf("task list holds %d items, want 1", len(items))
	}
	if got := items[0].(listItem).title; got != "Buy milk" {
		t.Fatalf("expected task list item %q, got %q", "Buy milk", got)
	}
}

func TestListsAddModeForwardsInputCommands(t *testing.T) {
	m := newTestModel(t)
	m.App.CreateGroup("Errands", nil, model.ColorCyan)

	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("a"))
	next = updated.(Model)

	// ctrl+v maps to the textinput paste command, which must reach the runtime.
	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if cmd == nil {
		t.Fatal("expected the text input command to be forwarded")
	}
}

func TestSweepTickDisarmsReminder(t *testing.T) {
	m := newTestModel(t)
	m.App.CreateGroup("Meds", nil, model.ColorViolet)
	gid := m.App.Groups[0].ID
	m.App.AddTask(gid, "Vitamin D")
	taskID := m.App.Groups[0].Tasks[0].ID
	m.App.UpdateTaskNotification(gid, taskID, "09:30", 0, 0)

	at := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
	updated, _ := m.Update(SweepTickMsg{At: at})
	next := updated.(Model)

	if next.App.Groups[0].Tasks[0].HasReminder() {
		t.Fatal("sweep tick at the armed minute must disarm the reminder")
	}
	if !strings.Contains(next.Status.Text, "reminder fired") {
		t.Fatalf("unexpected status %q", next.Status.Text)
	}
}

func TestChecklistGeneratedImports(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(ChecklistGeneratedMsg{Checklist: genai.Checklist{
		Title: "Garden plan",
		Categories: []genai.Category{
			{CategoryName: "Prep", Items: []string{"Buy seeds"}},
		},
	}})
	next := updated.(Model)

	if next.Current != ViewLists {
		t.Fatalf("expected lists view after import, got %q", next.Current)
	}
	if next.App.Groups[0].Title != "Garden plan" {
		t.Fatalf("expected imported group first, got %q", next.App.Groups[0].Title)
	}
	if next.App.Groups[0].Tasks[0].Category != "Prep" {
		t.Fatalf("category lost on import: %+v", next.App.Groups[0].Tasks[0])
	}
}

func TestGenerateFailedSetsError(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(GenerateFailedMsg{Err: errors.New("boom")})
	next := updated.(Model)
	if !next.Status.IsError || !strings.Contains(next.Status.Text, "boom") {
		t.Fatalf("unexpected status %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(keyRunes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := newTestModel(t)
	m.Status = StatusBar{Text: "all good"}
	out := m.View()
	if !strings.Contains(out, "view: Dashboard") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
}

func TestReminderEditorSavesClock(t *testing.T) {
	m := newTestModel(t)
	m.App.CreateGroup("Meds", nil, model.ColorViolet)
	gid := m.App.Groups[0].ID
	m.App.AddTask(gid, "Vitamin D")

	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("n"))
	next = updated.(Model)
	if !next.ReminderEditor.Active {
		t.Fatal("expected reminder editor open")
	}

	updated, _ = next.Update(keyRunes("08:15"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.ReminderEditor.Active {
		t.Fatal("editor must close on save")
	}
	if got := next.App.Groups[0].Tasks[0].NotificationTime; got != "08:15" {
		t.Fatalf("expected reminder 08:15, got %q", got)
	}
}
