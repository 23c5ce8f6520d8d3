package update

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zencheck/zencheck/internal/model"
)

func (m Model) openReminderEditor(t model.Task) Model {
	m.ReminderEditor = ReminderEditorState{
		Active:       true,
		TaskID:       t.ID,
		ClockText:    t.NotificationTime,
		IntervalText: strconv.Itoa(t.RepeatInterval),
		CountText:    strconv.Itoa(t.RepeatCount),
	}
	m.Status = StatusBar{Text: "reminder editor: [tab] field [enter] save [esc] close", IsError: false}
	return m
}

func (m Model) handleReminderEditorKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.ReminderEditor = ReminderEditorState{}
		m.Status = StatusBar{Text: "reminder editor closed", IsError: false}
	case "tab":
		m.ReminderEditor.Field = (m.ReminderEditor.Field + 1) % 3
	case "enter":
		m = m.applyReminderEditor()
	case "backspace":
		field := m.editorField()
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			field := m.editorField()
			*field += string(msg.Runes)
		}
	}
	return m
}

func (m *Model) editorField() *string {
	switch m.ReminderEditor.Field {
	case 1:
		return &m.ReminderEditor.IntervalText
	case 2:
		return &m.ReminderEditor.CountText
	default:
		return &m.ReminderEditor.ClockText
	}
}

func (m Model) applyReminderEditor() Model {
	ed := m.ReminderEditor
	if ed.ClockText != "" && !model.ValidClock(ed.ClockText) {
		m.ReminderEditor.Err = "clock must be HH:MM"
		return m
	}
	interval, err := parseNonNegative(ed.IntervalText)
	if err != nil {
		m.ReminderEditor.Err = "interval must be a non-negative number"
		return m
	}
	count, err := parseNonNegative(ed.CountText)
	if err != nil {
		m.ReminderEditor.Err = "count must be a non-negative number"
		return m
	}

	if g, ok := m.currentGroup(); ok {
		m.App.UpdateTaskNotification(g.ID, ed.TaskID, ed.ClockText, interval, count)
	}
	m.ReminderEditor = ReminderEditorState{}
	if ed.ClockText == "" {
		m.Status = StatusBar{Text: "reminder cleared", IsError: false}
	} else {
		m.Status = StatusBar{Text: "reminder set for " + ed.ClockText, IsError: false}
	}
	return m
}

func parseNonNegative(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
