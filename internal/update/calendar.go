package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zencheck/zencheck/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.App.SelectedDate = shiftDate(m.selectedDate(), 0, -1)
		m.Calendar.Cursor = 0
	case "l", "right":
		m.App.SelectedDate = shiftDate(m.selectedDate(), 0, 1)
		m.Calendar.Cursor = 0
	case "[":
		m.App.SelectedDate = shiftDate(m.selectedDate(), -1, 0)
		m.Calendar.Cursor = 0
	case "]":
		m.App.SelectedDate = shiftDate(m.selectedDate(), 1, 0)
		m.Calendar.Cursor = 0
	case "g":
		m.App.SelectedDate = m.App.Today()
		m.Calendar.Cursor = 0
	case "j", "down":
		if m.Calendar.Cursor < len(m.calendarTasks())-1 {
			m.Calendar.Cursor++
		}
	case "k", "up":
		if m.Calendar.Cursor > 0 {
			m.Calendar.Cursor--
		}
	case " ", "enter":
		day := m.calendarTasks()
		if m.Calendar.Cursor < len(day) {
			if bucket, ok := m.App.CalendarBucket(); ok {
				m.App.ToggleTask(bucket.ID, day[m.Calendar.Cursor].ID)
			}
		}
	case "x":
		day := m.calendarTasks()
		if m.Calendar.Cursor < len(day) {
			if bucket, ok := m.App.CalendarBucket(); ok {
				m.App.DeleteTask(bucket.ID, day[m.Calendar.Cursor].ID)
			}
		}
	case "a":
		m.Calendar.AddMode = true
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
		m.Status = StatusBar{Text: "add task on " + m.selectedDate() + ": type and press enter", IsError: false}
	}
	return m
}

func (m Model) handleCalendarAddKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Calendar.AddMode = false
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
	case "enter":
		m.App.AddCalendarTask(m.quickAddInput.Value(), m.selectedDate())
		m.Calendar.AddMode = false
		m.Calendar.Cursor = 0
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		m.Status = StatusBar{Text: "task scheduled on " + m.selectedDate(), IsError: false}
	default:
		if msg.Type == tea.KeyRunes {
			m.quickAddInput.SetValue(m.quickAddInput.Value() + string(msg.Runes))
			return m, nil
		}
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func shiftDate(date string, months, days int) string {
	ref, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return ref.AddDate(0, months, days).Format(model.DateLayout)
}
