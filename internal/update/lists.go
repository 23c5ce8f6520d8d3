package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zencheck/zencheck/internal/model"
)

func (m Model) handleListsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "j", "down":
		if g, ok := m.currentGroup(); ok && m.Lists.TaskCursor < len(g.Tasks)-1 {
			m.Lists.TaskCursor++
		}
	case "k", "up":
		if m.Lists.TaskCursor > 0 {
			m.Lists.TaskCursor--
		}
	case "J", "tab":
		groups := m.visibleGroups()
		if len(groups) > 0 {
			m.Lists.GroupCursor = (m.Lists.GroupCursor + 1) % len(groups)
			m.Lists.TaskCursor = 0
			m.App.ActiveGroupID = groups[m.Lists.GroupCursor].ID
		}
	case "K", "shift+tab":
		groups := m.visibleGroups()
		if len(groups) > 0 {
			m.Lists.GroupCursor = (m.Lists.GroupCursor - 1 + len(groups)) % len(groups)
			m.Lists.TaskCursor = 0
			m.App.ActiveGroupID = groups[m.Lists.GroupCursor].ID
		}
	case " ", "enter":
		if g, ok := m.currentGroup(); ok {
			if t, tok := m.currentTask(); tok {
				m.App.ToggleTask(g.ID, t.ID)
			}
		}
	case "a":
		m.Lists.AddMode = true
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
		m.Status = StatusBar{Text: "add task: type and press enter", IsError: false}
	case "r":
		if g, ok := m.currentGroup(); ok {
			m.Lists.RenameMode = true
			m.quickAddInput.SetValue(g.Title)
			m.quickAddInput.Focus()
			m.Status = StatusBar{Text: "rename list: edit and press enter", IsError: false}
		}
	case "x":
		if g, ok := m.currentGroup(); ok {
			if t, tok := m.currentTask(); tok {
				m.App.DeleteTask(g.ID, t.ID)
				m.Status = StatusBar{Text: fmt.Sprintf("deleted task: %s", t.Text), IsError: false}
			}
		}
	case "n":
		if t, ok := m.currentTask(); ok {
			m = m.openReminderEditor(t)
		}
	case "c":
		if g, ok := m.currentGroup(); ok {
			m.App.UpdateGroupColor(g.ID, nextColor(g.Color))
		}
	case "D":
		if g, ok := m.currentGroup(); ok {
			m.App.DeleteGroup(g.ID)
			m.Lists.GroupCursor = 0
			m.Lists.TaskCursor = 0
			m.Status = StatusBar{Text: fmt.Sprintf("deleted list: %s", g.Title), IsError: false}
		}
	}
	return m
}

func (m Model) handleListsAddKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Lists.AddMode = false
		m.Lists.RenameMode = false
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
	case "enter":
		text := m.quickAddInput.Value()
		if g, ok := m.currentGroup(); ok {
			if m.Lists.RenameMode {
				m.App.UpdateGroupTitle(g.ID, text)
				m.Status = StatusBar{Text: "list renamed", IsError: false}
			} else {
				m.App.AddTask(g.ID, text)
				m.Lists.TaskCursor = 0
				m.Status = StatusBar{Text: "task added", IsError: false}
			}
		}
		m.Lists.AddMode = false
		m.Lists.RenameMode = false
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
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

func nextColor(current model.GroupColor) model.GroupColor {
	for i, c := range model.AllColors {
		if c == current {
			return model.AllColors[(i+1)%len(model.AllColors)]
		}
	}
	return model.AllColors[0]
}
