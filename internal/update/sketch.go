package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleSketchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		sketch, ok := m.currentSketch()
		if !ok {
			m.Status = StatusBar{Text: "no sketch yet, create one with /sketch <title>", IsError: true}
			return m, nil
		}
		m.Sketch.Editing = true
		m.App.ActiveGroupID = sketch.ID
		m.notesArea.SetValue(sketch.Notes)
		m.notesArea.Focus()
		m.Status = StatusBar{Text: "editing notes, esc saves", IsError: false}
	case "D":
		if sketch, ok := m.currentSketch(); ok {
			m.App.DeleteGroup(sketch.ID)
			m.Status = StatusBar{Text: "sketch deleted", IsError: false}
		}
	}
	return m, nil
}

func (m Model) handleSketchEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		if sketch, ok := m.currentSketch(); ok {
			m.App.UpdateSketchNotes(sketch.ID, m.notesArea.Value())
		}
		m.Sketch.Editing = false
		m.notesArea.Blur()
		m.Status = StatusBar{Text: "notes saved", IsError: false}
		return m, nil
	}
	var cmd tea.Cmd
	m.notesArea, cmd = m.notesArea.Update(msg)
	return m, cmd
}
