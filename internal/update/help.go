package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/zencheck/zencheck/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.Current),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard, Action: "switch to Dashboard"},
		{Key: m.Keys.Lists, Action: "switch to Lists"},
		{Key: m.Keys.Calendar, Action: "switch to Calendar"},
		{Key: m.Keys.Sketch, Action: "switch to Sketch"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Theme, Action: "toggle light/dark theme"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.Current {
	case ViewDashboard:
		return []KeyBinding{
			{Key: "s", Action: "cycle stats tab"},
			{Key: "m", Action: "fetch motivation"},
			{Key: "space", Action: "check off next daily task"},
		}
	case ViewLists:
		return []KeyBinding{
			{Key: "j/k", Action: "move task cursor"},
			{Key: "J/K", Action: "switch list"},
			{Key: "space", Action: "toggle task"},
			{Key: "a/r", Action: "add task / rename list"},
			{Key: "x", Action: "delete task"},
			{Key: "n", Action: "edit reminder"},
			{Key: "c", Action: "cycle list color"},
			{Key: "D", Action: "delete list"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next day"},
			{Key: "[/]", Action: "previous/next month"},
			{Key: "g", Action: "jump to today"},
			{Key: "j/k", Action: "move task cursor"},
			{Key: "space", Action: "toggle task"},
			{Key: "a/x", Action: "add / delete task"},
		}
	case ViewSketch:
		return []KeyBinding{
			{Key: "e", Action: "edit notes"},
			{Key: "esc", Action: "save and close editor"},
			{Key: "D", Action: "delete sketch"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
