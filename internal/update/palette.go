package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zencheck/zencheck/internal/commands"
	"github.com/zencheck/zencheck/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m, nil
	}

	var pending tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			g, ok := m.currentGroup()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no list to add to"}
			}
			m.App.AddTask(g.ID, a.Text)
			m.Current = ViewLists
			m.Lists.TaskCursor = 0
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Text)}, nil
		},
		New: func(a commands.NewArgs) (commands.Result, error) {
			m.App.CreateGroup(a.Title, nil, model.RandomColor())
			m.Current = ViewLists
			m.Lists.GroupCursor = 0
			m.Lists.TaskCursor = 0
			return commands.Result{Message: fmt.Sprintf("created list: %s", a.Title)}, nil
		},
		Sketch: func(a commands.SketchArgs) (commands.Result, error) {
			m.App.CreateSketch(a.Title)
			m.Current = ViewSketch
			return commands.Result{Message: fmt.Sprintf("created sketch: %s", a.Title)}, nil
		},
		Calendar: func(a commands.CalendarArgs) (commands.Result, error) {
			m.App.AddCalendarTask(a.Text, a.Date)
			m.App.SelectedDate = a.Date
			m.Current = ViewCalendar
			return commands.Result{Message: fmt.Sprintf("scheduled %q on %s", a.Text, a.Date)}, nil
		},
		Generate: func(a commands.GenerateArgs) (commands.Result, error) {
			m.generating = true
			pending = tea.Batch(m.genSpinner.Tick, m.generateChecklistCmd(a.Goal))
			return commands.Result{Message: fmt.Sprintf("generating checklist for: %s", a.Goal)}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			if a.Name == "" {
				m.App.ToggleTheme()
			} else {
				m.App.SetTheme(a.Name)
			}
			return commands.Result{Message: "theme: " + m.App.Theme}, nil
		},
		Widget: func(a commands.WidgetArgs) (commands.Result, error) {
			for _, w := range m.App.Widgets {
				if w.ID == a.ID {
					m.App.ToggleWidget(a.ID)
					return commands.Result{Message: fmt.Sprintf("widget %s toggled", a.ID)}, nil
				}
			}
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown widget %q", a.ID)}
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m, pending
}
