package update

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zencheck/zencheck/internal/genai"
	"github.com/zencheck/zencheck/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.sweepTicks != nil {
		return waitForSweepTickCmd(m.sweepTicks)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The sync must run on the value being returned; the receiver is a copy
	// the caller never sees again.
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}
		if m.ReminderEditor.Active {
			return m.handleReminderEditorKey(typed), nil
		}
		if m.Lists.AddMode || m.Lists.RenameMode {
			return m.handleListsAddKey(typed)
		}
		if m.Calendar.AddMode {
			return m.handleCalendarAddKey(typed)
		}
		if m.Current == ViewSketch && m.Sketch.Editing {
			return m.handleSketchEditKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Dashboard:
			m.Current = ViewDashboard
			return m, nil
		case m.Keys.Lists:
			m.Current = ViewLists
			return m, nil
		case m.Keys.Calendar:
			m.Current = ViewCalendar
			return m, nil
		case m.Keys.Sketch:
			m.Current = ViewSketch
			return m, nil
		case m.Keys.Theme:
			m.App.ToggleTheme()
			m.Status = StatusBar{Text: "theme: " + m.App.Theme, IsError: false}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.Current {
		case ViewDashboard:
			return m.handleDashboardKey(typed)
		case ViewLists:
			return m.handleListsKey(typed), nil
		case ViewCalendar:
			return m.handleCalendarKey(typed), nil
		case ViewSketch:
			return m.handleSketchKey(typed)
		}
	case spinner.TickMsg:
		if m.generating {
			var cmd tea.Cmd
			m.genSpinner, cmd = m.genSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.Current = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case SweepTickMsg:
		if m.App.SweepReminders(typed.At, m.notifier) {
			// Delivery is best effort; a failed Send is logged by the sweep,
			// so the status only claims the reminder fired.
			m.Status = StatusBar{Text: "reminder fired " + typed.At.Format("15:04"), IsError: false}
		}
		if m.sweepTicks != nil {
			return m, waitForSweepTickCmd(m.sweepTicks)
		}
		return m, nil
	case ChecklistGeneratedMsg:
		m.generating = false
		m.App.ImportGenerated(typed.Checklist)
		m.Current = ViewLists
		m.Lists.GroupCursor = 0
		m.Lists.TaskCursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("generated checklist: %s", typed.Checklist.Title), IsError: false}
		return m, nil
	case GenerateFailedMsg:
		m.generating = false
		m.LastError = typed.Err
		m.Status = StatusBar{Text: "generation failed: " + typed.Err.Error(), IsError: true}
		return m, nil
	case QuoteMsg:
		m.Dashboard.Quote = typed.Text
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.Current {
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderQuickCheckView() + m.renderHelpIfVisible()
	case ViewLists:
		leftPane = m.renderListsView()
		rightPane = m.renderTaskDetailView() + m.renderReminderEditorIfVisible() + m.renderHelpIfVisible()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderCalendarDayView() + m.renderHelpIfVisible()
	case ViewSketch:
		leftPane = m.renderSketchView()
		rightPane = m.renderSketchPreview() + m.renderHelpIfVisible()
	}

	notification := ""
	if m.generating {
		notification = "generate: " + m.genSpinner.View() + " asking the model"
	}
	if m.Palette.Active {
		notification = trimJoin(notification, views.RenderCommandPalette(true, m.Palette.Input))
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("zencheck | view: %s | %s", m.Current, m.selectedDate()),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notification,
		Footer: fmt.Sprintf("keys: %s dash | %s lists | %s cal | %s sketch | / cmd | %s theme | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Lists, m.Keys.Calendar, m.Keys.Sketch, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
		Theme: m.App.Theme,
	})
}

func waitForSweepTickCmd(ticks <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		at, ok := <-ticks
		if !ok {
			return nil
		}
		return SweepTickMsg{At: at}
	}
}

func (m Model) generateChecklistCmd(goal string) tea.Cmd {
	gen := m.Gen
	return func() tea.Msg {
		if gen == nil {
			return GenerateFailedMsg{Err: genai.ErrMissingKey}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		res, err := gen.GenerateChecklist(ctx, goal)
		if err != nil {
			return GenerateFailedMsg{Err: err}
		}
		return ChecklistGeneratedMsg{Checklist: res}
	}
}

func (m Model) fetchQuoteCmd() tea.Cmd {
	gen := m.Gen
	if gen == nil {
		gen = genai.NewClient("")
	}
	pct, total := dayProgressInput(m)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		quote, err := gen.MotivationalQuote(ctx, pct, total)
		if err != nil {
			return GenerateFailedMsg{Err: err}
		}
		return QuoteMsg{Text: quote}
	}
}

func isKnownView(v View) bool {
	switch v {
	case ViewDashboard, ViewLists, ViewCalendar, ViewSketch:
		return true
	default:
		return false
	}
}
