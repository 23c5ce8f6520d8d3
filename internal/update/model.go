// Package update holds the bubbletea model and event loop. All state
// mutations, including the periodic reminder sweep, run on this loop; nothing
// else touches the state.App.
package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/zencheck/zencheck/internal/genai"
	"github.com/zencheck/zencheck/internal/state"
	"github.com/zencheck/zencheck/internal/sweep"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewLists     View = "Lists"
	ViewCalendar  View = "Calendar"
	ViewSketch    View = "Sketch"
)

type StatsTab string

const (
	StatsTabDay   StatsTab = "day"
	StatsTabMonth StatsTab = "month"
	StatsTabYear  StatsTab = "year"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Lists     string
	Calendar  string
	Sketch    string
	Help      string
	Theme     string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// ReminderEditorState is the inline editor for a task's reminder clock and
// repeat settings. Field 0 is the clock, 1 the interval, 2 the count.
type ReminderEditorState struct {
	Active       bool
	TaskID       string
	Field        int
	ClockText    string
	IntervalText string
	CountText    string
	Err          string
}

type ListsState struct {
	GroupCursor int
	TaskCursor  int
	AddMode     bool
	RenameMode  bool
}

type CalendarState struct {
	AddMode bool
	Cursor  int
}

type SketchState struct {
	Editing bool
}

type DashboardState struct {
	Tab   StatsTab
	Quote string
}

type Model struct {
	App     *state.App
	Current View

	Lists     ListsState
	Calendar  CalendarState
	Sketch    SketchState
	Dashboard DashboardState

	Palette        CommandPaletteState
	ReminderEditor ReminderEditorState
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	Gen            *genai.Client
	DesktopEnabled bool
	notifier       sweep.Notifier
	sweepTicks     <-chan time.Time

	// Bubble components used for rich TUI controls
	taskList      list.Model
	calendarTable table.Model
	quickAddInput textinput.Model
	commandInput  textinput.Model
	notesArea     textarea.Model
	genSpinner    spinner.Model
	helpModel     help.Model
	previewPort   viewport.Model
	generating    bool
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type SweepTickMsg struct {
	At time.Time
}

type ChecklistGeneratedMsg struct {
	Checklist genai.Checklist
}

type GenerateFailedMsg struct {
	Err error
}

type QuoteMsg struct {
	Text string
}

func NewModel(app *state.App) Model {
	m := Model{
		App:      app,
		Current:  ViewDashboard,
		notifier: sweep.NoopNotifier{},
		Dashboard: DashboardState{
			Tab: StatsTabDay,
		},
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Lists:     "2",
			Calendar:  "3",
			Sketch:    "4",
			Help:      "?",
			Theme:     "t",
			Quit:      "q",
		},
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

// NewModelWithRuntime wires the full runtime: AI client, sweep tick source and
// the desktop notifier gate.
func NewModelWithRuntime(app *state.App, gen *genai.Client, ticks <-chan time.Time, desktopEnabled bool, notifier sweep.Notifier) Model {
	m := NewModel(app)
	m.Gen = gen
	m.sweepTicks = ticks
	m.DesktopEnabled = desktopEnabled
	if notifier != nil {
		m.notifier = notifier
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Done", Width: 6},
		{Title: "Task", Width: 32},
	}
	m.calendarTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(10)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Sketch notes (markdown)"

	m.genSpinner = spinner.New()
	m.genSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.previewPort = viewport.New(54, 12)
}
