// Package state owns the single in-memory application state and every
// mutation over it. Mutations are total: bad input or an unknown target id is
// a silent no-op, never an error. Each successful mutation writes the
// affected top-level snapshot(s) through the injected persistence port.
package state

import (
	"context"
	"time"

	"github.com/zencheck/zencheck/internal/config"
	"github.com/zencheck/zencheck/internal/model"
	"github.com/zencheck/zencheck/internal/store"
)

// App is the process-local application state. It is owned by the event loop
// and must not be shared across goroutines; autonomous activity (the reminder
// sweep) is delivered onto the same loop as messages.
type App struct {
	Groups  []model.ChecklistGroup
	History model.DailyHistory
	Widgets []model.WidgetConfig
	Theme   string

	// Session-only selections; not persisted.
	ActiveGroupID string
	SelectedDate  string

	// Typed references to the reserved singletons, resolved at load time
	// instead of matching magic id strings everywhere.
	dailyGroupID    string
	calendarGroupID string

	kv  store.KV
	now func() time.Time
}

const (
	dailyGroupTitle    = "Daily Habits"
	calendarGroupTitle = "Calendar"
)

// New reconstructs the application state from a loaded snapshot, seeding the
// daily-habit singleton on first run and resolving the singleton references.
func New(kv store.KV, snap store.Snapshot) *App {
	a := &App{
		Groups:  snap.Groups,
		History: snap.History,
		Widgets: snap.Widgets,
		Theme:   snap.Theme,
		kv:      kv,
		now:     time.Now,
	}
	if a.Groups == nil {
		a.Groups = []model.ChecklistGroup{}
	}
	if a.History == nil {
		a.History = model.DailyHistory{}
	}
	if len(a.Widgets) == 0 {
		a.Widgets = model.DefaultWidgets()
	}
	if a.Theme == "" {
		a.Theme = store.ThemeLight
	}

	for _, g := range a.Groups {
		switch g.EffectiveType() {
		case model.GroupDaily:
			if a.dailyGroupID == "" {
				a.dailyGroupID = g.ID
			}
		case model.GroupCalendar:
			if a.calendarGroupID == "" {
				a.calendarGroupID = g.ID
			}
		}
	}
	if a.dailyGroupID == "" {
		daily := model.NewGroup(dailyGroupTitle, nil, model.ColorEmerald)
		daily.Type = model.GroupDaily
		a.Groups = append(a.Groups, daily)
		a.dailyGroupID = daily.ID
		a.persistGroups()
	}
	return a
}

func (a *App) Today() string {
	return a.now().Format(model.DateLayout)
}

// Group resolves a group by id. The calendar bucket is additionally reachable
// through its type, so callers holding a stale bucket id still find it.
func (a *App) Group(id string) (model.ChecklistGroup, bool) {
	if i := a.groupIndex(id); i >= 0 {
		return a.Groups[i], true
	}
	return model.ChecklistGroup{}, false
}

func (a *App) groupIndex(id string) int {
	for i, g := range a.Groups {
		if g.ID == id {
			return i
		}
	}
	if id != "" && id == a.calendarGroupID {
		for i, g := range a.Groups {
			if g.EffectiveType() == model.GroupCalendar {
				return i
			}
		}
	}
	return -1
}

func (a *App) DailyGroup() (model.ChecklistGroup, bool) {
	return a.Group(a.dailyGroupID)
}

func (a *App) CalendarBucket() (model.ChecklistGroup, bool) {
	if a.calendarGroupID == "" {
		return model.ChecklistGroup{}, false
	}
	return a.Group(a.calendarGroupID)
}

// ActiveGroup resolves the current selection, falling back to the first
// group when nothing is selected.
func (a *App) ActiveGroup() (model.ChecklistGroup, bool) {
	if a.ActiveGroupID != "" {
		if g, ok := a.Group(a.ActiveGroupID); ok {
			return g, true
		}
	}
	if len(a.Groups) > 0 {
		return a.Groups[0], true
	}
	return model.ChecklistGroup{}, false
}

// Persistence writes are fire-and-forget: a failed mirror write leaves the
// in-memory state authoritative for the session and is only logged.
func (a *App) persistGroups() {
	if a.kv == nil {
		return
	}
	if err := store.SaveGroups(context.Background(), a.kv, a.Groups); err != nil {
		config.Logger.WithError(err).Warn("persist groups failed")
	}
}

func (a *App) persistHistory() {
	if a.kv == nil {
		return
	}
	if err := store.SaveHistory(context.Background(), a.kv, a.History); err != nil {
		config.Logger.WithError(err).Warn("persist history failed")
	}
}

func (a *App) persistWidgets() {
	if a.kv == nil {
		return
	}
	if err := store.SaveWidgets(context.Background(), a.kv, a.Widgets); err != nil {
		config.Logger.WithError(err).Warn("persist widgets failed")
	}
}

func (a *App) persistTheme() {
	if a.kv == nil {
		return
	}
	if err := store.SaveTheme(context.Background(), a.kv, a.Theme); err != nil {
		config.Logger.WithError(err).Warn("persist theme failed")
	}
}
