package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zencheck/zencheck/internal/model"
)

// Top-level persistence keys. Each maps to an independent JSON snapshot; the
// storage layer enforces no cross-references between them.
const (
	KeyGroups  = "zencheck_groups"
	KeyWidgets = "zencheck_widgets"
	KeyHistory = "zencheck_history"
	KeyTheme   = "zencheck_theme"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Snapshot is the full persisted application state.
type Snapshot struct {
	Groups  []model.ChecklistGroup
	Widgets []model.WidgetConfig
	History model.DailyHistory
	Theme   string
}

// Load reconstructs the snapshot from the KV, substituting the documented
// default for each absent key: empty group list, default widget set, empty
// history, light theme.
func Load(ctx context.Context, kv KV) (Snapshot, error) {
	snap := Snapshot{
		Groups:  []model.ChecklistGroup{},
		Widgets: model.DefaultWidgets(),
		History: model.DailyHistory{},
		Theme:   ThemeLight,
	}

	if err := loadJSON(ctx, kv, KeyGroups, &snap.Groups); err != nil {
		return Snapshot{}, err
	}
	if err := loadJSON(ctx, kv, KeyWidgets, &snap.Widgets); err != nil {
		return Snapshot{}, err
	}
	if err := loadJSON(ctx, kv, KeyHistory, &snap.History); err != nil {
		return Snapshot{}, err
	}

	theme, err := kv.Get(ctx, KeyTheme)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Snapshot{}, fmt.Errorf("load %s: %w", KeyTheme, err)
	}
	if err == nil && (theme == ThemeLight || theme == ThemeDark) {
		snap.Theme = theme
	}
	return snap, nil
}

func loadJSON(ctx context.Context, kv KV, key string, dst any) error {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func SaveGroups(ctx context.Context, kv KV, groups []model.ChecklistGroup) error {
	return saveJSON(ctx, kv, KeyGroups, groups)
}

func SaveWidgets(ctx context.Context, kv KV, widgets []model.WidgetConfig) error {
	return saveJSON(ctx, kv, KeyWidgets, widgets)
}

func SaveHistory(ctx context.Context, kv KV, history model.DailyHistory) error {
	return saveJSON(ctx, kv, KeyHistory, history)
}

func SaveTheme(ctx context.Context, kv KV, theme string) error {
	return kv.Set(ctx, KeyTheme, theme)
}

func saveJSON(ctx context.Context, kv KV, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(payload))
}
