package model

// WidgetConfig is the per-widget dashboard visibility toggle. It is persisted
// independently of task data.
type WidgetConfig struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
}

const (
	WidgetStats      = "stats"
	WidgetQuickCheck = "focus"
)

// DefaultWidgets is the seed registry used when nothing is persisted yet.
func DefaultWidgets() []WidgetConfig {
	return []WidgetConfig{
		{ID: WidgetStats, Enabled: true, Title: "Stats", Icon: "📊"},
		{ID: WidgetQuickCheck, Enabled: true, Title: "Quick Check", Icon: "✅"},
	}
}
