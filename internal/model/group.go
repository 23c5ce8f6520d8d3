package model

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidGroupType   = errors.New("model: invalid group type")
	ErrInvalidGroupColor  = errors.New("model: invalid group color")
	ErrNotesOutsideSketch = errors.New("model: notes are only valid on sketch groups")
)

type GroupType string

const (
	GroupStandard GroupType = "standard"
	GroupDaily    GroupType = "daily"
	GroupCalendar GroupType = "calendar"
	GroupSketch   GroupType = "sketch"
)

func (g GroupType) IsValid() bool {
	switch g {
	case GroupStandard, GroupDaily, GroupCalendar, GroupSketch:
		return true
	default:
		return false
	}
}

type GroupColor string

const (
	ColorIndigo  GroupColor = "indigo"
	ColorRose    GroupColor = "rose"
	ColorEmerald GroupColor = "emerald"
	ColorAmber   GroupColor = "amber"
	ColorViolet  GroupColor = "violet"
	ColorSlate   GroupColor = "slate"
	ColorCyan    GroupColor = "cyan"
)

// AllColors is the fixed palette; order matters for the color picker.
var AllColors = []GroupColor{
	ColorIndigo, ColorRose, ColorEmerald, ColorAmber, ColorViolet, ColorSlate, ColorCyan,
}

func (c GroupColor) IsValid() bool {
	for _, known := range AllColors {
		if c == known {
			return true
		}
	}
	return false
}

func RandomColor() GroupColor {
	return AllColors[rand.Intn(len(AllColors))]
}

type ChecklistGroup struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Tasks     []Task     `json:"tasks"`
	Color     GroupColor `json:"color"`
	CreatedAt time.Time  `json:"createdAt"`
	// Type defaults to standard when absent in persisted data.
	Type GroupType `json:"type,omitempty"`
	// Notes carries free-form text for sketch groups only.
	Notes string `json:"notes,omitempty"`
}

func NewGroup(title string, tasks []Task, color GroupColor) ChecklistGroup {
	if !color.IsValid() {
		color = RandomColor()
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return ChecklistGroup{
		ID:        uuid.NewString(),
		Title:     title,
		Tasks:     tasks,
		Color:     color,
		CreatedAt: time.Now(),
		Type:      GroupStandard,
	}
}

func NewSketch(title string) ChecklistGroup {
	g := NewGroup(title, nil, RandomColor())
	g.Type = GroupSketch
	return g
}

// EffectiveType maps the persisted zero value to standard.
func (g ChecklistGroup) EffectiveType() GroupType {
	if g.Type == "" {
		return GroupStandard
	}
	return g.Type
}

func (g ChecklistGroup) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.New("model: group id is required")
	}
	if strings.TrimSpace(g.Title) == "" {
		return errors.New("model: group title is required")
	}
	if !g.EffectiveType().IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidGroupType, g.Type)
	}
	if !g.Color.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidGroupColor, g.Color)
	}
	if g.Notes != "" && g.EffectiveType() != GroupSketch {
		return ErrNotesOutsideSketch
	}
	for _, t := range g.Tasks {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FindTask returns the index of the task with the given id, or -1.
func (g ChecklistGroup) FindTask(taskID string) int {
	for i, t := range g.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}
