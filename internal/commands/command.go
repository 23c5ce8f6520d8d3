// Package commands parses command-palette input into typed commands. Parsing
// is strict so the palette can report precise errors; the silent no-op policy
// applies only once a command reaches the state layer.
package commands

import (
	"fmt"
	"strings"

	"github.com/zencheck/zencheck/internal/model"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeNew      Type = "new"
	TypeSketch   Type = "sketch"
	TypeCalendar Type = "cal"
	TypeGenerate Type = "gen"
	TypeTheme    Type = "theme"
	TypeWidget   Type = "widget"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type NewArgs struct {
	Title string
}

type SketchArgs struct {
	Title string
}

type CalendarArgs struct {
	Date string
	Text string
}

type GenerateArgs struct {
	Goal string
}

type ThemeArgs struct {
	// Name is "light", "dark", or empty to toggle.
	Name string
}

type WidgetArgs struct {
	ID string
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	New      *NewArgs
	Sketch   *SketchArgs
	Calendar *CalendarArgs
	Generate *GenerateArgs
	Theme    *ThemeArgs
	Widget   *WidgetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeNew:
		return parseNew(input, args)
	case TypeSketch:
		return parseSketch(input, args)
	case TypeCalendar:
		return parseCalendar(input, args)
	case TypeGenerate:
		return parseGenerate(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeWidget:
		return parseWidget(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseNew(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "new requires a list title"}
	}
	return Command{Type: TypeNew, Raw: raw, New: &NewArgs{Title: title}}, nil
}

func parseSketch(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sketch requires a title"}
	}
	return Command{Type: TypeSketch, Raw: raw, Sketch: &SketchArgs{Title: title}}, nil
}

func parseCalendar(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "cal requires a date and task text"}
	}
	date := args[0]
	if !model.ValidDate(date) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "cal requires task text"}
	}
	return Command{Type: TypeCalendar, Raw: raw, Calendar: &CalendarArgs{Date: date, Text: text}}, nil
}

func parseGenerate(raw string, args []string) (Command, error) {
	goal := strings.TrimSpace(strings.Join(args, " "))
	if goal == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "gen requires a goal to expand"}
	}
	return Command{Type: TypeGenerate, Raw: raw, Generate: &GenerateArgs{Goal: goal}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	name := ""
	if len(args) > 0 {
		name = strings.ToLower(args[0])
		if name != "light" && name != "dark" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme %q", args[0])}
		}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Name: name}}, nil
}

func parseWidget(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "widget requires an id"}
	}
	return Command{Type: TypeWidget, Raw: raw, Widget: &WidgetArgs{ID: strings.ToLower(args[0])}}, nil
}
