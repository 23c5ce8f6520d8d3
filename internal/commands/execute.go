package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	New      func(NewArgs) (Result, error)
	Sketch   func(SketchArgs) (Result, error)
	Calendar func(CalendarArgs) (Result, error)
	Generate func(GenerateArgs) (Result, error)
	Theme    func(ThemeArgs) (Result, error)
	Widget   func(WidgetArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeNew:
		if handlers.New == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "new handler not configured"}
		}
		return handlers.New(*cmd.New)
	case TypeSketch:
		if handlers.Sketch == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sketch handler not configured"}
		}
		return handlers.Sketch(*cmd.Sketch)
	case TypeCalendar:
		if handlers.Calendar == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "cal handler not configured"}
		}
		return handlers.Calendar(*cmd.Calendar)
	case TypeGenerate:
		if handlers.Generate == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "gen handler not configured"}
		}
		return handlers.Generate(*cmd.Generate)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "theme handler not configured"}
		}
		return handlers.Theme(*cmd.Theme)
	case TypeWidget:
		if handlers.Widget == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "widget handler not configured"}
		}
		return handlers.Widget(*cmd.Widget)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
