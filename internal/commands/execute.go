package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Fill     func(FillArgs) (Result, error)
	Unfill   func(FillArgs) (Result, error)
	Event    func(EventArgs) (Result, error)
	Category func(CategoryArgs) (Result, error)
	Note     func(NoteArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeFill:
		if handlers.Fill == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "fill handler not configured"}
		}
		return handlers.Fill(*cmd.Fill)
	case TypeUnfill:
		if handlers.Unfill == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "unfill handler not configured"}
		}
		return handlers.Unfill(*cmd.Fill)
	case TypeEvent:
		if handlers.Event == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "event handler not configured"}
		}
		return handlers.Event(*cmd.Event)
	case TypeCategory:
		if handlers.Category == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "category handler not configured"}
		}
		return handlers.Category(*cmd.Category)
	case TypeNote:
		if handlers.Note == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "note handler not configured"}
		}
		return handlers.Note(*cmd.Note)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
