package commands

import (
	"fmt"
	"strings"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

type Type string

const (
	TypeFill     Type = "fill"
	TypeUnfill   Type = "unfill"
	TypeEvent    Type = "event"
	TypeCategory Type = "category"
	TypeNote     Type = "note"
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

type FillArgs struct {
	Week model.WeekKey
}

// EventArgs carries a fully parsed event command. End is empty for single
// events.
type EventArgs struct {
	Category    string
	Start       model.WeekKey
	End         model.WeekKey
	Description string
}

type CategoryAction string

const (
	CategoryAdd    CategoryAction = "add"
	CategoryRemove CategoryAction = "remove"
	CategoryRename CategoryAction = "rename"
)

type CategoryArgs struct {
	Action  CategoryAction
	Name    string
	Color   string
	NewName string
}

type NoteArgs struct {
	Week model.WeekKey
}

type Command struct {
	Type     Type
	Raw      string
	Fill     *FillArgs
	Event    *EventArgs
	Category *CategoryArgs
	Note     *NoteArgs
}

// Parse turns palette input like "/event Travel 2024-W01 2024-W03 Trip" into
// a typed command.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeFill, TypeUnfill:
		return parseFill(input, Type(head), args)
	case TypeEvent:
		return parseEvent(input, args)
	case TypeCategory:
		return parseCategory(input, args)
	case TypeNote:
		return parseNote(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseFill(raw string, t Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: string(t) + " requires a week key"}
	}
	week := model.WeekKey(args[0])
	if !week.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("not a week key: %s", args[0])}
	}
	return Command{Type: t, Raw: raw, Fill: &FillArgs{Week: week}}, nil
}

// parseEvent accepts "<category...> <week> <description...>" and
// "<category...> <start> <end> <description...>". The category may contain
// spaces; the first valid week key token ends it.
func parseEvent(raw string, args []string) (Command, error) {
	keyAt := -1
	for i, arg := range args {
		if model.WeekKey(arg).IsValid() {
			keyAt = i
			break
		}
	}
	if keyAt <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "event requires a category and a week key"}
	}

	out := EventArgs{
		Category: strings.Join(args[:keyAt], " "),
		Start:    model.WeekKey(args[keyAt]),
	}
	rest := args[keyAt+1:]
	if len(rest) > 0 && model.WeekKey(rest[0]).IsValid() {
		out.End = model.WeekKey(rest[0])
		rest = rest[1:]
	}
	out.Description = strings.TrimSpace(strings.Join(rest, " "))
	if out.Description == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "event requires a description"}
	}
	return Command{Type: TypeEvent, Raw: raw, Event: &out}, nil
}

func parseCategory(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "category requires an action and a name"}
	}
	action := CategoryAction(strings.ToLower(args[0]))
	rest := args[1:]

	switch action {
	case CategoryAdd:
		// Last token is the color, everything before is the name.
		if len(rest) < 2 || !strings.HasPrefix(rest[len(rest)-1], "#") {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "category add requires a name and a #hex color"}
		}
		return Command{Type: TypeCategory, Raw: raw, Category: &CategoryArgs{
			Action: action,
			Name:   strings.Join(rest[:len(rest)-1], " "),
			Color:  rest[len(rest)-1],
		}}, nil
	case CategoryRemove:
		return Command{Type: TypeCategory, Raw: raw, Category: &CategoryArgs{
			Action: action,
			Name:   strings.Join(rest, " "),
		}}, nil
	case CategoryRename:
		// "old -> new" keeps multi-word names unambiguous.
		joined := strings.Join(rest, " ")
		oldName, newName, found := strings.Cut(joined, "->")
		oldName = strings.TrimSpace(oldName)
		newName = strings.TrimSpace(newName)
		if !found || oldName == "" || newName == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "category rename requires: <old> -> <new>"}
		}
		return Command{Type: TypeCategory, Raw: raw, Category: &CategoryArgs{
			Action:  action,
			Name:    oldName,
			NewName: newName,
		}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown category action: %s", args[0])}
	}
}

func parseNote(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "note requires a week key"}
	}
	week := model.WeekKey(args[0])
	if !week.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("not a week key: %s", args[0])}
	}
	return Command{Type: TypeNote, Raw: raw, Note: &NoteArgs{Week: week}}, nil
}
