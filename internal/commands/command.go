package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/samtodo/internal/model"
)

type Type string

const (
	TypeInit       Type = "initAndGo"
	TypeAdd        Type = "addItem"
	TypeDone       Type = "doneItem"
	TypeEdit       Type = "editItem"
	TypeRemoveDone Type = "removeDoneItems"
	TypeToggleMode Type = "toggleEditMode"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeInvalidEnvelope ErrorCode = "invalid_envelope"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type InitArgs struct {
	Items []model.Task
}

// AddArgs names the input field to read. Fields carries the values of the
// page inputs at the time of the event; Text is a shortcut for the default field.
type AddArgs struct {
	InputField string
	Fields     map[string]string
	Text       string
}

type DoneArgs struct {
	Index int
}

type EditArgs struct {
	Index int
	Text  string
}

type Command struct {
	Type Type
	Raw  string
	Init *InitArgs
	Add  *AddArgs
	Done *DoneArgs
	Edit *EditArgs
}

var aliases = map[string]Type{
	"add":             TypeAdd,
	"additem":         TypeAdd,
	"done":            TypeDone,
	"doneitem":        TypeDone,
	"toggle":          TypeDone,
	"edit":            TypeEdit,
	"edititem":        TypeEdit,
	"clear":           TypeRemoveDone,
	"removedoneitems": TypeRemoveDone,
	"mode":            TypeToggleMode,
	"toggleeditmode":  TypeToggleMode,
}

// Parse reads one line typed on the command line, e.g. "add buy milk",
// "done 0", "edit 0 buy oat milk", "clear", "mode".
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimLeft(raw, "/:"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	typ, ok := aliases[head]
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}

	switch typ {
	case TypeAdd:
		return parseAdd(input, raw, args)
	case TypeDone:
		return parseDone(input, args)
	case TypeEdit:
		return parseEdit(input, raw, args)
	default:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: typ, Raw: input}, nil
	}
}

func parseAdd(input, raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a text"}
	}
	text := strings.TrimSpace(raw[len(strings.Fields(raw)[0]):])
	return Command{Type: TypeAdd, Raw: input, Add: &AddArgs{Text: text}}, nil
}

func parseDone(input string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires exactly one index"}
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeDone, Raw: input, Done: &DoneArgs{Index: index}}, nil
}

func parseEdit(input, raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires an index and a text"}
	}
	index, err := parseIndex(args[0])
	if err != nil {
		return Command{}, err
	}
	rest := strings.TrimSpace(raw[len(strings.Fields(raw)[0]):])
	text := strings.TrimSpace(rest[len(args[0]):])
	return Command{Type: TypeEdit, Raw: input, Edit: &EditArgs{Index: index, Text: text}}, nil
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid index: %s", raw)}
	}
	return index, nil
}
