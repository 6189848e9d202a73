package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Init       func(InitArgs) (Result, error)
	Add        func(AddArgs) (Result, error)
	Done       func(DoneArgs) (Result, error)
	Edit       func(EditArgs) (Result, error)
	RemoveDone func() (Result, error)
	ToggleMode func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeInit:
		if handlers.Init == nil {
			return Result{}, missing(cmd.Type)
		}
		args := InitArgs{}
		if cmd.Init != nil {
			args = *cmd.Init
		}
		return handlers.Init(args)
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		if cmd.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "addItem without arguments"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missing(cmd.Type)
		}
		if cmd.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "doneItem without an index"}
		}
		return handlers.Done(*cmd.Done)
	case TypeEdit:
		if handlers.Edit == nil {
			return Result{}, missing(cmd.Type)
		}
		if cmd.Edit == nil {
			return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "editItem without arguments"}
		}
		return handlers.Edit(*cmd.Edit)
	case TypeRemoveDone:
		if handlers.RemoveDone == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.RemoveDone()
	case TypeToggleMode:
		if handlers.ToggleMode == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.ToggleMode()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
