package actions

import (
	"fmt"

	"github.com/sandeepkv93/samtodo/internal/commands"
)

// Handlers binds parsed commands to the Actions entry points. Text-only add
// commands write into defaultField first, the way typing into the input would.
func Handlers(a *Actions, fields *FieldStore, defaultField string) commands.Handlers {
	return commands.Handlers{
		Init: func(args commands.InitArgs) (commands.Result, error) {
			a.InitAndGo(InitData{Items: args.Items})
			return commands.Result{Message: fmt.Sprintf("loaded %d items", len(args.Items))}, nil
		},
		Add: func(args commands.AddArgs) (commands.Result, error) {
			field := args.InputField
			if field == "" {
				field = defaultField
			}
			fields.Merge(args.Fields)
			if args.Text != "" {
				fields.Set(field, args.Text)
			}
			before := a.model.Len()
			a.AddItem(AddItemData{InputField: field})
			// the re-rendered input starts empty
			fields.Clear(field)
			if a.model.Len() == before {
				return commands.Result{Message: "nothing to add"}, nil
			}
			return commands.Result{Message: "item added"}, nil
		},
		Done: func(args commands.DoneArgs) (commands.Result, error) {
			a.DoneItem(DoneItemData{Index: args.Index})
			return commands.Result{Message: fmt.Sprintf("toggled item %d", args.Index)}, nil
		},
		Edit: func(args commands.EditArgs) (commands.Result, error) {
			a.EditItem(EditItemData{Event: ChangeEvent{Value: args.Text}, Index: args.Index})
			return commands.Result{Message: fmt.Sprintf("edited item %d", args.Index)}, nil
		},
		RemoveDone: func() (commands.Result, error) {
			a.RemoveDoneItems()
			return commands.Result{Message: "done items removed"}, nil
		},
		ToggleMode: func() (commands.Result, error) {
			a.ToggleEditMode()
			return commands.Result{Message: "mode toggled"}, nil
		},
	}
}
