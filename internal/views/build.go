package views

import (
	"github.com/sandeepkv93/samtodo/internal/commands"
	"github.com/sandeepkv93/samtodo/internal/model"
	"github.com/sandeepkv93/samtodo/internal/state"
)

const (
	DefaultTitle      = "Todo List"
	DefaultInputField = "inputText"
)

type Options struct {
	Title      string
	InputField string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.InputField == "" {
		o.InputField = DefaultInputField
	}
	return o
}

// Build produces the whole application view for one model snapshot.
func Build(snap model.Snapshot, st state.State, opts Options) Node {
	opts = opts.withDefaults()

	var items []Node
	if snap.IsEditMode {
		items = editItems(snap)
	} else {
		items = listItems(snap)
	}

	modeLabel := "Edit Mode"
	if snap.IsEditMode {
		modeLabel = "Todo Mode"
	}

	return Node{
		Kind: KindApp,
		Children: []Node{
			{Kind: KindHeading, Text: opts.Title},
			{Kind: KindTextInput, ID: opts.InputField},
			{
				Kind:    KindButton,
				ID:      IDAddButton,
				Text:    "Todo",
				OnClick: &Binding{Action: commands.TypeAdd, Index: NoIndex, InputField: opts.InputField},
			},
			{Kind: KindList, ID: IDList, Children: items},
			{
				Kind:     KindButton,
				ID:       IDRemoveDoneButton,
				Text:     "Remove done items",
				Disabled: !st.HasDoneItems,
				OnClick:  &Binding{Action: commands.TypeRemoveDone, Index: NoIndex},
			},
			{
				Kind:     KindButton,
				ID:       IDToggleModeButton,
				Text:     modeLabel,
				Disabled: len(snap.Items) == 0,
				OnClick:  &Binding{Action: commands.TypeToggleMode, Index: NoIndex},
			},
		},
	}
}

func listItems(snap model.Snapshot) []Node {
	out := make([]Node, 0, len(snap.Items))
	for i, item := range snap.Items {
		class := ""
		if item.Done {
			class = ClassDone
		}
		out = append(out, Node{
			Kind:    KindItem,
			Text:    item.Text,
			Class:   class,
			OnClick: &Binding{Action: commands.TypeDone, Index: i},
		})
	}
	return out
}

func editItems(snap model.Snapshot) []Node {
	out := make([]Node, 0, len(snap.Items))
	for i, item := range snap.Items {
		out = append(out, Node{
			Kind:     KindItemInput,
			Value:    item.Text,
			OnChange: &Binding{Action: commands.TypeEdit, Index: i},
		})
	}
	return out
}
