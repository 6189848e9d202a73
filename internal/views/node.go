package views

import "github.com/sandeepkv93/samtodo/internal/commands"

type Kind string

const (
	KindApp       Kind = "app"
	KindHeading   Kind = "heading"
	KindTextInput Kind = "text-input"
	KindButton    Kind = "button"
	KindList      Kind = "list"
	KindItem      Kind = "item"
	KindItemInput Kind = "item-input"
)

// NoIndex marks a binding whose action is not addressed to a task.
const NoIndex = -1

const (
	IDAddButton        = "add"
	IDRemoveDoneButton = "remove-done"
	IDToggleModeButton = "toggle-mode"
	IDList             = "items"
)

const ClassDone = "done"

// Binding wires a node event back to an action entry point.
type Binding struct {
	Action     commands.Type
	Index      int
	InputField string
}

// Node is one element of the rendered view model.
type Node struct {
	Kind     Kind
	ID       string
	Text     string
	Value    string
	Class    string
	Disabled bool
	OnClick  *Binding
	OnChange *Binding
	Children []Node
}

func (n Node) Find(id string) (Node, bool) {
	if n.ID == id {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.Find(id); ok {
			return found, true
		}
	}
	return Node{}, false
}

func (n Node) FindKind(kind Kind) (Node, bool) {
	if n.Kind == kind {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.FindKind(kind); ok {
			return found, true
		}
	}
	return Node{}, false
}
