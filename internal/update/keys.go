package update

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/samtodo/internal/views"
)

type KeyMap struct {
	SwitchFocus key.Binding
	Enter       key.Binding
	Up          key.Binding
	Down        key.Binding
	RemoveDone  key.Binding
	ToggleMode  key.Binding
	Command     key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "input/list")),
		Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add / done / edit")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		RemoveDone:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove done")),
		ToggleMode:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit/todo mode")),
		Command:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.Enter, k.RemoveDone, k.ToggleMode, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchFocus, k.Enter, k.Up, k.Down},
		{k.RemoveDone, k.ToggleMode, k.Command, k.Cancel},
		{k.Help, k.Quit},
	}
}

// buttonHints labels the view's buttons with the key that presses them.
func (k KeyMap) buttonHints() map[string]string {
	return map[string]string{
		views.IDAddButton:        k.Enter.Help().Key,
		views.IDRemoveDoneButton: k.RemoveDone.Help().Key,
		views.IDToggleModeButton: k.ToggleMode.Help().Key,
	}
}
