package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/samtodo/internal/actions"
	"github.com/sandeepkv93/samtodo/internal/views"
)

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.CommandLine.Active {
			return m.handleCommandKey(typed)
		}
		if m.Editing != views.NoIndex {
			return m.handleEditKey(typed)
		}
		if m.Focus == FocusInput {
			return m.handleInputKey(typed)
		}
		return m.handleListKey(typed)
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleInputKey sends everything but focus, add and quit to the text input,
// so letters bound in the list stay typeable.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.SwitchFocus):
		m.setFocus(FocusList)
		return m, nil
	case key.Matches(msg, m.Keys.Enter):
		return m.addFromInput(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.fields.Set(m.inputField, m.input.Value())
	return m, cmd
}

func (m Model) addFromInput() Model {
	m.session.fields.Set(m.inputField, m.input.Value())
	before := len(m.session.screen.snap.Items)
	m = m.dispatch(func() { m.session.actions.AddItem(actions.AddItemData{InputField: m.inputField}) })
	if len(m.session.screen.snap.Items) == before {
		m.Status = StatusBar{Text: "nothing to add"}
		return m
	}
	// a fresh render shows an empty input again
	m.input.SetValue("")
	m.session.fields.Clear(m.inputField)
	m.Status = StatusBar{Text: "item added"}
	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.session.screen.snap
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.SwitchFocus):
		m.setFocus(FocusInput)
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(snap.Items)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Enter):
		if len(snap.Items) == 0 {
			m.Status = StatusBar{Text: "list is empty"}
			return m, nil
		}
		if snap.IsEditMode {
			return m.startEditing(), textinput.Blink
		}
		index := m.Cursor
		m = m.dispatch(func() { m.session.actions.DoneItem(actions.DoneItemData{Index: index}) })
	case key.Matches(msg, m.Keys.RemoveDone):
		if m.buttonDisabled(views.IDRemoveDoneButton) {
			m.Status = StatusBar{Text: "no done items to remove"}
			return m, nil
		}
		m = m.dispatch(m.session.actions.RemoveDoneItems)
	case key.Matches(msg, m.Keys.ToggleMode):
		if m.buttonDisabled(views.IDToggleModeButton) {
			m.Status = StatusBar{Text: "list is empty"}
			return m, nil
		}
		m = m.dispatch(m.session.actions.ToggleEditMode)
	case key.Matches(msg, m.Keys.Command):
		m.CommandLine = CommandLineState{Active: true}
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		m.helpModel.ShowAll = m.HelpVisible
	}
	return m, nil
}

func (m Model) startEditing() Model {
	item := m.session.screen.snap.Items[m.Cursor]
	m.Editing = m.Cursor
	m.editInput.SetValue(item.Text)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	return m
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.stopEditing()
		m.Status = StatusBar{Text: "edit cancelled"}
		return m, nil
	case key.Matches(msg, m.Keys.Enter):
		index, value := m.Editing, m.editInput.Value()
		m.stopEditing()
		m = m.dispatch(func() {
			m.session.actions.EditItem(actions.EditItemData{Event: actions.ChangeEvent{Value: value}, Index: index})
		})
		if !m.Status.IsError {
			m.Status = StatusBar{Text: fmt.Sprintf("edited item %d", index)}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	renderer := views.NewTerminalRenderer()
	renderer.InputView = m.input.View()
	renderer.KeyHints = m.Keys.buttonHints()
	if m.Focus == FocusList {
		renderer.Cursor = m.Cursor
	}
	if m.Editing != views.NoIndex {
		renderer.Editing = m.Editing
		renderer.EditView = m.editInput.View()
	}

	helpView := ""
	if m.HelpVisible {
		helpView = views.RenderMarkdown(helpMarkdown) + "\n" + m.helpModel.View(m.Keys)
	}
	footer := m.helpModel.ShortHelpView(m.Keys.ShortHelp())
	if m.CommandLine.Active {
		footer = m.commandInput.View()
	}

	return views.RenderFrame(views.Frame{
		Body:       renderer.Render(m.session.screen.root),
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Help:       helpView,
		Footer:     footer,
	})
}
