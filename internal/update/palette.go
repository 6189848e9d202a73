package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/samtodo/internal/actions"
	"github.com/sandeepkv93/samtodo/internal/commands"
)

func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.closeCommandLine()
		m.Status = StatusBar{Text: "command line closed"}
		return m, nil
	case key.Matches(msg, m.Keys.Enter):
		m.CommandLine.Input = m.commandInput.Value()
		return m.executeCommandLine(), nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.CommandLine.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executeCommandLine() Model {
	raw := strings.TrimSpace(m.CommandLine.Input)
	m.closeCommandLine()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	var res commands.Result
	m = m.dispatch(func() {
		res, err = commands.Execute(cmd, actions.Handlers(m.session.actions, m.session.fields, m.inputField))
	})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	if m.session.rejected != nil {
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	m.session.logger.Debug("command", "line", raw, "result", res.Message)
	return m
}

func (m *Model) closeCommandLine() {
	m.CommandLine = CommandLineState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}
