package update

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/samtodo/internal/actions"
	"github.com/sandeepkv93/samtodo/internal/model"
	"github.com/sandeepkv93/samtodo/internal/state"
	"github.com/sandeepkv93/samtodo/internal/views"
)

type Focus string

const (
	FocusInput Focus = "input"
	FocusList  Focus = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandLineState struct {
	Active bool
	Input  string
}

type Options struct {
	Title      string
	InputField string
	Items      []model.Task
	Logger     *log.Logger
}

// screen is the terminal host's model listener. It keeps the view tree of
// the latest notification; View decorates it with cursor and inputs.
type screen struct {
	opts    views.Options
	root    views.Node
	snap    model.Snapshot
	renders int
}

func (s *screen) OnModelChanged(m *model.Model) {
	s.snap = m.Snapshot()
	s.root = views.Build(s.snap, state.Compute(s.snap), s.opts)
	s.renders++
}

// session is shared by every copy of Model that bubbletea hands around.
type session struct {
	model    *model.Model
	actions  *actions.Actions
	fields   *actions.FieldStore
	screen   *screen
	logger   *log.Logger
	rejected error
}

type Model struct {
	Focus       Focus
	Cursor      int
	Editing     int
	CommandLine CommandLineState
	HelpVisible bool
	Status      StatusBar
	Keys        KeyMap
	Quitting    bool
	LastError   error

	inputField   string
	session      *session
	input        textinput.Model
	editInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	viewOpts := views.Options{Title: opts.Title, InputField: opts.InputField}
	if viewOpts.InputField == "" {
		viewOpts.InputField = views.DefaultInputField
	}

	s := &session{
		fields: actions.NewFieldStore(),
		screen: &screen{opts: viewOpts},
		logger: logger,
	}
	s.model = model.New(s.screen)
	s.actions = actions.New(s.model, s.fields, actions.Config{
		Logger:  logger,
		OnError: func(err error) { s.rejected = err },
	})

	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.Prompt = "+ "
	input.CharLimit = 256
	input.Focus()

	editInput := textinput.New()
	editInput.Prompt = ""
	editInput.CharLimit = 256

	commandInput := textinput.New()
	commandInput.Prompt = ": "
	commandInput.Placeholder = "add <text> | done <n> | edit <n> <text> | clear | mode"

	m := Model{
		Focus:        FocusInput,
		Cursor:       0,
		Editing:      views.NoIndex,
		Keys:         DefaultKeyMap(),
		inputField:   viewOpts.InputField,
		session:      s,
		input:        input,
		editInput:    editInput,
		commandInput: commandInput,
		helpModel:    help.New(),
	}
	m = m.dispatch(func() { s.actions.InitAndGo(actions.InitData{Items: opts.Items}) })
	return m
}

// Snapshot returns the model contents behind the current screen.
func (m Model) Snapshot() model.Snapshot {
	return m.session.model.Snapshot()
}

// Renders counts the notifications the screen has received.
func (m Model) Renders() int {
	return m.session.screen.renders
}

// dispatch runs one action and turns a rejection into the status line.
func (m Model) dispatch(fn func()) Model {
	m.session.rejected = nil
	fn()
	if err := m.session.rejected; err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
	m.clampCursor()
	return m
}

func (m *Model) clampCursor() {
	n := len(m.session.screen.snap.Items)
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Editing >= n || !m.session.screen.snap.IsEditMode {
		m.stopEditing()
	}
}

func (m *Model) stopEditing() {
	m.Editing = views.NoIndex
	m.editInput.Blur()
	m.editInput.SetValue("")
}

func (m *Model) setFocus(f Focus) {
	m.Focus = f
	if f == FocusInput {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m Model) buttonDisabled(id string) bool {
	n, ok := m.session.screen.root.Find(id)
	return !ok || n.Disabled
}
