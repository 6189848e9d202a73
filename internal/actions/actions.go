package actions

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/samtodo/internal/model"
)

// InputReader exposes the current value of the page's input elements.
type InputReader interface {
	InputValue(id string) (string, bool)
}

type InitData struct {
	Items []model.Task
}

type AddItemData struct {
	InputField string
}

type DoneItemData struct {
	Index int
}

// ChangeEvent carries the value of the element that fired a change.
type ChangeEvent struct {
	Value string
}

type EditItemData struct {
	Event ChangeEvent
	Index int
}

type Config struct {
	Logger  *log.Logger
	OnError func(error)
}

// Actions turns UI event payloads into model requests. None of its methods
// return a value; rejected requests go to the logger and Config.OnError.
type Actions struct {
	model   *model.Model
	inputs  InputReader
	logger  *log.Logger
	onError func(error)
}

func New(m *model.Model, inputs InputReader, cfg Config) *Actions {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Actions{
		model:   m,
		inputs:  inputs,
		logger:  logger,
		onError: cfg.OnError,
	}
}

func (a *Actions) InitAndGo(data InitData) {
	a.logger.Info("go", "items", len(data.Items))
	a.present(model.Init{Items: data.Items})
}

func (a *Actions) AddItem(data AddItemData) {
	text := ""
	if a.inputs != nil {
		text, _ = a.inputs.InputValue(data.InputField)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		a.logger.Debug("add ignored, input is empty", "input", data.InputField)
		return
	}
	a.present(model.AddItem{Text: text})
}

func (a *Actions) DoneItem(data DoneItemData) {
	a.present(model.DoneItem{Index: data.Index})
}

func (a *Actions) EditItem(data EditItemData) {
	a.present(model.EditItem{Index: data.Index, Text: data.Event.Value})
}

func (a *Actions) RemoveDoneItems() {
	a.present(model.RemoveDoneItems{})
}

func (a *Actions) ToggleEditMode() {
	a.present(model.ToggleEditMode{})
}

func (a *Actions) present(req model.Request) {
	a.logger.Debug("present", "request", req.Kind())
	if err := a.model.Update(req); err != nil {
		a.logger.Warn("request rejected", "request", req.Kind(), "err", err)
		if a.onError != nil {
			a.onError(err)
		}
	}
}
