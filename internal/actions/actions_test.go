package actions

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/samtodo/internal/commands"
	"github.com/sandeepkv93/samtodo/internal/model"
)

type harness struct {
	model   *model.Model
	fields  *FieldStore
	actions *Actions
	renders int
	errs    []error
}

func newHarness() *harness {
	h := &harness{fields: NewFieldStore()}
	h.model = model.New(model.ListenerFunc(func(*model.Model) { h.renders++ }))
	h.actions = New(h.model, h.fields, Config{OnError: func(err error) { h.errs = append(h.errs, err) }})
	return h
}

func (h *harness) add(text string) {
	h.fields.Set("inputText", text)
	h.actions.AddItem(AddItemData{InputField: "inputText"})
}

func TestInitAndGoSendsInit(t *testing.T) {
	h := newHarness()
	h.actions.InitAndGo(InitData{})
	if h.renders != 1 {
		t.Fatalf("expected one render, got %d", h.renders)
	}
	if h.model.Len() != 0 {
		t.Fatalf("expected empty list, got %d", h.model.Len())
	}
}

func TestAddItemReadsInputAndTrims(t *testing.T) {
	h := newHarness()
	h.add("  Buy milk ")
	items := h.model.Snapshot().Items
	if len(items) != 1 || items[0] != (model.Task{Text: "Buy milk"}) {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestAddItemEmptyInputIsSilentNoop(t *testing.T) {
	h := newHarness()
	h.actions.InitAndGo(InitData{})
	before := h.renders

	h.add("")
	h.add("   ")
	h.actions.AddItem(AddItemData{InputField: "missing"})

	if h.model.Len() != 0 {
		t.Fatalf("expected no items, got %d", h.model.Len())
	}
	if h.renders != before {
		t.Fatalf("empty add must not render, renders %d -> %d", before, h.renders)
	}
	if len(h.errs) != 0 {
		t.Fatalf("empty add must not report errors, got %v", h.errs)
	}
}

func TestAddItemWithoutInputReader(t *testing.T) {
	m := model.New(nil)
	a := New(m, nil, Config{})
	a.AddItem(AddItemData{InputField: "inputText"})
	if m.Len() != 0 {
		t.Fatalf("expected no items without an input reader, got %d", m.Len())
	}
}

func TestScenarioDoneThenRemove(t *testing.T) {
	h := newHarness()
	h.actions.InitAndGo(InitData{})
	h.add("A")
	h.add("B")
	h.actions.DoneItem(DoneItemData{Index: 0})
	h.actions.RemoveDoneItems()

	items := h.model.Snapshot().Items
	if len(items) != 1 || items[0] != (model.Task{Text: "B"}) {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestScenarioEditInEditMode(t *testing.T) {
	h := newHarness()
	h.add("A")
	h.actions.ToggleEditMode()
	h.actions.EditItem(EditItemData{Event: ChangeEvent{Value: "A2"}, Index: 0})

	snap := h.model.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0] != (model.Task{Text: "A2"}) {
		t.Fatalf("unexpected items: %+v", snap.Items)
	}
	if !snap.IsEditMode {
		t.Fatal("expected to remain in edit mode")
	}
}

func TestRejectedRequestGoesToErrorHook(t *testing.T) {
	h := newHarness()
	h.add("A")
	before := h.renders

	h.actions.DoneItem(DoneItemData{Index: 4})
	h.actions.EditItem(EditItemData{Event: ChangeEvent{Value: "x"}, Index: -2})

	if len(h.errs) != 2 {
		t.Fatalf("expected 2 reported errors, got %v", h.errs)
	}
	for _, err := range h.errs {
		if !errors.Is(err, model.ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	}
	if h.renders != before {
		t.Fatalf("rejected requests must not render, renders %d -> %d", before, h.renders)
	}

	// the next independent event still goes through
	h.actions.DoneItem(DoneItemData{Index: 0})
	if !h.model.Snapshot().Items[0].Done {
		t.Fatal("expected item 0 done after a valid request")
	}
}

func TestHandlersDriveActions(t *testing.T) {
	h := newHarness()
	handlers := Handlers(h.actions, h.fields, "inputText")

	run := func(line string) commands.Result {
		t.Helper()
		cmd, err := commands.Parse(line)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		res, err := commands.Execute(cmd, handlers)
		if err != nil {
			t.Fatalf("execute %q: %v", line, err)
		}
		return res
	}

	if res := run("add Buy milk"); res.Message != "item added" {
		t.Fatalf("unexpected add result: %+v", res)
	}
	if _, ok := h.fields.InputValue("inputText"); ok {
		t.Fatal("expected input cleared after add")
	}
	run("add Walk dog")
	run("done 0")
	run("mode")
	run("edit 1 Walk the dog")
	run("clear")

	snap := h.model.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0] != (model.Task{Text: "Walk the dog"}) {
		t.Fatalf("unexpected items: %+v", snap.Items)
	}
	if !snap.IsEditMode {
		t.Fatal("expected edit mode")
	}
}

func TestHandlersAddFromEnvelopeFields(t *testing.T) {
	h := newHarness()
	handlers := Handlers(h.actions, h.fields, "inputText")

	cmd, err := commands.Decode([]byte(`{"action":"addItem","inputField":"otherInput","fields":{"otherInput":"From page"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := commands.Execute(cmd, handlers); err != nil {
		t.Fatalf("execute: %v", err)
	}
	items := h.model.Snapshot().Items
	if len(items) != 1 || items[0].Text != "From page" {
		t.Fatalf("unexpected items: %+v", items)
	}

	cmd, _ = commands.Decode([]byte(`{"action":"addItem","inputField":"otherInput","fields":{"otherInput":""}}`))
	res, err := commands.Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("execute empty: %v", err)
	}
	if res.Message != "nothing to add" || h.model.Len() != 1 {
		t.Fatalf("expected empty add to be ignored, res=%+v len=%d", res, h.model.Len())
	}
}

func TestFieldStore(t *testing.T) {
	s := NewFieldStore()
	if _, ok := s.InputValue("a"); ok {
		t.Fatal("expected missing field")
	}
	s.Merge(map[string]string{"a": "1", "b": "2"})
	s.Set("a", "3")
	if v, _ := s.InputValue("a"); v != "3" {
		t.Fatalf("unexpected a: %q", v)
	}
	s.Clear("b")
	if _, ok := s.InputValue("b"); ok {
		t.Fatal("expected b cleared")
	}
}
