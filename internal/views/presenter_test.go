package views

import (
	"testing"

	"github.com/sandeepkv93/samtodo/internal/model"
)

type countingRenderer struct {
	calls int
	last  Node
}

func (c *countingRenderer) Render(root Node) string {
	c.calls++
	c.last = root
	return "frame"
}

func TestPresenterRendersOncePerChange(t *testing.T) {
	renderer := &countingRenderer{}
	var displayed []string
	p := NewPresenter(renderer, DisplayFunc(func(markup string) { displayed = append(displayed, markup) }), Options{})
	m := model.New(p)

	_ = m.Update(model.Init{})
	_ = m.Update(model.AddItem{Text: "A"})
	_ = m.Update(model.DoneItem{Index: 3})

	if renderer.calls != 2 || len(displayed) != 2 {
		t.Fatalf("expected 2 renders, got renderer=%d display=%d", renderer.calls, len(displayed))
	}
	remove, _ := renderer.last.Find(IDRemoveDoneButton)
	if !remove.Disabled {
		t.Fatal("expected state derived from the latest model")
	}
}

func TestContainerKeepsLastMarkup(t *testing.T) {
	var c Container
	c.Display("one")
	c.Display("two")
	if c.Markup() != "two" || c.Renders() != 2 {
		t.Fatalf("unexpected container state: %q %d", c.Markup(), c.Renders())
	}
}
