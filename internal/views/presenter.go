package views

import (
	"sync"

	"github.com/sandeepkv93/samtodo/internal/model"
	"github.com/sandeepkv93/samtodo/internal/state"
)

type Renderer interface {
	Render(root Node) string
}

// Display writes markup to the one container the app owns.
type Display interface {
	Display(markup string)
}

type DisplayFunc func(markup string)

func (f DisplayFunc) Display(markup string) { f(markup) }

// Presenter is the model listener that derives state, builds the view and
// hands the rendered markup to the display. It renders once per notification.
type Presenter struct {
	renderer Renderer
	display  Display
	opts     Options
}

func NewPresenter(renderer Renderer, display Display, opts Options) *Presenter {
	return &Presenter{renderer: renderer, display: display, opts: opts}
}

func (p *Presenter) OnModelChanged(m *model.Model) {
	p.display.Display(p.Markup(m.Snapshot()))
}

func (p *Presenter) Markup(snap model.Snapshot) string {
	return p.renderer.Render(Build(snap, state.Compute(snap), p.opts))
}

// Container keeps the last markup displayed so it can be served on demand.
type Container struct {
	mu      sync.RWMutex
	markup  string
	renders uint64
}

func (c *Container) Display(markup string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markup = markup
	c.renders++
}

func (c *Container) Markup() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.markup
}

func (c *Container) Renders() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renders
}
