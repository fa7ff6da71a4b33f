package state

import (
	"log"
	"strings"

	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/logutil"
)

type (
	Renderer interface {
		Render() error
	}

	RenderFunc func() error
)

func (f RenderFunc) Render() error { return f() }

// Dispatcher runs one transaction per action: read the state, reduce,
// commit, then render. Dispatching from inside a render runs the nested
// transaction to completion before the outer render resumes.
type Dispatcher struct {
	store    *Store
	reducer  Reducer
	renderer Renderer
	logger   *log.Logger
	depth    int
}

func NewDispatcher(store *Store, reducer Reducer, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		store:   store,
		reducer: reducer,
		logger:  logutil.OrDiscard(logger),
	}
}

// SetRenderer sets what runs after each commit.
func (d *Dispatcher) SetRenderer(r Renderer) {
	d.renderer = r
}

func (d *Dispatcher) Store() *Store {
	return d.store
}

// Dispatch applies a. A render error is logged and returned, the committed
// state is kept either way.
func (d *Dispatcher) Dispatch(a Action) error {
	d.depth++
	defer func() { d.depth-- }()

	d.logger.Printf("%sdispatch %v", strings.Repeat("  ", d.depth-1), a)

	next := d.reducer.Reduce(d.store.Snapshot(), a)
	d.store.commit(next)

	if d.renderer == nil {
		return nil
	}

	if err := d.renderer.Render(); err != nil {
		d.logger.Printf("render after %v: %v", a, err)
		return err
	}

	return nil
}

// Handler returns an event handler dispatching a.
func (d *Dispatcher) Handler(a Action) dom.EventHandler {
	return func(dom.Event) {
		d.Dispatch(a)
	}
}
