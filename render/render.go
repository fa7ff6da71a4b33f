// Package render re-derives the page from the state after every dispatch.
//
// The page is split into regions, each rebuilt from its slice of the state
// and located by a fixed element id. A region whose anchor is missing is
// skipped. A region that fails to build keeps its previous content and
// listeners; the error is returned once every region had its turn.
package render

import (
	"errors"
	"fmt"
	"log"

	"github.com/gowade/tinyui/components"
	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/elem"
	"github.com/gowade/tinyui/logutil"
	"github.com/gowade/tinyui/perf"
	"github.com/gowade/tinyui/router"
	"github.com/gowade/tinyui/state"
	"github.com/gowade/tinyui/theme"
	"github.com/gowade/tinyui/utils"
)

const (
	AppID           = components.AppID
	RouteViewID     = components.RouteViewID
	CountID         = components.CountID
	ContentID       = components.ContentID
	TodoContainerID = components.TodoContainerID
	TodoListID      = components.TodoListID
	TodoInputID     = components.TodoInputID
)

type Options struct {
	Doc   dom.Document
	Store *state.Store
	Env   components.Env
	// Timer and Logger may be nil.
	Timer  *perf.Timer
	Logger *log.Logger
}

type Pipeline struct {
	doc      dom.Document
	store    *state.Store
	env      components.Env
	registry *elem.Registry
	timer    *perf.Timer
	logger   *log.Logger

	route      router.Route
	routeBuilt bool
	// pass counts render passes. A pass that sees it move was overtaken by
	// a nested dispatch, which already rendered the newer state.
	pass int
}

func New(opts Options) *Pipeline {
	logger := logutil.OrDiscard(opts.Logger)
	timer := opts.Timer
	if timer == nil {
		timer = perf.New(logutil.Discard)
	}

	return &Pipeline{
		doc:      opts.Doc,
		store:    opts.Store,
		env:      opts.Env,
		registry: elem.NewRegistry(),
		timer:    timer,
		logger:   logger,
	}
}

// Registry holds the listener scope of every built region.
func (p *Pipeline) Registry() *elem.Registry {
	return p.registry
}

func (p *Pipeline) Timer() *perf.Timer {
	return p.timer
}

// Invalidate makes the next Render rebuild the route view even if the
// route did not change.
func (p *Pipeline) Invalidate() {
	p.routeBuilt = false
}

// Close releases the listeners of every region.
func (p *Pipeline) Close() {
	p.registry.ReleaseAll()
	p.routeBuilt = false
}

// Render updates every region from the current state.
func (p *Pipeline) Render() error {
	var err error
	p.timer.Measure("render", func() {
		err = p.render()
	})

	return err
}

type region struct {
	name   string
	anchor string
	update func(el dom.Element, s state.AppState) error
}

func (p *Pipeline) regions() []region {
	return []region{
		{"route", RouteViewID, p.renderRoute},
		{"counter", CountID, p.renderCounter},
		{"theme", AppID, p.renderTheme},
		{"visibility", ContentID, p.renderVisibility},
		{"todo", TodoContainerID, p.renderTodos},
	}
}

func (p *Pipeline) render() error {
	p.pass++
	pass := p.pass
	s := p.store.Snapshot()

	var errs []error
	for _, r := range p.regions() {
		el, ok := p.doc.ElementByID(r.anchor)
		if !ok {
			continue
		}

		if err := r.update(el, s); err != nil {
			err = fmt.Errorf("%s region: %w", r.name, err)
			p.logger.Printf("render: %v", err)
			errs = append(errs, err)
		}

		if p.pass != pass {
			break
		}
	}

	return errors.Join(errs...)
}

// replace swaps the children of el for nodes and hands their listeners to
// the registry under key. The nodes are staged in a detached element first,
// so a failed append leaves el as it was.
func (p *Pipeline) replace(key string, el dom.Element, scope *elem.Scope, nodes ...dom.Element) error {
	staging, err := p.doc.CreateElement("div")
	if err != nil {
		scope.Release()
		return err
	}

	for _, n := range nodes {
		if err := staging.AppendChild(n); err != nil {
			scope.Release()
			return err
		}
	}

	el.Clear()
	for _, n := range nodes {
		if err := el.AppendChild(n); err != nil {
			scope.Release()
			return err
		}
	}

	p.registry.Replace(key, scope)
	return nil
}

func (p *Pipeline) renderRoute(el dom.Element, s state.AppState) error {
	if p.routeBuilt && p.route == s.Route {
		return nil
	}

	pass := p.pass
	scope := elem.NewScope()
	b := elem.NewBuilder(p.doc, scope)

	nav, err := components.Nav(p.env, s.Route)
	if err != nil {
		return err
	}

	navEl, err := b.Build(nav)
	if err != nil {
		return err
	}

	var page dom.Element
	p.timer.Measure("route_render", func() {
		page, err = b.Build(components.RouteContent(p.env, s))
	})
	if err != nil {
		scope.Release()
		return err
	}

	// Loading the page content dispatched, and the nested pass already
	// rebuilt the view.
	if p.pass != pass {
		scope.Release()
		return nil
	}

	// The todo container lives inside the old page.
	p.registry.Release(TodoContainerID)
	if err := p.replace(RouteViewID, el, scope, navEl, page); err != nil {
		return err
	}

	p.route, p.routeBuilt = s.Route, true
	return nil
}

func (p *Pipeline) renderCounter(el dom.Element, s state.AppState) error {
	el.SetText(utils.ToString(s.Counter))
	return nil
}

func (p *Pipeline) renderTheme(el dom.Element, s state.AppState) error {
	return theme.NewProvider(s.Theme).Apply(el)
}

func (p *Pipeline) renderVisibility(el dom.Element, s state.AppState) error {
	el.SetStyle("display", s.Visibility.Display())
	return nil
}

func (p *Pipeline) renderTodos(el dom.Element, s state.AppState) error {
	scope := elem.NewScope()
	list, err := elem.NewBuilder(p.doc, scope).Build(components.TodoList(p.env, s.Todos))
	if err != nil {
		return err
	}

	return p.replace(TodoContainerID, el, scope, list)
}
