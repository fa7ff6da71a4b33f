// Package components holds the UI of the application as element trees.
// Components never touch the state; they read what they are given and
// report user intent through the Env.
package components

import (
	"github.com/gowade/tinyui/content"
	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/elem"
	"github.com/gowade/tinyui/router"
	"github.com/gowade/tinyui/state"
)

// Identifiers of the mount points the render pass looks up.
const (
	AppID           = "app"
	RouteViewID     = "route-view"
	CountID         = "count"
	ContentID       = "content"
	TodoContainerID = "todo-container"
	TodoListID      = "todo-list"
	TodoInputID     = "todo-input"
)

type (
	Dispatcher interface {
		Dispatch(state.Action) error
	}

	Navigator interface {
		Go(router.Route)
		URL(router.Route) string
	}

	ContentSource interface {
		Load() content.Content
	}

	// Env is what components need from the running application.
	Env struct {
		Doc        dom.Document
		Dispatcher Dispatcher
		Navigator  Navigator
		Content    ContentSource
	}
)

// Handler returns an event handler dispatching a.
func (env Env) Handler(a state.Action) dom.EventHandler {
	return func(dom.Event) {
		env.Dispatcher.Dispatch(a)
	}
}

// Link is an anchor to route that navigates without reloading the page.
func Link(env Env, route router.Route, label string) elem.Tree {
	return elem.E("a",
		elem.Attr("href", env.Navigator.URL(route)),
		elem.Text(label),
		elem.On("click", func(evt dom.Event) {
			evt.PreventDefault()
			env.Navigator.Go(route)
		}),
	)
}
