// Package jsdrv holds the browser drivers: HTML5 history and the console.
package jsdrv

import (
	"errors"

	"github.com/gopherjs/gopherjs/js"

	"github.com/gowade/tinyui/router"
)

var _ router.History = History{}

// History is router.History on window.history.
type History struct {
	*js.Object
}

// NewHistory returns the HTML5 history of the current window.
func NewHistory() (History, error) {
	if js.Global == nil {
		return History{}, errors.New("jsdrv: not running in a browser")
	}

	hist := js.Global.Get("history")
	if hist == js.Undefined || hist == nil {
		return History{}, errors.New("jsdrv: no HTML5 history object available")
	}

	return History{hist}, nil
}

func (h History) ReplaceState(title, path string) {
	h.Object.Call("replaceState", nil, title, path)
}

func (h History) PushState(title, path string) {
	h.Object.Call("pushState", nil, title, path)
}

func (h History) location() *js.Object {
	location := h.Get("location")
	if location == nil || location == js.Undefined {
		location = js.Global.Get("document").Get("location")
	}

	return location
}

func (h History) CurrentPath() string {
	return h.location().Get("pathname").String()
}

func (h History) OnPopState(fn func()) {
	js.Global.Get("window").Call("addEventListener", "popstate", func(*js.Object) {
		fn()
	})
}
