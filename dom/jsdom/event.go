package jsdom

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/gowade/tinyui/dom"
)

type (
	Event struct{ *js.Object }

	listener struct {
		target *js.Object
		event  string
		fn     *js.Object
	}
)

func (e Event) JS() *js.Object {
	return e.Object
}

func (e Event) Type() string {
	return e.Get("type").String()
}

func (e Event) Key() string {
	k := e.Get("key")
	if k == js.Undefined || k == nil {
		return ""
	}

	return k.String()
}

func (e Event) Target() dom.Element {
	t := e.Get("target")
	if t == nil || t == js.Undefined || t.Get("nodeType").Int() != 1 {
		return nil
	}

	return Element{Node{t}}
}

func (e Event) PreventDefault() {
	e.Call("preventDefault")
}

func (e Event) StopPropagation() {
	e.Call("stopPropagation")
}

func (l *listener) Release() {
	if l.fn == nil {
		return
	}

	l.target.Call("removeEventListener", l.event, l.fn)
	l.fn = nil
}
