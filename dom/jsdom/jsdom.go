// Package jsdom implements dom on the browser's document through gopherjs.
package jsdom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gopherjs/gopherjs/js"

	"github.com/gowade/tinyui/dom"
)

type (
	Document struct {
		*js.Object
	}

	Node struct {
		*js.Object
	}

	Element struct {
		Node
	}
)

// NewDocument wraps the global document. It fails outside a browser.
func NewDocument() (Document, error) {
	if js.Global == nil || js.Global.Get("document") == js.Undefined {
		return Document{}, errors.New("jsdom: no browser document available")
	}

	return Document{js.Global.Get("document")}, nil
}

func wrap(obj *js.Object) dom.Node {
	if obj.Get("nodeType").Int() == 1 {
		return Element{Node{obj}}
	}

	return Node{obj}
}

// call runs fn and turns a JavaScript exception into an error wrapping sentinel.
func call(sentinel error, what string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(*js.Error); ok {
				err = fmt.Errorf("%w: %q: %v", sentinel, what, jsErr.Error())
				return
			}

			panic(r)
		}
	}()

	fn()
	return nil
}

func (d Document) CreateElement(tag string) (dom.Element, error) {
	var obj *js.Object
	err := call(dom.ErrInvalidTag, tag, func() {
		obj = d.Call("createElement", tag)
	})
	if err != nil {
		return nil, err
	}

	return Element{Node{obj}}, nil
}

func (d Document) CreateTextNode(data string) dom.Node {
	return Node{d.Call("createTextNode", data)}
}

func (d Document) ElementByID(id string) (dom.Element, bool) {
	obj := d.Call("getElementById", id)
	if obj == nil || obj == js.Undefined {
		return nil, false
	}

	return Element{Node{obj}}, true
}

func (d Document) Body() dom.Element {
	return Element{Node{d.Get("body")}}
}

func (z Node) JS() *js.Object {
	return z.Object
}

func (z Node) Type() dom.NodeType {
	switch z.Get("nodeType").Int() {
	case 1:
		return dom.ElementNode
	case 3:
		return dom.TextNode
	default:
		return dom.NopNode
	}
}

func (z Node) Data() string {
	switch z.Type() {
	case dom.ElementNode:
		return strings.ToLower(z.Get("tagName").String())
	default:
		return z.Get("nodeValue").String()
	}
}

func (z Element) TagName() string {
	return strings.ToLower(z.Get("tagName").String())
}

func (z Element) ID() string {
	return z.Get("id").String()
}

func (z Element) Attr(name string) (string, bool) {
	if !z.Call("hasAttribute", name).Bool() {
		return "", false
	}

	return z.Call("getAttribute", name).String(), true
}

func (z Element) SetAttr(name, value string) error {
	return call(dom.ErrInvalidAttr, name, func() {
		z.Call("setAttribute", name, value)
	})
}

func (z Element) RemoveAttr(name string) {
	z.Call("removeAttribute", name)
}

func (z Element) ClassName() string {
	return z.Get("className").String()
}

func (z Element) SetClassName(class string) {
	z.Set("className", class)
}

func (z Element) Style(prop string) string {
	return z.Get("style").Call("getPropertyValue", prop).String()
}

func (z Element) SetStyle(prop, value string) {
	z.Get("style").Call("setProperty", prop, value)
}

func (z Element) Text() string {
	return z.Get("textContent").String()
}

func (z Element) SetText(text string) {
	z.Set("textContent", text)
}

func (z Element) Children() []dom.Node {
	cs := z.Get("childNodes")
	n := cs.Length()
	l := make([]dom.Node, 0, n)
	for i := 0; i < n; i++ {
		l = append(l, wrap(cs.Index(i)))
	}

	return l
}

func (z Element) AppendChild(child dom.Node) error {
	var obj *js.Object
	switch c := child.(type) {
	case Element:
		obj = c.Object
	case Node:
		obj = c.Object
	default:
		return dom.ElementError(z, dom.ErrForeignNode)
	}

	err := call(dom.ErrHierarchy, dom.DebugInfo(z), func() {
		z.Call("appendChild", obj)
	})
	if err != nil {
		return dom.ElementError(z, err)
	}

	return nil
}

func (z Element) Clear() {
	for {
		c := z.Get("lastChild")
		if c == nil || c == js.Undefined {
			return
		}

		z.Call("removeChild", c)
	}
}

func (z Element) Remove() {
	if p := z.Get("parentNode"); p != nil && p != js.Undefined {
		p.Call("removeChild", z.Object)
	}
}

func (z Element) Value() string {
	return z.Get("value").String()
}

func (z Element) SetValue(value string) {
	z.Set("value", value)
}

func (z Element) Checked() bool {
	return z.Get("checked").Bool()
}

func (z Element) SetChecked(checked bool) {
	z.Set("checked", checked)
}

func (z Element) AddEventListener(event string, handler dom.EventHandler) dom.Listener {
	l := &listener{target: z.Object, event: event}
	l.fn = js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		handler(Event{args[0]})
		return nil
	})

	z.Call("addEventListener", event, l.fn)
	return l
}
