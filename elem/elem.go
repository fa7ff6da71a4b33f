// Package elem turns declarative element descriptions into DOM nodes.
//
// A Tree is a tag plus an ordered list of items. Items are applied strictly
// left to right: attributes and text are last-wins, event bindings
// accumulate and children are appended in order.
//
//	elem.E("div", elem.Attr("id", "count"), elem.Dyn(n),
//		elem.Child(elem.E("button", elem.Text("+"), elem.On("click", inc))))
package elem

import (
	"errors"
	"fmt"

	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/utils"
)

var (
	// ErrBadChild is returned when Embed is given a value that is neither a
	// node nor something with a text form.
	ErrBadChild = errors.New("value cannot be used as a child")

	ErrNilHandler = errors.New("nil event handler")
)

type (
	Tree struct {
		Tag   string
		Items []Item
	}

	// Item is one directive of a Tree. The set of items is closed.
	Item interface {
		apply(b *Builder, el dom.Element) error
	}

	attrItem struct {
		name  string
		value interface{}
	}

	textItem string

	dynItem struct {
		value interface{}
	}

	onItem struct {
		event   string
		handler dom.EventHandler
	}

	childItem struct {
		tree Tree
	}

	embedItem struct {
		value interface{}
	}

	eachItem[T any] struct {
		seq []T
		fn  func(i int, v T) Tree
	}
)

// E describes an element of the given tag.
func E(tag string, items ...Item) Tree {
	return Tree{Tag: tag, Items: items}
}

// Attr sets attribute name. A bool value follows boolean attribute rules,
// true sets it empty and false removes it.
func Attr(name string, value interface{}) Item {
	return attrItem{name, value}
}

// Text replaces the text content of the element.
func Text(s string) Item {
	return textItem(s)
}

// Dyn is Text with the value formatted at build time.
func Dyn(v interface{}) Item {
	return dynItem{v}
}

func On(event string, h dom.EventHandler) Item {
	return onItem{event, h}
}

func Child(t Tree) Item {
	return childItem{t}
}

// Embed appends an already built node, or a text node for strings,
// Stringers and numbers.
func Embed(v interface{}) Item {
	return embedItem{v}
}

// Each appends one child per element of seq.
func Each[T any](seq []T, fn func(i int, v T) Tree) Item {
	return eachItem[T]{seq, fn}
}

func (a attrItem) apply(b *Builder, el dom.Element) error {
	if v, ok := a.value.(bool); ok {
		if !v {
			el.RemoveAttr(a.name)
			return nil
		}

		return el.SetAttr(a.name, "")
	}

	return el.SetAttr(a.name, utils.ToString(a.value))
}

func (t textItem) apply(b *Builder, el dom.Element) error {
	el.SetText(string(t))
	return nil
}

func (d dynItem) apply(b *Builder, el dom.Element) error {
	el.SetText(utils.ToString(d.value))
	return nil
}

func (o onItem) apply(b *Builder, el dom.Element) error {
	if o.handler == nil {
		return fmt.Errorf("%w for %q", ErrNilHandler, o.event)
	}

	b.Scope.Add(el.AddEventListener(o.event, o.handler))
	return nil
}

func (c childItem) apply(b *Builder, el dom.Element) error {
	child, err := b.build(c.tree)
	if err != nil {
		return err
	}

	return el.AppendChild(child)
}

func (e embedItem) apply(b *Builder, el dom.Element) error {
	switch v := e.value.(type) {
	case dom.Node:
		return el.AppendChild(v)
	case bool:
	default:
		if utils.IsScalar(v) {
			return el.AppendChild(b.Doc.CreateTextNode(utils.ToString(v)))
		}
	}

	return fmt.Errorf("%w: %T", ErrBadChild, e.value)
}

func (e eachItem[T]) apply(b *Builder, el dom.Element) error {
	for i, v := range e.seq {
		child, err := b.build(e.fn(i, v))
		if err != nil {
			return err
		}

		if err := el.AppendChild(child); err != nil {
			return err
		}
	}

	return nil
}

// Builder builds Trees into a document. Listeners registered by a build
// are recorded in Scope.
type Builder struct {
	Doc   dom.Document
	Scope *Scope
}

// NewBuilder returns a builder for doc. A nil scope gets a fresh one.
func NewBuilder(doc dom.Document, scope *Scope) *Builder {
	if scope == nil {
		scope = NewScope()
	}

	return &Builder{Doc: doc, Scope: scope}
}

// Build creates the element described by t. On failure nothing built so
// far is returned and every listener registered during the call is
// released.
func (b *Builder) Build(t Tree) (dom.Element, error) {
	if b.Scope == nil {
		b.Scope = NewScope()
	}

	mark := b.Scope.Len()
	el, err := b.build(t)
	if err != nil {
		b.Scope.rollback(mark)
		return nil, err
	}

	return el, nil
}

func (b *Builder) build(t Tree) (dom.Element, error) {
	el, err := b.Doc.CreateElement(t.Tag)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", t.Tag, err)
	}

	for _, item := range t.Items {
		if item == nil {
			continue
		}

		if err := item.apply(b, el); err != nil {
			return nil, fmt.Errorf("build %s: %w", t.Tag, err)
		}
	}

	return el, nil
}

// Build is a shorthand for building a single element into doc.
func Build(doc dom.Document, scope *Scope, tag string, items ...Item) (dom.Element, error) {
	return NewBuilder(doc, scope).Build(E(tag, items...))
}
