// Package dom defines the small DOM surface the runtime builds on. It has a
// browser implementation (dom/jsdom) and an in-memory one (dom/htmldom) used
// for tests and server pre-rendering.
package dom

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTag  = errors.New("invalid tag name")
	ErrInvalidAttr = errors.New("invalid attribute name")
	ErrNotElement  = errors.New("not an element node")
	ErrForeignNode = errors.New("node belongs to another DOM implementation")
	ErrHierarchy   = errors.New("node cannot be inserted here")
)

type NodeType int

const (
	NopNode NodeType = iota
	ElementNode
	TextNode
)

type (
	Document interface {
		CreateElement(tag string) (Element, error)
		CreateTextNode(data string) Node
		ElementByID(id string) (Element, bool)
		Body() Element
	}

	Node interface {
		Type() NodeType
		// Data is the lower-cased tag name for elements and the text for text nodes.
		Data() string
	}

	Element interface {
		Node
		TagName() string
		ID() string
		Attr(name string) (string, bool)
		SetAttr(name, value string) error
		RemoveAttr(name string)
		ClassName() string
		SetClassName(class string)
		Style(prop string) string
		SetStyle(prop, value string)

		// Text returns the text content of the element and its descendants.
		Text() string
		// SetText replaces all children with a single text node, like textContent.
		SetText(text string)

		Children() []Node
		AppendChild(child Node) error
		// Clear removes every child node.
		Clear()
		// Remove detaches the element from its parent.
		Remove()

		Value() string
		SetValue(value string)
		Checked() bool
		SetChecked(checked bool)

		AddEventListener(event string, handler EventHandler) Listener
	}

	// Listener is a registered event handler. Release unregisters it, after
	// which the handler is never called again. Release is idempotent.
	Listener interface {
		Release()
	}

	Event interface {
		Type() string
		// Key is the KeyboardEvent key, empty for other events.
		Key() string
		Target() Element
		PreventDefault()
		StopPropagation()
	}

	EventHandler func(Event)
)

// DebugInfo returns tag#id for the element, for error messages.
func DebugInfo(el Element) string {
	if el == nil {
		return "<nil>"
	}

	str := el.TagName()
	if id := el.ID(); id != "" {
		str += "#" + id
	}

	return str
}

// ElementError wraps err with DebugInfo of the element.
func ElementError(el Element, err error) error {
	return fmt.Errorf("element {%v}: %w", DebugInfo(el), err)
}
