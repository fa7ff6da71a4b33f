package htmldom

import (
	"strings"

	"github.com/gowade/tinyui/dom"
)

type (
	// Event is an in-memory DOM event.
	Event struct {
		typ            string
		key            string
		target         dom.Element
		propaStopped   bool
		defaultStopped bool
	}

	declaration struct {
		prop, value string
	}
)

// NewEvent creates a new event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{typ: eventType}
}

// NewKeyEvent creates a new keyboard event carrying key.
func NewKeyEvent(eventType, key string) *Event {
	return &Event{typ: eventType, key: key}
}

func (e *Event) Type() string { return e.typ }

func (e *Event) Key() string { return e.key }

func (e *Event) Target() dom.Element { return e.target }

func (e *Event) PreventDefault() { e.defaultStopped = true }

func (e *Event) StopPropagation() { e.propaStopped = true }

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultStopped }

// Dispatch delivers event to target and then to each ancestor, until a
// handler stops propagation. Listeners released while the event is in
// flight are skipped.
func (d *Document) Dispatch(target dom.Element, event *Event) {
	el, ok := target.(Element)
	if !ok {
		return
	}

	event.target = target
	for n := el.node; n != nil; n = n.Parent {
		ls := d.listeners[n]
		for _, l := range ls {
			if l.released || l.event != event.typ {
				continue
			}

			l.handler(event)
		}

		if event.propaStopped {
			return
		}
	}
}

// Click toggles a checkbox target the way a browser does, then dispatches a
// click event.
func (d *Document) Click(target dom.Element) *Event {
	if target.TagName() == "input" {
		if typ, _ := target.Attr("type"); typ == "checkbox" {
			target.SetChecked(!target.Checked())
		}
	}

	ev := NewEvent("click")
	d.Dispatch(target, ev)
	return ev
}

// KeyDown dispatches a keydown event for key.
func (d *Document) KeyDown(target dom.Element, key string) *Event {
	ev := NewKeyEvent("keydown", key)
	d.Dispatch(target, ev)
	return ev
}

func parseStyle(style string) (decls []declaration) {
	for _, part := range strings.Split(style, ";") {
		pos := strings.Index(part, ":")
		if pos < 0 {
			continue
		}

		prop := strings.TrimSpace(part[:pos])
		if prop == "" {
			continue
		}

		decls = append(decls, declaration{prop, strings.TrimSpace(part[pos+1:])})
	}

	return
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value+";")
	}

	return strings.Join(parts, " ")
}
