package components

import "github.com/gowade/tinyui/elem"

type Position int

const (
	Top Position = iota
	Bottom
	Left
	Right
)

func (p Position) Class() string {
	switch p {
	case Bottom:
		return "tooltip-bottom"
	case Left:
		return "tooltip-left"
	case Right:
		return "tooltip-right"
	}

	return "tooltip-top"
}

// Tooltip wraps child with a hint shown at pos.
func Tooltip(text string, pos Position, child elem.Tree) elem.Tree {
	return elem.E("div",
		elem.Attr("class", "tooltip-container"),
		elem.Child(child),
		elem.Child(elem.E("span",
			elem.Attr("class", "tooltip "+pos.Class()),
			elem.Text(text),
		)),
	)
}
