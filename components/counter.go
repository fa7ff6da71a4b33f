package components

import (
	"github.com/gowade/tinyui/elem"
	"github.com/gowade/tinyui/state"
)

func CounterActions(env Env) elem.Tree {
	return elem.E("div",
		elem.Attr("class", "counter-actions"),
		elem.Child(button(env, "btn btn-secondary", "+", state.Counter{Op: state.Increment})),
		elem.Child(button(env, "btn btn-secondary", "-", state.Counter{Op: state.Decrement})),
		elem.Child(button(env, "btn btn-secondary", "Reset", state.Counter{Op: state.Reset})),
	)
}

// Count is the counter display.
func Count(counter int32) elem.Tree {
	return elem.E("span",
		elem.Attr("id", CountID),
		elem.Attr("class", "counter"),
		elem.Dyn(counter),
	)
}

func ThemeToggle(env Env) elem.Tree {
	return button(env, "btn btn-primary", "Toggle Theme", state.ToggleTheme{})
}

func VisibilityToggle(env Env) elem.Tree {
	return button(env, "btn btn-primary", "Toggle Visibility", state.ToggleVisibility{})
}

func button(env Env, class, label string, a state.Action) elem.Tree {
	return elem.E("button",
		elem.Attr("class", class),
		elem.Text(label),
		elem.On("click", env.Handler(a)),
	)
}
