package components

import (
	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/elem"
	"github.com/gowade/tinyui/state"
)

// AddTodo adds the text of the todo input as a new todo and clears the
// input. Empty input is ignored.
func AddTodo(env Env) {
	input, ok := env.Doc.ElementByID(TodoInputID)
	if !ok {
		return
	}

	text := input.Value()
	if text == "" {
		return
	}

	input.SetValue("")
	env.Dispatcher.Dispatch(state.TodoAdd{Text: text})
}

func TodoInput(env Env) elem.Tree {
	return elem.E("div",
		elem.Attr("class", "input-container"),
		elem.Child(elem.E("input",
			elem.Attr("id", TodoInputID),
			elem.Attr("class", "input-field"),
			elem.Attr("type", "text"),
			elem.Attr("placeholder", "Add new todo"),
			elem.On("keydown", func(evt dom.Event) {
				if evt.Key() == "Enter" {
					AddTodo(env)
				}
			}),
		)),
		elem.Child(elem.E("button",
			elem.Text("Add Todo"),
			elem.Attr("class", "btn"),
			elem.On("click", func(dom.Event) { AddTodo(env) }),
		)),
	)
}

func TodoItem(env Env, index int, todo state.Todo) elem.Tree {
	class := "todo-item"
	if todo.Completed {
		class += " completed"
	}

	return elem.E("div",
		elem.Attr("class", class),
		elem.Child(elem.E("input",
			elem.Attr("class", "todo-checkbox"),
			elem.Attr("type", "checkbox"),
			elem.Attr("checked", todo.Completed),
			elem.On("click", env.Handler(state.TodoToggle{Index: index})),
		)),
		elem.Child(elem.E("span",
			elem.Attr("class", "todo-text"),
			elem.Text(todo.Text),
		)),
		elem.Child(elem.E("button",
			elem.Attr("class", "todo-delete"),
			elem.Text("Delete"),
			elem.On("click", env.Handler(state.TodoRemove{Index: index})),
		)),
	)
}

// TodoList is the input box followed by one row per todo.
func TodoList(env Env, todos []state.Todo) elem.Tree {
	return elem.E("div",
		elem.Attr("id", TodoListID),
		elem.Child(TodoInput(env)),
		elem.Child(elem.E("div",
			elem.Attr("class", "todos"),
			elem.Each(todos, func(i int, todo state.Todo) elem.Tree {
				return TodoItem(env, i, todo)
			}),
		)),
	)
}
