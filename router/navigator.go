package router

import "strings"

// Navigator drives navigation: it updates the history then hands the new
// route to onNavigate. The same callback runs on pop state.
type Navigator struct {
	history    History
	table      *Table
	onNavigate func(Route)
}

func NewNavigator(history History, table *Table, onNavigate func(Route)) *Navigator {
	if table == nil {
		table = defaultTable
	}

	return &Navigator{
		history:    history,
		table:      table,
		onNavigate: onNavigate,
	}
}

// Current is the route of the current history entry.
func (n *Navigator) Current() Route {
	return n.table.Match(n.history.CurrentPath())
}

// URL is the path a link to r points to.
func (n *Navigator) URL(r Route) string {
	return n.table.Path(r)
}

// Go pushes the path of r and navigates to it.
func (n *Navigator) Go(r Route) {
	n.history.PushState("", n.table.Path(r))
	n.onNavigate(r)
}

// Listen navigates to the current route whenever the history pops. The
// current entry is first rewritten to the canonical path of its route.
func (n *Navigator) Listen() {
	n.canonicalize()
	n.history.OnPopState(func() {
		n.onNavigate(n.Current())
	})
}

func (n *Navigator) canonicalize() {
	current := n.history.CurrentPath()
	r := n.table.Match(current)
	if r == NotFound {
		return
	}

	p, suffix := current, ""
	if i := strings.IndexAny(current, "?#"); i >= 0 {
		p, suffix = current[:i], current[i:]
	}

	if canonical := n.table.Path(r); p != canonical {
		n.history.ReplaceState("", canonical+suffix)
	}
}
