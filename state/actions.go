package state

import (
	"fmt"

	"github.com/gowade/tinyui/router"
)

type Op int

const (
	Increment Op = iota
	Decrement
	Reset
)

func (o Op) String() string {
	switch o {
	case Increment:
		return "Increment"
	case Decrement:
		return "Decrement"
	case Reset:
		return "Reset"
	}

	return fmt.Sprintf("Op(%d)", int(o))
}

// Action is a request to change the state. The set of actions is closed.
type Action interface {
	fmt.Stringer
	action()
}

type (
	Counter struct{ Op Op }

	TodoAdd struct{ Text string }

	TodoToggle struct{ Index int }

	TodoRemove struct{ Index int }

	ToggleTheme struct{}

	ToggleVisibility struct{}

	Navigate struct{ Route router.Route }
)

func (Counter) action()          {}
func (TodoAdd) action()          {}
func (TodoToggle) action()       {}
func (TodoRemove) action()       {}
func (ToggleTheme) action()      {}
func (ToggleVisibility) action() {}
func (Navigate) action()         {}

func (a Counter) String() string    { return "Counter." + a.Op.String() }
func (a TodoAdd) String() string    { return fmt.Sprintf("Todo.Add(%q)", a.Text) }
func (a TodoToggle) String() string { return fmt.Sprintf("Todo.Toggle(%d)", a.Index) }
func (a TodoRemove) String() string { return fmt.Sprintf("Todo.Remove(%d)", a.Index) }
func (ToggleTheme) String() string  { return "ToggleTheme" }
func (ToggleVisibility) String() string {
	return "ToggleVisibility"
}
func (a Navigate) String() string { return "Navigate(" + a.Route.String() + ")" }
