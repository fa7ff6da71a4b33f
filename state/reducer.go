package state

import (
	"math"

	"github.com/gowade/tinyui/theme"
)

// Effects is the one side effect reducing may have: applying the toggled
// theme before the new state is committed.
type Effects interface {
	ApplyTheme(theme.Provider)
}

type EffectsFunc func(theme.Provider)

func (f EffectsFunc) ApplyTheme(p theme.Provider) { f(p) }

type Reducer struct {
	// Effects may be nil.
	Effects Effects
}

// Reduce derives the state following a. s is not modified. Toggling or
// removing a todo out of range leaves the state unchanged and the counter
// saturates at the int32 bounds.
func (r Reducer) Reduce(s AppState, a Action) AppState {
	s = s.Clone()

	switch a := a.(type) {
	case Counter:
		switch a.Op {
		case Increment:
			if s.Counter < math.MaxInt32 {
				s.Counter++
			}
		case Decrement:
			if s.Counter > math.MinInt32 {
				s.Counter--
			}
		case Reset:
			s.Counter = 0
		}

	case TodoAdd:
		if a.Text != "" {
			s.Todos = append(s.Todos, Todo{Text: a.Text})
		}

	case TodoToggle:
		if a.Index >= 0 && a.Index < len(s.Todos) {
			s.Todos[a.Index].Completed = !s.Todos[a.Index].Completed
		}

	case TodoRemove:
		if a.Index >= 0 && a.Index < len(s.Todos) {
			s.Todos = append(s.Todos[:a.Index], s.Todos[a.Index+1:]...)
		}

	case ToggleTheme:
		s.Theme = s.Theme.Toggled()
		s.ThemeProvider = s.ThemeProvider.Toggle()
		if r.Effects != nil {
			r.Effects.ApplyTheme(s.ThemeProvider)
		}

	case ToggleVisibility:
		if s.Visibility == Shown {
			s.Visibility = Hidden
		} else {
			s.Visibility = Shown
		}

	case Navigate:
		s.Route = a.Route
	}

	return s
}
