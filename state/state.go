// Package state holds the application state, the actions that change it and
// the dispatcher, which is the only writer of the store.
package state

import (
	"github.com/gowade/tinyui/router"
	"github.com/gowade/tinyui/theme"
)

type Visibility int

const (
	Shown Visibility = iota
	Hidden
)

// Display is the CSS display value of the content region.
func (v Visibility) Display() string {
	if v == Hidden {
		return "none"
	}

	return "block"
}

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}

	return "shown"
}

type (
	Todo struct {
		Text      string
		Completed bool
	}

	AppState struct {
		Counter       int32
		Theme         theme.Theme
		Visibility    Visibility
		Todos         []Todo
		ThemeProvider theme.Provider
		Route         router.Route
	}
)

// Default is the state the application starts in.
func Default() AppState {
	return AppState{
		Theme:         theme.Light,
		Visibility:    Shown,
		Todos:         []Todo{},
		ThemeProvider: theme.NewProvider(theme.Light),
		Route:         router.Home,
	}
}

// Clone returns a copy of s that shares no memory with it.
func (s AppState) Clone() AppState {
	s.Todos = append(make([]Todo, 0, len(s.Todos)), s.Todos...)
	return s
}

// Store holds the current state. Anyone can read it, only the dispatcher
// writes it.
type Store struct {
	current AppState
}

func NewStore(initial AppState) *Store {
	return &Store{current: initial.Clone()}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() AppState {
	return s.current.Clone()
}

func (s *Store) commit(next AppState) {
	s.current = next
}
