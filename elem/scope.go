package elem

import "github.com/gowade/tinyui/dom"

// Scope owns the listeners registered while building a subtree. Releasing
// the scope unregisters all of them.
type Scope struct {
	listeners []dom.Listener
}

func NewScope() *Scope {
	return &Scope{}
}

func (s *Scope) Add(l dom.Listener) {
	s.listeners = append(s.listeners, l)
}

// Len is the number of listeners held.
func (s *Scope) Len() int {
	return len(s.listeners)
}

// Release unregisters every listener. It is safe to call more than once.
func (s *Scope) Release() {
	s.rollback(0)
}

// rollback releases the listeners added after the first n.
func (s *Scope) rollback(n int) {
	for i := len(s.listeners) - 1; i >= n; i-- {
		s.listeners[i].Release()
		s.listeners[i] = nil
	}

	s.listeners = s.listeners[:n]
}

// Registry keeps one scope per region key. Replacing the scope of a key
// releases the previous one.
type Registry struct {
	scopes map[string]*Scope
}

func NewRegistry() *Registry {
	return &Registry{scopes: make(map[string]*Scope)}
}

func (r *Registry) Replace(key string, s *Scope) {
	if old, ok := r.scopes[key]; ok && old != s {
		old.Release()
	}

	r.scopes[key] = s
}

func (r *Registry) Scope(key string) (*Scope, bool) {
	s, ok := r.scopes[key]
	return s, ok
}

func (r *Registry) Release(key string) {
	if s, ok := r.scopes[key]; ok {
		s.Release()
		delete(r.scopes, key)
	}
}

func (r *Registry) ReleaseAll() {
	for key := range r.scopes {
		r.Release(key)
	}
}

// Len is the number of keys with a scope.
func (r *Registry) Len() int {
	return len(r.scopes)
}

// Listeners is the total number of listeners held across all scopes.
func (r *Registry) Listeners() int {
	n := 0
	for _, s := range r.scopes {
		n += s.Len()
	}

	return n
}
