// Package theme holds the light/dark color theme and the provider that
// applies it to the application root.
package theme

import "github.com/gowade/tinyui/dom"

type Theme int

const (
	Light Theme = iota
	Dark
)

var classes = [...]string{
	Light: "theme-light",
	Dark:  "theme-dark",
}

// Class is the canonical class name of the theme.
func (t Theme) Class() string {
	if t == Dark {
		return classes[Dark]
	}

	return classes[Light]
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}

	return "light"
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}

	return Dark
}

type Provider struct {
	Current Theme
}

func NewProvider(t Theme) Provider {
	return Provider{Current: t}
}

// Toggle returns a provider holding the other theme.
func (p Provider) Toggle() Provider {
	return Provider{Current: p.Current.Toggled()}
}

// Apply sets the class of root to the current theme's class.
func (p Provider) Apply(root dom.Element) error {
	if root == nil {
		return dom.ErrNotElement
	}

	root.SetClassName(p.Current.Class())
	return nil
}
