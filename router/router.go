// Package router maps URL paths to the application's routes.
package router

import (
	"fmt"
	"path"
	"strings"

	urlrouter "github.com/naoina/kocha-urlrouter"
	_ "github.com/naoina/kocha-urlrouter/regexp"
)

type Route int

const (
	Home Route = iota
	Articles
	About
	NotFound
)

var routes = []struct {
	route Route
	name  string
	path  string
}{
	{Home, "Home", "/"},
	{Articles, "Articles", "/articles"},
	{About, "About", "/about"},
	{NotFound, "NotFound", "/404"},
}

func (r Route) String() string {
	if r < Home || r > NotFound {
		return fmt.Sprintf("Route(%d)", int(r))
	}

	return routes[r].name
}

// Path is the path of r without any base path.
func (r Route) Path() string {
	if r < Home || r > NotFound {
		return routes[NotFound].path
	}

	return routes[r].path
}

// Routes lists every route in menu order.
func Routes() []Route {
	list := make([]Route, 0, len(routes))
	for _, r := range routes {
		list = append(list, r.route)
	}

	return list
}

// Table matches paths under a base path.
type Table struct {
	urlrouter.URLRouter
	basePath string
}

// NewTable builds the route table. Paths are matched after basePath is
// stripped from them.
func NewTable(basePath string) (*Table, error) {
	t := &Table{
		URLRouter: urlrouter.NewURLRouter("regexp"),
		basePath:  strings.TrimSuffix(basePath, "/"),
	}

	records := []urlrouter.Record{}
	for _, r := range routes {
		if r.route == NotFound {
			continue
		}

		records = append(records, urlrouter.NewRecord(r.path, r.route))
	}

	if err := t.URLRouter.Build(records); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	return t, nil
}

// MustNewTable is NewTable that panics on error.
func MustNewTable(basePath string) *Table {
	t, err := NewTable(basePath)
	if err != nil {
		panic(err)
	}

	return t
}

// Match returns the route of p, NotFound if none matches or p is outside
// the base path.
func (t *Table) Match(p string) Route {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	if t.basePath != "" {
		rest := strings.TrimPrefix(p, t.basePath)
		if len(rest) == len(p) || rest != "" && rest[0] != '/' {
			return NotFound
		}

		p = rest
	}

	tpath := path.Join("/", p)
	data, _ := t.Lookup(tpath)
	if r, ok := data.(Route); ok {
		return r
	}

	return NotFound
}

// Path is the full path of r, base path included.
func (t *Table) Path(r Route) string {
	return t.basePath + r.Path()
}

var defaultTable = MustNewTable("")

// Match matches p against the table with no base path.
func Match(p string) Route {
	return defaultTable.Match(p)
}

// Path is the path of r with no base path.
func Path(r Route) string {
	return r.Path()
}
