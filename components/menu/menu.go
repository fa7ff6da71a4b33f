// Package menu has a list menu that marks the item matching the current
// case as active.
package menu

import (
	"fmt"
	"strings"

	"github.com/gowade/tinyui/elem"
)

type (
	Item struct {
		// Case identifies the item. An item can list several cases
		// separated by spaces.
		Case    string
		Content elem.Tree
	}

	SwitchMenu struct {
		Current     string
		ActiveClass string
		Items       []Item
	}
)

// Tree builds the menu into an <ul>, one <li> per item.
func (sm SwitchMenu) Tree() (elem.Tree, error) {
	activeClass := strings.TrimSpace(sm.ActiveClass)
	if activeClass == "" {
		activeClass = "active"
	}

	if sm.Current == "" {
		return elem.Tree{}, fmt.Errorf(`"Current" must be set`)
	}

	seen := map[string]bool{}
	items := make([]elem.Item, 0, len(sm.Items))
	for _, item := range sm.Items {
		cases := strings.Fields(item.Case)
		if len(cases) == 0 {
			return elem.Tree{}, fmt.Errorf(`"Case" must be set for each item`)
		}

		active := false
		for _, c := range cases {
			if seen[c] {
				return elem.Tree{}, fmt.Errorf("switchmenu case %v is duplicated in multiple items", c)
			}

			seen[c] = true
			active = active || c == sm.Current
		}

		li := []elem.Item{elem.Child(item.Content)}
		if active {
			li = append(li, elem.Attr("class", activeClass))
		}

		items = append(items, elem.Child(elem.E("li", li...)))
	}

	return elem.E("ul", items...), nil
}
