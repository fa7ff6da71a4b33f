package components

import (
	"github.com/gowade/tinyui/components/menu"
	"github.com/gowade/tinyui/content"
	"github.com/gowade/tinyui/elem"
	"github.com/gowade/tinyui/router"
	"github.com/gowade/tinyui/state"
)

var navLabels = map[router.Route]string{
	router.Home:     "Home",
	router.Articles: "Articles",
	router.About:    "About",
	router.NotFound: "Not Found",
}

// Nav is the main menu with the item of current marked active.
func Nav(env Env, current router.Route) (elem.Tree, error) {
	m := menu.SwitchMenu{Current: current.String()}
	for _, r := range router.Routes() {
		m.Items = append(m.Items, menu.Item{
			Case:    r.String(),
			Content: Link(env, r, navLabels[r]),
		})
	}

	list, err := m.Tree()
	if err != nil {
		return elem.Tree{}, err
	}

	return elem.E("nav", elem.Attr("class", "main-nav"), elem.Child(list)), nil
}

// Home holds the counter and an empty todo container, filled by the todo
// region of the render pass.
func Home(s state.AppState) elem.Tree {
	return elem.E("div",
		elem.Attr("id", ContentID),
		elem.Embed("Counter: "),
		elem.Child(Count(s.Counter)),
		elem.Child(elem.E("div", elem.Attr("id", TodoContainerID))),
	)
}

func Articles(c content.Content) elem.Tree {
	return elem.E("section",
		elem.Attr("id", "articles"),
		elem.Attr("class", "articles-section"),
		elem.Each(c.Articles, func(i int, a content.Article) elem.Tree {
			return elem.E("div",
				elem.Attr("class", "article-card"),
				elem.Child(elem.E("h2", elem.Text(a.Title))),
				elem.Child(elem.E("div",
					elem.Attr("class", "article-meta"),
					elem.Child(elem.E("span", elem.Text(a.Date))),
					elem.Child(elem.E("span", elem.Text(a.Author))),
				)),
				elem.Child(elem.E("div",
					elem.Attr("class", "article-tags"),
					elem.Each(a.Tags, func(i int, tag string) elem.Tree {
						return elem.E("span", elem.Attr("class", "tag"), elem.Text(tag))
					}),
				)),
				elem.Child(elem.E("p", elem.Text(a.Content))),
			)
		}),
	)
}

func About() elem.Tree {
	return elem.E("div",
		elem.Attr("class", "about-page"),
		elem.Child(elem.E("h1", elem.Text("About Us"))),
		elem.Child(elem.E("p", elem.Text("This is the about page content."))),
	)
}

func NotFound() elem.Tree {
	return elem.E("div",
		elem.Attr("class", "not-found"),
		elem.Child(elem.E("h1", elem.Text("404 - Page Not Found"))),
		elem.Child(elem.E("p", elem.Text("The page you're looking for doesn't exist."))),
	)
}

// RouteContent is the page of the state's route.
func RouteContent(env Env, s state.AppState) elem.Tree {
	switch s.Route {
	case router.Home:
		return Home(s)
	case router.Articles:
		if env.Content == nil {
			return Articles(content.Fallback())
		}
		return Articles(env.Content.Load())
	case router.About:
		return About()
	}

	return NotFound()
}

// Shell is the static part of the page, built once on mount into the root
// element. The route view is filled by the render pass.
func Shell(env Env) []elem.Tree {
	return []elem.Tree{
		elem.E("div", elem.Attr("id", RouteViewID)),
		VisibilityToggle(env),
		CounterActions(env),
		Tooltip("Switch between light and dark", Bottom, ThemeToggle(env)),
	}
}
