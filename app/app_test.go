package app

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gowade/tinyui/config"
	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/dom/htmldom"
	"github.com/gowade/tinyui/router"
	"github.com/gowade/tinyui/utils/http"
)

type contentDriver struct {
	calls int
}

func (d *contentDriver) Do(r *http.Request) (*http.Response, error) {
	d.calls++
	return &http.Response{
		StatusCode: 200,
		Body:       []byte(`{"articles": [{"title": "First", "tags": ["a"]}, {"title": "Second"}]}`),
	}, nil
}

type AppTestSuite struct {
	suite.Suite
	doc    *htmldom.Document
	hist   *router.NoopHistory
	driver *contentDriver
	app    *Application
}

func (s *AppTestSuite) SetupTest() {
	s.doc = htmldom.MustNewDocument(`<html><head></head><body></body></html>`)
	s.hist = router.NewNoopHistory("/")
	s.driver = &contentDriver{}

	app, err := New(Options{Config: config.Default()}, Backend{
		Hist:   s.hist,
		Driver: s.driver,
		Doc:    s.doc,
	})
	s.Require().NoError(err)
	s.app = app
	s.Require().NoError(app.Mount())
}

func (s *AppTestSuite) byID(id string) dom.Element {
	el, ok := s.doc.ElementByID(id)
	s.Require().True(ok, "#%s", id)
	return el
}

func (s *AppTestSuite) button(label string) dom.Element {
	for _, b := range s.doc.Find("button") {
		if b.Text() == label {
			return b
		}
	}

	s.FailNow("no button " + label)
	return nil
}

func (s *AppTestSuite) TestMountCreatesRoot() {
	root := s.byID("app")
	s.Equal("theme-light", root.ClassName())
	s.Len(s.doc.Find("#app"), 1)
	s.Len(s.doc.Find("nav.main-nav li"), 4)
	s.Equal("0", s.byID("count").Text())
	s.ErrorIs(s.app.Mount(), ErrMounted)
}

func (s *AppTestSuite) TestScenario() {
	s.doc.Click(s.button("+"))
	s.Equal("1", s.byID("count").Text())

	s.doc.Click(s.button("Toggle Visibility"))
	s.Equal("none", s.byID("content").Style("display"))

	input := s.byID("todo-input")
	input.SetValue("buy milk")
	s.doc.KeyDown(input, "Enter")

	rows := s.doc.Find("#todo-list .todo-item")
	s.Require().Len(rows, 1)
	s.Equal("buy milk", s.doc.Find(".todo-text")[0].Text())
	box := s.doc.Find(".todo-checkbox")[0]
	s.False(box.Checked())

	s.doc.Click(box)
	s.True(s.doc.Find(".todo-checkbox")[0].Checked())
	s.Equal("todo-item completed", s.doc.Find(".todo-item")[0].ClassName())

	s.doc.Click(s.doc.Find(".todo-delete")[0])
	s.Empty(s.doc.Find(".todo-item"))
	s.Len(s.doc.Find("#todo-input"), 1)
}

func (s *AppTestSuite) TestThemeToggle() {
	s.doc.Click(s.button("Toggle Theme"))
	s.Equal("theme-dark", s.byID("app").ClassName())
	s.doc.Click(s.button("Toggle Theme"))
	s.Equal("theme-light", s.byID("app").ClassName())
}

func (s *AppTestSuite) TestNavigation() {
	s.doc.Click(s.doc.Find(`nav a[href="/articles"]`)[0])
	s.Equal("/articles", s.hist.CurrentPath())
	s.Len(s.doc.Find(".article-card"), 2)
	s.Empty(s.doc.Find("#count"))
	s.Equal("Articles", s.doc.Find("nav li.active")[0].Text())

	s.doc.Click(s.doc.Find(`nav a[href="/about"]`)[0])
	s.Equal("About Us", s.doc.Find(".about-page h1")[0].Text())
	s.Equal(1, s.driver.calls)

	s.True(s.hist.Back())
	s.Len(s.doc.Find(".article-card"), 2)
	s.Equal(1, s.driver.calls)

	s.True(s.hist.Back())
	s.Equal("0", s.byID("count").Text())
}

func (s *AppTestSuite) TestNoListenerLeaks() {
	before := s.doc.ListenerCount()
	for i := 0; i < 20; i++ {
		s.doc.Click(s.button("+"))
		s.app.AddTodo("x")
	}

	// Each todo row has a checkbox and a delete button.
	s.Equal(before+20*2, s.doc.ListenerCount())
	s.Equal(s.doc.ListenerCount(), s.app.Pipeline.Registry().Listeners())

	s.app.Close()
	s.Equal(0, s.doc.ListenerCount())
}

func TestApp(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func TestExistingRootIsReused(t *testing.T) {
	doc := htmldom.MustNewDocument(`<body><div id="app" class="x"><p>pre-rendered</p></div></body>`)
	app, err := New(Options{Config: config.Default()}, Backend{
		Hist:   router.NewNoopHistory("/about"),
		Driver: &contentDriver{},
		Doc:    doc,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := app.Mount(); err != nil {
		t.Fatal(err)
	}

	if n := len(doc.Find("#app")); n != 1 {
		t.Fatalf("expected one root, got %d", n)
	}

	if len(doc.Find("p")) != 1 || len(doc.Find(".about-page")) == 0 {
		t.Fatalf("unexpected page: %s", doc.HTML())
	}
}
