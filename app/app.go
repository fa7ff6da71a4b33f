// Package app wires the store, the dispatcher, the render pass and the
// browser collaborators into a running application.
package app

import (
	"errors"
	"log"

	"github.com/gowade/tinyui/components"
	"github.com/gowade/tinyui/config"
	"github.com/gowade/tinyui/content"
	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/elem"
	"github.com/gowade/tinyui/logutil"
	"github.com/gowade/tinyui/perf"
	"github.com/gowade/tinyui/render"
	"github.com/gowade/tinyui/router"
	"github.com/gowade/tinyui/state"
	"github.com/gowade/tinyui/theme"
	"github.com/gowade/tinyui/utils/http"
)

var ErrMounted = errors.New("app: already mounted")

const shellKey = "shell"

type (
	// RenderBackend is the environment the application runs in, the browser
	// or the server pre-renderer.
	RenderBackend interface {
		History() router.History
		HTTPDriver() http.Driver
		Document() dom.Document
	}

	// Backend is a RenderBackend made of fixed parts.
	Backend struct {
		Hist   router.History
		Driver http.Driver
		Doc    dom.Document
	}

	Options struct {
		Config config.Config
		// Logger and Timer may be nil.
		Logger *log.Logger
		Timer  *perf.Timer
	}

	Application struct {
		Config     config.Config
		Doc        dom.Document
		Http       *http.Client
		Content    *content.Loader
		Store      *state.Store
		Dispatcher *state.Dispatcher
		Pipeline   *render.Pipeline
		Navigator  *router.Navigator
		Timer      *perf.Timer

		history router.History
		logger  *log.Logger
		env     components.Env
		mounted bool
	}
)

func (b Backend) History() router.History { return b.Hist }

func (b Backend) HTTPDriver() http.Driver { return b.Driver }

func (b Backend) Document() dom.Document { return b.Doc }

// New creates the application. Nothing touches the document until Mount.
func New(opts Options, rb RenderBackend) (*Application, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	table, err := router.NewTable(opts.Config.CleanBasePath())
	if err != nil {
		return nil, err
	}

	logger := logutil.OrDiscard(opts.Logger)
	timer := opts.Timer
	if timer == nil {
		timer = perf.New(logger)
	}

	app := &Application{
		Config:  opts.Config,
		Doc:     rb.Document(),
		Http:    http.NewClient(rb.HTTPDriver()),
		Store:   state.NewStore(state.Default()),
		Timer:   timer,
		history: rb.History(),
		logger:  logger,
	}

	app.Content = content.NewLoader(app.Http, opts.Config.ContentURL, logger)
	app.Dispatcher = state.NewDispatcher(app.Store, state.Reducer{Effects: app}, logger)
	app.Navigator = router.NewNavigator(app.history, table, func(r router.Route) {
		app.Dispatcher.Dispatch(state.Navigate{Route: r})
	})

	app.env = components.Env{
		Doc:        app.Doc,
		Dispatcher: app.Dispatcher,
		Navigator:  app.Navigator,
		Content:    app.Content,
	}

	app.Pipeline = render.New(render.Options{
		Doc:    app.Doc,
		Store:  app.Store,
		Env:    app.env,
		Timer:  timer,
		Logger: logger,
	})
	app.Dispatcher.SetRenderer(app.Pipeline)

	return app, nil
}

// Root returns the application root element, creating it in the body when
// the page has none.
func (app *Application) Root() (dom.Element, error) {
	if root, ok := app.Doc.ElementByID(render.AppID); ok {
		return root, nil
	}

	root, err := elem.Build(app.Doc, nil, "div", elem.Attr("id", render.AppID))
	if err != nil {
		return nil, err
	}

	if err := app.Doc.Body().AppendChild(root); err != nil {
		return nil, err
	}

	return root, nil
}

// Mount builds the page shell into the root element, applies the theme,
// renders the current route and starts following the history.
func (app *Application) Mount() error {
	if app.mounted {
		return ErrMounted
	}

	root, err := app.Root()
	if err != nil {
		return err
	}

	scope := elem.NewScope()
	b := elem.NewBuilder(app.Doc, scope)
	var parts []dom.Element
	for _, tree := range components.Shell(app.env) {
		el, err := b.Build(tree)
		if err != nil {
			scope.Release()
			return err
		}

		parts = append(parts, el)
	}

	root.Clear()
	for _, el := range parts {
		if err := root.AppendChild(el); err != nil {
			scope.Release()
			return err
		}
	}

	app.Pipeline.Registry().Replace(shellKey, scope)
	app.Pipeline.Invalidate()
	app.mounted = true

	if err := app.Store.Snapshot().ThemeProvider.Apply(root); err != nil {
		return err
	}

	app.Navigator.Listen()
	return app.Dispatcher.Dispatch(state.Navigate{Route: app.Navigator.Current()})
}

// Dispatch runs a through the dispatcher.
func (app *Application) Dispatch(a state.Action) error {
	return app.Dispatcher.Dispatch(a)
}

// AddTodo adds a todo directly, without going through the input box.
func (app *Application) AddTodo(text string) error {
	return app.Dispatch(state.TodoAdd{Text: text})
}

// ApplyTheme sets the theme class on the root element. The reducer calls
// it when the theme is toggled.
func (app *Application) ApplyTheme(p theme.Provider) {
	root, ok := app.Doc.ElementByID(render.AppID)
	if !ok {
		return
	}

	if err := p.Apply(root); err != nil {
		app.logger.Printf("apply theme: %v", err)
	}
}

// Close releases every listener the application registered.
func (app *Application) Close() {
	app.Pipeline.Close()
	app.mounted = false
}
