// Package serverside pre-renders the application into HTML on the server.
package serverside

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"runtime"

	"golang.org/x/net/html"

	"github.com/gowade/tinyui/app"
	"github.com/gowade/tinyui/config"
	"github.com/gowade/tinyui/content"
	"github.com/gowade/tinyui/dom/htmldom"
	"github.com/gowade/tinyui/router"
	"github.com/gowade/tinyui/utils/http"
)

// NewApp creates an application rendering into the HTML document read
// from document, as if the browser were at startPath.
func NewApp(conf config.Config, document io.Reader, startPath string, driver http.Driver, logger *log.Logger) (*app.Application, *htmldom.Document, error) {
	source, err := io.ReadAll(document)
	if err != nil {
		return nil, nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := htmldom.NewDocument(string(source))
	if err != nil {
		return nil, nil, err
	}

	a, err := app.New(app.Options{Config: conf, Logger: logger}, app.Backend{
		Hist:   router.NewNoopHistory(startPath),
		Driver: driver,
		Doc:    doc,
	})
	if err != nil {
		return nil, nil, err
	}

	return a, doc, nil
}

// StartRender mounts a and writes the resulting document to w. Content
// loaded while rendering is embedded in the page so the browser does not
// fetch it again.
func StartRender(a *app.Application, doc *htmldom.Document, w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			trace := make([]byte, 4096)
			count := runtime.Stack(trace, true)
			err = fmt.Errorf("Error while starting and rendering the app: %s\nStack of %d bytes: %s\n", r, count, trace)
		}
	}()

	if err = a.Mount(); err != nil {
		return
	}

	if err = embedContent(a, doc); err != nil {
		return
	}

	a.Close()
	return html.Render(w, doc.Root())
}

func embedContent(a *app.Application, doc *htmldom.Document) error {
	c, ok := a.Content.Cached()
	if !ok {
		return nil
	}

	heads := doc.Find("head")
	if len(heads) == 0 {
		return nil
	}

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	script, err := doc.CreateElement("script")
	if err != nil {
		return err
	}

	script.SetAttr("id", content.ScriptID)
	script.SetAttr("type", "application/json")
	script.SetText(string(data))
	return heads[0].AppendChild(script)
}

// Render pre-renders the page at startPath into w.
func Render(conf config.Config, document io.Reader, startPath string, driver http.Driver, w io.Writer) error {
	a, doc, err := NewApp(conf, document, startPath, driver, nil)
	if err != nil {
		return err
	}

	return StartRender(a, doc, w)
}
