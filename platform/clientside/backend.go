// Package clientside assembles the browser backend of the application.
package clientside

import (
	"github.com/gowade/tinyui/app"
	"github.com/gowade/tinyui/content"
	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/dom/jsdom"
	"github.com/gowade/tinyui/driver/jsdrv"
	"github.com/gowade/tinyui/utils/http/jshttp"
)

// CreateBackend returns the browser document, history and a synchronous
// XMLHttpRequest driver, usable from event handlers.
func CreateBackend() (app.Backend, error) {
	doc, err := jsdom.NewDocument()
	if err != nil {
		return app.Backend{}, err
	}

	hist, err := jsdrv.NewHistory()
	if err != nil {
		return app.Backend{}, err
	}

	return app.Backend{
		Hist:   hist,
		Driver: jshttp.SyncDriver{},
		Doc:    doc,
	}, nil
}

// PrimeContent feeds the content embedded by the server pre-renderer to
// loader. It reports whether there was any.
func PrimeContent(doc dom.Document, loader *content.Loader) bool {
	script, ok := doc.ElementByID(content.ScriptID)
	if !ok {
		return false
	}

	return loader.Prime([]byte(script.Text())) == nil
}
