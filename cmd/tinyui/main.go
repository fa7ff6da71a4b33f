// Command tinyui is the browser entry point, built with gopherjs.
package main

import (
	"log"

	"github.com/gowade/tinyui/app"
	"github.com/gowade/tinyui/config"
	"github.com/gowade/tinyui/driver/jsdrv"
	"github.com/gowade/tinyui/logutil"
	"github.com/gowade/tinyui/platform/clientside"
	"github.com/gowade/tinyui/utils/http"
	"github.com/gowade/tinyui/utils/http/jshttp"
)

func main() {
	logger := logutil.New(jsdrv.ConsoleWriter{}, "[tinyui] ")

	backend, err := clientside.CreateBackend()
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New(app.Options{Config: config.Default(), Logger: logger}, backend)
	if err != nil {
		logger.Fatal(err)
	}

	if !clientside.PrimeContent(a.Doc, a.Content) {
		// The asynchronous driver blocks its goroutine, never the page.
		go func() {
			if err := a.Content.Warm(http.NewClient(jshttp.XhrDriver{})); err != nil {
				logger.Printf("warm content: %v", err)
			}
		}()
	}

	if err := a.Mount(); err != nil {
		logger.Fatal(err)
	}
}
