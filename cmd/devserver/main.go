// Command devserver serves the application for development: the compiled
// script, the content document and pre-rendered pages.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gowade/tinyui/config"
	"github.com/gowade/tinyui/logutil"
)

var configFile = flag.String("config", "", "TOML configuration file")

func main() {
	flag.Parse()
	logger := logutil.New(os.Stderr, "[devserver] ")

	conf := config.Default()
	if *configFile != "" {
		var err error
		conf, err = config.Load(*configFile)
		if err != nil {
			logger.Fatal(err)
		}
	}

	logger.Printf("listening on %s", conf.Addr)
	err := http.ListenAndServe(conf.Addr, newServer(conf, logger))
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
