package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/gowade/tinyui/config"
	"github.com/gowade/tinyui/content"
	"github.com/gowade/tinyui/platform/serverside"
	"github.com/gowade/tinyui/utils/http/srvhttp"
)

//go:embed index.html
var defaultIndex []byte

type server struct {
	conf   config.Config
	index  []byte
	logger *log.Logger
	router *mux.Router
}

func newServer(conf config.Config, logger *log.Logger) *server {
	s := &server{
		conf:   conf,
		index:  defaultIndex,
		logger: logger,
	}

	if data, err := os.ReadFile(filepath.Join(conf.PublicDir, "index.html")); err == nil {
		s.index = data
	}

	r := mux.NewRouter()
	contentName := path.Base(conf.ContentURL)
	r.MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
		return path.Base(req.URL.Path) == contentName
	}).Methods("GET").HandlerFunc(s.content)
	r.PathPrefix("/js/").Handler(http.StripPrefix("/js/",
		http.FileServer(http.Dir(filepath.Join(conf.PublicDir, "js")))))
	r.PathPrefix("/").HandlerFunc(s.page)
	s.router = r

	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

// content serves the authored YAML articles as the JSON content document.
// The file is read on every request so edits show up on reload.
func (s *server) content(w http.ResponseWriter, req *http.Request) {
	data, err := os.ReadFile(s.conf.ArticlesFile)
	if err != nil {
		s.logger.Printf("content: %v", err)
		http.NotFound(w, req)
		return
	}

	c, err := content.DecodeYAML(data)
	if err != nil {
		s.logger.Printf("content: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// page serves the index page for every client route, pre-rendered when
// enabled.
func (s *server) page(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if !s.conf.Prerender {
		w.Write(s.index)
		return
	}

	var buf bytes.Buffer
	driver := &srvhttp.ServerBackend{Server: s.router, ClientReq: req}
	if err := serverside.Render(s.conf, bytes.NewReader(s.index), req.URL.Path, driver, &buf); err != nil {
		s.logger.Printf("prerender %s: %v", req.URL.Path, err)
		w.Write(s.index)
		return
	}

	w.Write(buf.Bytes())
}
