package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/gowade/tinyui/config"
	"github.com/gowade/tinyui/content"
	"github.com/gowade/tinyui/logutil"
)

const articles = `
articles:
  - title: Hello
    content: World
    date: "2024-05-01"
    author: An
    tags: [go, ui]
`

func setup(t *testing.T, prerender bool) *httptest.Server {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "tinyui.js"), []byte("// js"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content.yaml"), []byte(articles), 0o644))

	conf := config.Default()
	conf.PublicDir = dir
	conf.ArticlesFile = filepath.Join(dir, "content.yaml")
	conf.Prerender = prerender

	srv := httptest.NewServer(newServer(conf, logutil.Discard))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestContent(t *testing.T) {
	srv := setup(t, true)
	resp, body := get(t, srv.URL+"/content.json")
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var c content.Content
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	require.Equal(t, []string{"go", "ui"}, c.Articles[0].Tags)

	resp, _ = get(t, srv.URL+"/articles/content.json")
	require.Equal(t, 200, resp.StatusCode)
}

func TestStatic(t *testing.T) {
	srv := setup(t, true)
	resp, body := get(t, srv.URL+"/js/tinyui.js")
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, "// js", body)
}

func TestPrerenderedPages(t *testing.T) {
	srv := setup(t, true)

	_, body := get(t, srv.URL+"/articles")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, "Hello", doc.Find(".article-card h2").Text())
	require.Equal(t, 1, doc.Find("script#"+content.ScriptID).Length())
	require.Equal(t, 1, doc.Find(`script[src="/js/tinyui.js"]`).Length())

	_, body = get(t, srv.URL+"/")
	doc, _ = goquery.NewDocumentFromReader(strings.NewReader(body))
	require.Equal(t, "0", doc.Find("#count").Text())
}

func TestPlainIndex(t *testing.T) {
	srv := setup(t, false)
	_, body := get(t, srv.URL+"/about")
	require.Equal(t, string(defaultIndex), body)
}
