package serverside

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/gowade/tinyui/config"
	"github.com/gowade/tinyui/content"
	"github.com/gowade/tinyui/utils/http"
)

const index = `<!DOCTYPE html><html><head><title>tinyui</title></head><body><div id="app"></div></body></html>`

type driver struct {
	body string
	err  error
}

func (d driver) Do(r *http.Request) (*http.Response, error) {
	if d.err != nil {
		return nil, d.err
	}

	return &http.Response{StatusCode: 200, Body: []byte(d.body)}, nil
}

func render(t *testing.T, path string, d http.Driver) *goquery.Document {
	var buf bytes.Buffer
	require.NoError(t, Render(config.Default(), strings.NewReader(index), path, d, &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderHome(t *testing.T) {
	doc := render(t, "/", driver{})
	require.Equal(t, 1, doc.Find("#app").Length())
	require.Equal(t, "theme-light", doc.Find("#app").AttrOr("class", ""))
	require.Equal(t, "0", doc.Find("#count").Text())
	require.Equal(t, 1, doc.Find("#todo-list #todo-input").Length())
	require.Equal(t, "Home", doc.Find("nav li.active").Text())
	require.Equal(t, 0, doc.Find("#"+content.ScriptID).Length())
}

func TestRenderArticlesEmbedsContent(t *testing.T) {
	doc := render(t, "/articles", driver{body: `{"articles": [{"title": "<b>Hi</b>"}]}`})
	require.Equal(t, "<b>Hi</b>", doc.Find(".article-card h2").Text())

	script := doc.Find("head script#" + content.ScriptID)
	require.Equal(t, 1, script.Length())
	require.NotContains(t, script.Text(), "</b>")

	c, err := content.Decode([]byte(script.Text()))
	require.NoError(t, err)
	require.Equal(t, "<b>Hi</b>", c.Articles[0].Title)
}

func TestRenderFallback(t *testing.T) {
	doc := render(t, "/articles", driver{err: errors.New("down")})
	require.Equal(t, "Loading...", doc.Find(".article-card h2").Text())
	require.Equal(t, 0, doc.Find("#"+content.ScriptID).Length())
}

func TestRenderNotFound(t *testing.T) {
	doc := render(t, "/nowhere", driver{})
	require.Equal(t, "404 - Page Not Found", doc.Find(".not-found h1").Text())
}

func TestRenderBadConfig(t *testing.T) {
	conf := config.Default()
	conf.BasePath = "relative"
	require.Error(t, Render(conf, strings.NewReader(index), "/", driver{}, &bytes.Buffer{}))
}
