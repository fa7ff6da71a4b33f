// Package content loads the articles shown on the articles page.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/gowade/tinyui/logutil"
	"github.com/gowade/tinyui/utils/http"
)

const (
	// DefaultURL is where the content document is fetched from.
	DefaultURL = "content.json"
	// ScriptID is the id of the script element a pre-rendered page embeds
	// the loaded content document in.
	ScriptID = "tinyui-content"
)

var (
	ErrStatus    = errors.New("unexpected response status")
	ErrNotObject = errors.New("content: document is not an object")
)

type (
	Article struct {
		Title   string   `json:"title" yaml:"title"`
		Content string   `json:"content" yaml:"content"`
		Date    string   `json:"date" yaml:"date"`
		Author  string   `json:"author" yaml:"author"`
		Tags    []string `json:"tags" yaml:"tags"`
	}

	Content struct {
		Articles []Article `json:"articles" yaml:"articles"`
	}
)

// Fallback is what is shown while the real content is unavailable.
func Fallback() Content {
	return Content{Articles: []Article{{
		Title:   "Loading...",
		Content: "Content is loading...",
		Tags:    []string{},
	}}}
}

func (c Content) Clone() Content {
	articles := make([]Article, len(c.Articles))
	for i, a := range c.Articles {
		a.Tags = append([]string{}, a.Tags...)
		articles[i] = a
	}

	return Content{Articles: articles}
}

// Decode parses a JSON content document leniently. Articles that are not
// objects are dropped, fields of the wrong type read as empty and non-string
// tags are skipped. Only a document that is not a JSON object, null
// included, is an error.
func Decode(data []byte) (Content, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Content{}, fmt.Errorf("content: %w", err)
	}

	if doc == nil {
		return Content{}, ErrNotObject
	}

	var raw []json.RawMessage
	json.Unmarshal(doc["articles"], &raw)

	c := Content{Articles: []Article{}}
	for _, r := range raw {
		var fields map[string]interface{}
		if err := json.Unmarshal(r, &fields); err != nil || fields == nil {
			continue
		}

		c.Articles = append(c.Articles, Article{
			Title:   str(fields["title"]),
			Content: str(fields["content"]),
			Date:    str(fields["date"]),
			Author:  str(fields["author"]),
			Tags:    strs(fields["tags"]),
		})
	}

	return c, nil
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func strs(v interface{}) []string {
	list := []string{}
	items, _ := v.([]interface{})
	for _, item := range items {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}

	return list
}

// DecodeYAML parses authored content written in YAML.
func DecodeYAML(data []byte) (Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("content: %w", err)
	}

	for i := range c.Articles {
		if c.Articles[i].Tags == nil {
			c.Articles[i].Tags = []string{}
		}
	}

	if c.Articles == nil {
		c.Articles = []Article{}
	}

	return c, nil
}

// Loader fetches the content document once and caches it. Failed loads
// return Fallback and are retried on the next call.
type Loader struct {
	client *http.Client
	url    string
	logger *log.Logger
	cache  *Content
}

func NewLoader(client *http.Client, url string, logger *log.Logger) *Loader {
	if url == "" {
		url = DefaultURL
	}

	return &Loader{
		client: client,
		url:    url,
		logger: logutil.OrDiscard(logger),
	}
}

func (l *Loader) URL() string {
	return l.url
}

// Load returns the cached content, fetching it first if needed.
func (l *Loader) Load() Content {
	if l.cache != nil {
		return l.cache.Clone()
	}

	if _, err := l.fetch(l.client); err != nil {
		l.logger.Printf("content: using fallback: %v", err)
		return Fallback()
	}

	return l.cache.Clone()
}

// Warm fetches the content through client and caches it, so later Load
// calls never hit the network.
func (l *Loader) Warm(client *http.Client) error {
	_, err := l.fetch(client)
	return err
}

// Prime caches the JSON content document data, as embedded in a
// pre-rendered page.
func (l *Loader) Prime(data []byte) error {
	c, err := Decode(data)
	if err != nil {
		return err
	}

	l.cache = &c
	return nil
}

// Cached returns the cached content, if any.
func (l *Loader) Cached() (Content, bool) {
	if l.cache == nil {
		return Content{}, false
	}

	return l.cache.Clone(), true
}

// Reset drops the cache.
func (l *Loader) Reset() {
	l.cache = nil
}

func (l *Loader) fetch(client *http.Client) (Content, error) {
	req, err := http.NewRequest("GET", l.url, nil)
	if err != nil {
		return Content{}, err
	}

	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return Content{}, fmt.Errorf("get %s: %w", l.url, err)
	}

	if resp.StatusCode != 200 {
		return Content{}, fmt.Errorf("get %s: %w %d", l.url, ErrStatus, resp.StatusCode)
	}

	c, err := Decode(resp.Body)
	if err != nil {
		if ct := resp.Header.Get("Content-Type"); ct != "" {
			return Content{}, fmt.Errorf("get %s (%s): %w", l.url, ct, err)
		}

		return Content{}, fmt.Errorf("get %s: %w", l.url, err)
	}

	l.cache = &c
	return c, nil
}
