// Package http is a small HTTP client with pluggable drivers, so the same
// code fetches through XMLHttpRequest in the browser and through an
// http.Handler on the server.
package http

import (
	"errors"
	gourl "net/url"
	"time"
)

var ErrNoDriver = errors.New("http: no driver set")

type (
	Header map[string][]string

	Request struct {
		Body            []byte
		Header          Header
		Method          string
		URL             *gourl.URL
		Timeout         time.Duration
		WithCredentials bool
	}

	Driver interface {
		Do(*Request) (*Response, error)
	}

	Response struct {
		Body       []byte
		Status     string
		StatusCode int
		Header     Header
	}

	// Client sends requests through Driver.
	Client struct {
		Driver  Driver
		Timeout time.Duration
	}
)

func NewClient(driver Driver) *Client {
	return &Client{Driver: driver}
}

func (c *Client) Do(req *Request) (*Response, error) {
	if c == nil || c.Driver == nil {
		return nil, ErrNoDriver
	}

	if req.Timeout == 0 {
		req.Timeout = c.Timeout
	}

	return c.Driver.Do(req)
}

// Get issues a GET for url.
func (c *Client) Get(url string) (*Response, error) {
	req, err := NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	return c.Do(req)
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Add adds the key, value pair to the header.
// It appends to any existing values associated with key.
func (h Header) Add(key, value string) {
	h[key] = append(h[key], value)
}

// Set sets the header entries associated with key to
// the single element value.  It replaces any existing
// values associated with key.
func (h Header) Set(key, value string) {
	h[key] = []string{value}
}

// Get gets the first value associated with the given key.
// If there are no values associated with the key, Get returns "".
func (h Header) Get(key string) string {
	if v, ok := h[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

func NewRequest(method string, url string, body []byte) (*Request, error) {
	u, err := gourl.Parse(url)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method: method,
		Header: make(Header),
		URL:    u,
		Body:   body,
	}, nil
}
