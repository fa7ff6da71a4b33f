// Package jshttp implements http drivers on the browser's XMLHttpRequest.
package jshttp

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"honnef.co/go/js/xhr"

	"github.com/gowade/tinyui/utils/http"
)

// XhrDriver sends asynchronous requests and blocks the calling goroutine
// until they finish. It must not be used from inside a DOM callback.
type XhrDriver struct{}

// parseHeaders parses the raw getAllResponseHeaders() text.
func parseHeaders(str string) http.Header {
	header := make(http.Header)
	for _, kv := range strings.Split(str, "\u000d\u000a") {
		pos := strings.Index(kv, ": ")
		if pos < 0 {
			continue
		}

		header.Add(kv[:pos], kv[pos+2:])
	}

	return header
}

func (b XhrDriver) Do(r *http.Request) (*http.Response, error) {
	req := xhr.NewRequest(r.Method, r.URL.String())
	req.ResponseType = xhr.Text
	req.Timeout = int(r.Timeout.Seconds() * 1000)
	req.WithCredentials = r.WithCredentials

	for k, values := range r.Header {
		req.SetRequestHeader(k, strings.Join(values, ","))
	}

	var body interface{}
	if r.Body != nil {
		body = string(r.Body)
	}

	if err := req.Send(body); err != nil {
		return nil, err
	}

	return &http.Response{
		Body:       []byte(req.ResponseText),
		StatusCode: req.Status,
		Status:     req.StatusText,
		Header:     parseHeaders(req.ResponseHeaders()),
	}, nil
}

// SyncDriver sends synchronous requests. It can be used anywhere, event
// handlers included, at the cost of freezing the page while waiting.
type SyncDriver struct{}

func (b SyncDriver) Do(r *http.Request) (resp *http.Response, err error) {
	defer func() {
		if e := recover(); e != nil {
			if jsErr, ok := e.(*js.Error); ok {
				resp, err = nil, jsErr
				return
			}

			panic(e)
		}
	}()

	req := js.Global.Get("XMLHttpRequest").New()
	req.Call("open", r.Method, r.URL.String(), false)
	req.Set("withCredentials", r.WithCredentials)
	for k, values := range r.Header {
		req.Call("setRequestHeader", k, strings.Join(values, ","))
	}

	if r.Body != nil {
		req.Call("send", string(r.Body))
	} else {
		req.Call("send")
	}

	return &http.Response{
		Body:       []byte(req.Get("responseText").String()),
		StatusCode: req.Get("status").Int(),
		Status:     req.Get("statusText").String(),
		Header:     parseHeaders(req.Call("getAllResponseHeaders").String()),
	}, nil
}
