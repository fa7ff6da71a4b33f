// Package srvhttp serves http driver requests straight from an http.Handler,
// for pre-rendering pages on the server without a network round trip.
package srvhttp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	gourl "net/url"

	tinyhttp "github.com/gowade/tinyui/utils/http"
)

type ServerBackend struct {
	Server http.Handler
	// ClientReq is the request being pre-rendered. Its headers are copied
	// onto every request. It may be nil.
	ClientReq *http.Request
}

// target resolves relative request urls the way the browser would, against
// the page being rendered.
func (b *ServerBackend) target(u *gourl.URL) string {
	base := &gourl.URL{Path: "/"}
	if b.ClientReq != nil && b.ClientReq.URL != nil {
		base = b.ClientReq.URL
	}

	return base.ResolveReference(u).RequestURI()
}

func (b *ServerBackend) Do(wr *tinyhttp.Request) (*tinyhttp.Response, error) {
	req := httptest.NewRequest(wr.Method, b.target(wr.URL), bytes.NewReader(wr.Body))
	if b.ClientReq != nil {
		for k, v := range b.ClientReq.Header {
			req.Header[k] = append([]string(nil), v...)
		}
		req.Host = b.ClientReq.Host
	}

	for k, v := range wr.Header {
		req.Header[k] = append([]string(nil), v...)
	}

	resp := httptest.NewRecorder()
	b.Server.ServeHTTP(resp, req)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &tinyhttp.Response{
		Body:       data,
		StatusCode: resp.Code,
		Status:     fmt.Sprint(resp.Code),
		Header:     tinyhttp.Header(resp.Header()),
	}, nil
}
