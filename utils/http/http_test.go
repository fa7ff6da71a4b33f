package http

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	req, err := NewRequest("GET", "/test", nil)
	require.NoError(t, err)
	h := req.Header
	k := []string{"a", "b"}
	v := []string{"v1", "v2"}

	h.Add(k[0], v[0])
	require.Equal(t, v[0], h.Get(k[0]))
	h.Add(k[1], v[0])
	require.Equal(t, v[0], h.Get(k[1]))
	h.Add(k[0], v[1])
	require.Equal(t, v[0], h.Get(k[0]))
	require.Equal(t, v, h[k[0]])

	h.Set(k[0], v[1])
	require.Equal(t, v[1], h.Get(k[0]))
	require.Len(t, h[k[0]], 1)
	require.Equal(t, "", h.Get("missing"))
}

func TestClient(t *testing.T) {
	sb := &stubBackend{}
	sb.Response(200, "ok")
	c := NewClient(sb)
	c.Timeout = time.Second

	resp, err := c.Get("/content.json")
	require.NoError(t, err)
	require.True(t, resp.OK())
	require.Equal(t, "ok", string(resp.Body))
	require.Len(t, sb.requests, 1)
	require.Equal(t, "GET", sb.requests[0].Method)
	require.Equal(t, "/content.json", sb.requests[0].URL.Path)
	require.Equal(t, time.Second, sb.requests[0].Timeout)

	sb.Response(404, "")
	resp, err = c.Get("/content.json")
	require.NoError(t, err)
	require.False(t, resp.OK())

	boom := errors.New("boom")
	sb.Err = boom
	_, err = c.Get("/content.json")
	require.ErrorIs(t, err, boom)

	_, err = c.Get("%zz")
	require.Error(t, err)

	_, err = (&Client{}).Get("/")
	require.ErrorIs(t, err, ErrNoDriver)
}
