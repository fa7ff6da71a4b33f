package http

type testResponse struct {
	StatusCode int
	Body       string
	Err        error
}

type stubBackend struct {
	testResponse
	requests []*Request
}

func (sb *stubBackend) Do(r *Request) (*Response, error) {
	sb.requests = append(sb.requests, r)
	if sb.Err != nil {
		return nil, sb.Err
	}

	return &Response{
		Body:       []byte(sb.Body),
		StatusCode: sb.StatusCode,
	}, nil
}

func (sb *stubBackend) Response(status int, data string) {
	sb.StatusCode = status
	sb.Body = data
}
