package handler

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	status  int
	body    any
	headers http.Header
	before  []func(w http.ResponseWriter)
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	for _, fn := range j.before {
		fn(w)
	}
	for k, vs := range j.headers {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithHeader adds a response header.
func WithHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		if r.headers == nil {
			r.headers = make(http.Header)
		}
		r.headers.Add(key, value)
	}
}

// WithBeforeRender runs fn against the writer before the status line is
// sent, for side effects such as setting cookies.
func WithBeforeRender(fn func(w http.ResponseWriter)) JSONOption {
	return func(r *jsonResponse) {
		if fn != nil {
			r.before = append(r.before, fn)
		}
	}
}

// JSON encodes v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Error returns a Response that hands err to the configured ErrorHandler
// without writing anything itself.
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
