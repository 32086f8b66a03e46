package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekeep/pkg/binder"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func newRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		var got credentials
		err := binder.JSON()(newRequest(`{"email":" A@X.com ","password":"pw1"}`, "application/json"), &got)
		require.NoError(t, err)
		// Values are bound as sent; normalization belongs to the domain.
		assert.Equal(t, credentials{Email: " A@X.com ", Password: "pw1"}, got)
	})

	t.Run("content type with charset", func(t *testing.T) {
		t.Parallel()
		var got credentials
		err := binder.JSON()(newRequest(`{"email":"a@x.com"}`, "application/json; charset=utf-8"), &got)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", got.Email)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{name: "missing content type", body: `{}`, wantErr: binder.ErrMissingContentType},
		{name: "wrong content type", body: `{}`, contentType: "text/plain", wantErr: binder.ErrUnsupportedMediaType},
		{name: "malformed content type", body: `{}`, contentType: "application/json; =", wantErr: binder.ErrUnsupportedMediaType},
		{name: "empty body", body: ``, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "malformed json", body: `{"email":`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "wrong field type", body: `{"email":42}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "unknown field", body: `{"email":"a@x.com","role":"admin"}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "trailing data", body: `{"email":"a@x.com"}{"email":"b@x.com"}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "too large", body: `{"email":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`, contentType: "application/json", wantErr: binder.ErrBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got credentials
			err := binder.JSON()(newRequest(tt.body, tt.contentType), &got)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := newRequest(`{}`, "application/json").WithContext(ctx)

		var got credentials
		err := binder.JSON()(req, &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
