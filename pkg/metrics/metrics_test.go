package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekeep/pkg/metrics"
)

func TestRecordAuthEvent(t *testing.T) {
	t.Parallel()
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	m.RecordAuthEvent("signin", "success")
	m.RecordAuthEvent("signin", "success")
	m.RecordAuthEvent("signin", "invalid_credentials")

	assert.InDelta(t, 2, testutil.ToFloat64(m.AuthEvents.WithLabelValues("signin", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.AuthEvents.WithLabelValues("signin", "invalid_credentials")), 0)
}

func TestRecordAuthEvent_NilReceiver(t *testing.T) {
	t.Parallel()
	var m *metrics.Metrics
	assert.NotPanics(t, func() { m.RecordAuthEvent("signup", "success") })
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	r.Get("/implicit", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/orders/1", "/api/orders/2", "/implicit", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/orders/{id}", http.MethodGet, "202")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/implicit", http.MethodGet, "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("unmatched", http.MethodGet, "404")), 0)
}

func TestHandler(t *testing.T) {
	t.Parallel()
	m := metrics.New()
	m.RecordAuthEvent("signup", "success")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `gatekeep_auth_events_total{operation="signup",outcome="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
