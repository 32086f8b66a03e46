package httpserver_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/gatekeep/pkg/httpserver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// startServer runs srv on a free loopback port and returns its address and
// the Run result channel.
func startServer(t *testing.T, ctx context.Context, handler http.Handler, opts ...httpserver.Option) (*httpserver.Server, string, <-chan error) {
	t.Helper()

	addrCh := make(chan string, 1)
	opts = append([]httpserver.Option{
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(200 * time.Millisecond),
		httpserver.WithStartHook(func(_ *slog.Logger, addr string) { addrCh <- addr }),
	}, opts...)
	srv := httpserver.New(opts...)

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, handler) }()

	select {
	case addr := <-addrCh:
		return srv, addr, done
	case err := <-done:
		require.FailNow(t, "server did not start", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start in time")
	}
	return nil, "", nil
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(2 * time.Second):
		require.FailNow(t, "run did not finish")
	}
}

func TestRunAndCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, addr, done := startServer(t, ctx, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	waitDone(t, done)
}

func TestManualShutdown(t *testing.T) {
	srv, _, done := startServer(t, context.Background(), http.NewServeMux())

	require.NoError(t, srv.Shutdown(context.Background()), "first shutdown")
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown")
	waitDone(t, done)
}

func TestShutdownBeforeRun(t *testing.T) {
	srv := httpserver.New()
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestStartError(t *testing.T) {
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:-1"))
	err := srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestAlreadyRunning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv, _, done := startServer(t, ctx, http.NewServeMux())

	err := srv.Run(context.Background(), http.NewServeMux())
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	waitDone(t, done)
}

func TestHooksAndLogger(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	var stopped atomic.Bool
	var hookLogger atomic.Pointer[slog.Logger]

	ctx, cancel := context.WithCancel(context.Background())
	_, _, done := startServer(t, ctx, nil,
		httpserver.WithLogger(l),
		httpserver.WithStopHook(func(lg *slog.Logger) {
			hookLogger.Store(lg)
			stopped.Store(true)
		}),
	)

	cancel()
	waitDone(t, done)
	assert.True(t, stopped.Load(), "stop hook not executed")
	assert.Same(t, l, hookLogger.Load())
}

func TestNewFromConfig(t *testing.T) {
	cfg := httpserver.Config{Host: "127.0.0.1", Port: 0, ReadTimeout: time.Second}
	assert.Equal(t, "127.0.0.1:0", cfg.Addr())

	addrCh := make(chan string, 1)
	srv := httpserver.NewFromConfig(cfg,
		httpserver.WithStartHook(func(_ *slog.Logger, addr string) { addrCh <- addr }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()

	select {
	case addr := <-addrCh:
		assert.NotEqual(t, "127.0.0.1:0", addr)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "server did not start")
	}
	cancel()
	waitDone(t, done)
}

func TestOptionPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { httpserver.WithAddr("") }},
		{"read", func() { httpserver.WithReadTimeout(-time.Second) }},
		{"write", func() { httpserver.WithWriteTimeout(-time.Second) }},
		{"idle", func() { httpserver.WithIdleTimeout(0) }},
		{"shutdown", func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{"start hook", func() { httpserver.WithStartHook(nil) }},
		{"stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}

	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}
