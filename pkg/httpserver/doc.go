// Package httpserver runs an HTTP handler with graceful shutdown and
// provides JSON health probes.
//
// Run binds the listener first, so a bad address fails fast with ErrStart,
// then serves until the context is cancelled. Cancellation triggers
// http.Server.Shutdown bounded by the shutdown timeout. Callers wire
// process signals into the context, typically with signal.NotifyContext:
//
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	return srv.Run(ctx, router)
//
// LivenessHandler answers 200 {"ok":true}. ReadinessHandler runs each
// dependency check with the request context and answers 503 {"ok":false}
// when any fails.
package httpserver
