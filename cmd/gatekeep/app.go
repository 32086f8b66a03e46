package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/gatekeep/handler"
	"github.com/dmitrymomot/gatekeep/modules/account"
	"github.com/dmitrymomot/gatekeep/modules/orders"
	"github.com/dmitrymomot/gatekeep/pkg/auth"
	"github.com/dmitrymomot/gatekeep/pkg/cookie"
	"github.com/dmitrymomot/gatekeep/pkg/environment"
	"github.com/dmitrymomot/gatekeep/pkg/httpserver"
	"github.com/dmitrymomot/gatekeep/pkg/metrics"
	"github.com/dmitrymomot/gatekeep/pkg/requestid"
)

// app holds the collaborators the router is built from.
type app struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics.Metrics
	auth    *account.AuthService
	orders  *orders.Service
	ready   []httpserver.CheckFunc
}

// newApp wires the auth flows on top of store and the order listing on top
// of repo.
func newApp(cfg Config, log *slog.Logger, m *metrics.Metrics, store auth.Storage, repo orders.Repository, ready ...httpserver.CheckFunc) (*app, error) {
	hasher, err := auth.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	sessions, err := auth.NewSessionCodec(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	svc, err := auth.NewService(store, sessions,
		auth.WithHasher(hasher),
		auth.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	cookies := cookie.NewFromConfig(cfg.Cookie, cookie.WithSecure(cfg.Env().IsProduction()))
	authSvc := account.NewAuthService(svc,
		account.WithCookieManager(cookies),
		account.WithMetrics(m),
		account.WithLogger(log),
		account.WithDevResetTokens(cfg.ResetTokenDevMode),
	)

	return &app{
		cfg:     cfg,
		log:     log,
		metrics: m,
		auth:    authSvc,
		orders:  orders.NewService(repo, authSvc.RequireSession, orders.WithLogger(log)),
		ready:   ready,
	}, nil
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(environment.Middleware(a.cfg.Env()))
	r.Use(a.metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{a.cfg.ClientOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", requestid.Header},
		ExposedHeaders:   []string{requestid.Header},
		AllowCredentials: true,
		MaxAge:           int((5 * time.Minute).Seconds()),
	}))

	errorHandler := handler.NewErrorHandler(a.log)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})

	r.Handle("/metrics", a.metrics.Handler())
	r.Route("/api", func(api chi.Router) {
		api.Get("/health", httpserver.LivenessHandler())
		api.Get("/health/ready", httpserver.ReadinessHandler(a.log, a.ready...))
		api.Mount("/auth", a.auth.Handle())
		api.Mount("/orders", a.orders.Handle())
	})

	return r
}
