package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/gatekeep/handler"
	"github.com/dmitrymomot/gatekeep/pkg/binder"
)

// Mountable is implemented by feature modules that serve a sub-tree.
type Mountable interface {
	Handle() http.Handler
}

var _ Mountable = (*AuthService)(nil)

// Handle returns the auth routes.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Route("/api", func(api chi.Router) {
//	    api.Mount("/auth", account.NewAuthService(svc, opts...).Handle())
//	})
func (s *AuthService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/signup", handler.Wrap(s.signup,
		handler.WithBinder[handler.Context, CredentialsRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, CredentialsRequest](s.errorHandler),
	))
	r.Post("/signin", handler.Wrap(s.signin,
		handler.WithBinder[handler.Context, CredentialsRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, CredentialsRequest](s.errorHandler),
	))
	r.Post("/signout", handler.Wrap(s.signout,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/forgot", handler.Wrap(s.forgotPassword,
		handler.WithBinder[handler.Context, ForgotPasswordRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, ForgotPasswordRequest](s.errorHandler),
	))
	r.Post("/reset", handler.Wrap(s.resetPassword,
		handler.WithBinder[handler.Context, ResetPasswordRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, ResetPasswordRequest](s.errorHandler),
	))

	r.Group(func(r chi.Router) {
		r.Use(s.RequireSession)
		r.Get("/me", handler.Wrap(s.me,
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))
	})

	return r
}
