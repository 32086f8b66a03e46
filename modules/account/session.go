package account

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/gatekeep/handler"
	"github.com/dmitrymomot/gatekeep/pkg/auth"
	"github.com/dmitrymomot/gatekeep/pkg/jwt"
)

// RequireSession rejects requests without a valid session cookie with 401
// and stores the verified account id in the request context otherwise.
func (s *AuthService) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := s.extractToken(r)
		if err != nil {
			s.metrics.RecordAuthEvent("session", outcomeUnauthenticated)
			if errors.Is(err, jwt.ErrMissingToken) {
				s.fail(w, r, ErrNotAuthenticated.Wrap(err))
				return
			}
			s.fail(w, r, ErrInvalidSession.Wrap(err))
			return
		}

		id, err := s.auth.Authorize(raw)
		if err != nil {
			s.metrics.RecordAuthEvent("session", outcomeUnauthenticated)
			s.fail(w, r, ErrInvalidSession.Wrap(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithAccountID(r.Context(), id)))
	})
}

func (s *AuthService) signout(_ handler.Context, _ struct{}) handler.Response {
	s.metrics.RecordAuthEvent("signout", outcomeSuccess)
	return handler.JSON(MessageResponse{Message: msgSignout},
		handler.WithBeforeRender(func(w http.ResponseWriter) {
			s.cookies.Delete(w, SessionCookie)
		}),
	)
}

func (s *AuthService) me(ctx handler.Context, _ struct{}) handler.Response {
	id, ok := auth.AccountIDFromContext(ctx)
	if !ok {
		return handler.Error(ErrNotAuthenticated)
	}

	acc, err := s.auth.Account(ctx, id)
	if err != nil {
		return s.failure("session", err, ErrNotAuthenticated)
	}
	return handler.JSON(UserResponse{User: newUser(acc)})
}
