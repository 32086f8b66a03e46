package account

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/gatekeep/handler"
	"github.com/dmitrymomot/gatekeep/pkg/auth"
	"github.com/dmitrymomot/gatekeep/pkg/cookie"
	"github.com/dmitrymomot/gatekeep/pkg/jwt"
	"github.com/dmitrymomot/gatekeep/pkg/logger"
	"github.com/dmitrymomot/gatekeep/pkg/metrics"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "auth_token"

type AuthService struct {
	auth         *auth.Service
	cookies      *cookie.Manager
	metrics      *metrics.Metrics
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	extractToken jwt.TokenExtractorFunc

	// devResetTokens echoes raw reset tokens in the forgot response.
	devResetTokens bool
}

type Option func(*AuthService)

// WithCookieManager sets the manager used for the session cookie. The
// default is HttpOnly, SameSite=Lax, Path=/ and not Secure.
func WithCookieManager(m *cookie.Manager) Option {
	return func(s *AuthService) {
		if m != nil {
			s.cookies = m
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *AuthService) {
		s.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *AuthService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDevResetTokens includes the raw reset token in forgot responses.
// Never enable it in production: anyone can then reset any password.
// Requests whose context carries environment.Production never get a token,
// whatever this option says.
func WithDevResetTokens(enabled bool) Option {
	return func(s *AuthService) {
		s.devResetTokens = enabled
	}
}

func NewAuthService(svc *auth.Service, opts ...Option) *AuthService {
	s := &AuthService{
		auth:         svc,
		cookies:      cookie.New(),
		logger:       logger.Discard(),
		extractToken: jwt.CookieTokenExtractor(SessionCookie),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.errorHandler = handler.NewErrorHandler(s.logger)
	return s
}

// fail renders err outside of handler.Wrap, for middleware.
func (s *AuthService) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.errorHandler(handler.NewContext(w, r), err)
}
