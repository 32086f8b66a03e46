package account

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/gatekeep/handler"
	"github.com/dmitrymomot/gatekeep/pkg/auth"
	"github.com/dmitrymomot/gatekeep/pkg/cookie"
	"github.com/dmitrymomot/gatekeep/pkg/environment"
	"github.com/dmitrymomot/gatekeep/pkg/logger"
)

// CredentialsRequest is the body of signup and signin.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// User is the public view of an account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func newUser(acc *auth.Account) User {
	return User{ID: acc.ID.Hex(), Email: acc.Email}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

const (
	msgSignup       = "Signup successful."
	msgSignin       = "Signin successful."
	msgSignout      = "Signed out."
	msgForgot       = "If that account exists, a reset token was created."
	msgForgotDev    = "Reset token generated (dev mode)."
	msgResetSuccess = "Password has been reset."
)

func (s *AuthService) signup(ctx handler.Context, req CredentialsRequest) handler.Response {
	acc, err := s.auth.Signup(ctx, req.Email, req.Password)
	if err != nil {
		return s.failure("signup", err, ErrCredentialsRequired)
	}

	setCookie, err := s.startSession(acc)
	if err != nil {
		return s.failure("signup", err, ErrCredentialsRequired)
	}

	s.metrics.RecordAuthEvent("signup", outcomeSuccess)
	return handler.JSON(UserResponse{Message: msgSignup, User: newUser(acc)},
		handler.WithJSONStatus(http.StatusCreated),
		handler.WithBeforeRender(setCookie),
	)
}

func (s *AuthService) signin(ctx handler.Context, req CredentialsRequest) handler.Response {
	acc, err := s.auth.Signin(ctx, req.Email, req.Password)
	if err != nil {
		return s.failure("signin", err, ErrCredentialsRequired)
	}

	setCookie, err := s.startSession(acc)
	if err != nil {
		return s.failure("signin", err, ErrCredentialsRequired)
	}

	s.metrics.RecordAuthEvent("signin", outcomeSuccess)
	return handler.JSON(UserResponse{Message: msgSignin, User: newUser(acc)},
		handler.WithBeforeRender(setCookie),
	)
}

func (s *AuthService) forgotPassword(ctx handler.Context, req ForgotPasswordRequest) handler.Response {
	raw, err := s.auth.ForgotPassword(ctx, req.Email)
	if err != nil {
		return s.failure("forgot_password", err, ErrEmailRequired)
	}

	s.metrics.RecordAuthEvent("forgot_password", outcomeSuccess)
	// The request environment is checked as well so a misconfigured
	// production process still never echoes a token.
	if s.devResetTokens && raw != "" && !environment.IsProduction(ctx) {
		s.logger.WarnContext(ctx, "reset token returned in response",
			logger.Component("account"),
			logger.Event("dev_reset_token"),
		)
		return handler.JSON(ForgotPasswordResponse{Message: msgForgotDev, ResetToken: raw})
	}
	return handler.JSON(ForgotPasswordResponse{Message: msgForgot})
}

func (s *AuthService) resetPassword(ctx handler.Context, req ResetPasswordRequest) handler.Response {
	if _, err := s.auth.ResetPassword(ctx, req.Token, req.Password); err != nil {
		return s.failure("reset_password", err, ErrResetFieldsRequired)
	}

	s.metrics.RecordAuthEvent("reset_password", outcomeSuccess)
	return handler.JSON(MessageResponse{Message: msgResetSuccess})
}

// startSession issues a session token and returns the function that sets
// its cookie.
func (s *AuthService) startSession(acc *auth.Account) (func(http.ResponseWriter), error) {
	tok, _, err := s.auth.IssueSession(acc)
	if err != nil {
		return nil, err
	}
	maxAge := int(s.auth.SessionTTL() / time.Second)

	return func(w http.ResponseWriter) {
		s.cookies.Set(w, SessionCookie, tok, cookie.WithMaxAge(maxAge))
	}, nil
}

func (s *AuthService) failure(op string, err error, required handler.HTTPError) handler.Response {
	httpErr, outcome := mapError(err, required)
	s.metrics.RecordAuthEvent(op, outcome)
	return handler.Error(httpErr)
}
