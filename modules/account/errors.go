package account

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/gatekeep/handler"
	"github.com/dmitrymomot/gatekeep/pkg/auth"
	"github.com/dmitrymomot/gatekeep/pkg/validator"
)

// Client facing errors. Messages never reveal which check failed.
var (
	ErrCredentialsRequired = handler.NewHTTPError(http.StatusBadRequest, "Email and password are required.")
	ErrEmailRequired       = handler.NewHTTPError(http.StatusBadRequest, "Email is required.")
	ErrResetFieldsRequired = handler.NewHTTPError(http.StatusBadRequest, "Token and new password are required.")
	ErrPasswordTooLong     = handler.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Password must be at most %d bytes.", auth.MaxPasswordBytes))
	ErrInvalidResetToken   = handler.NewHTTPError(http.StatusBadRequest, "Invalid or expired reset token.")
	ErrInvalidCredentials  = handler.NewHTTPError(http.StatusUnauthorized, "Invalid credentials.")
	ErrNotAuthenticated    = handler.NewHTTPError(http.StatusUnauthorized, "Not authenticated.")
	ErrInvalidSession      = handler.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session.")
	ErrUserNotFound        = handler.NewHTTPError(http.StatusNotFound, "User not found.")
	ErrEmailAlreadyTaken   = handler.NewHTTPError(http.StatusConflict, "Email already registered.")
)

// Outcome labels for the auth events counter.
const (
	outcomeSuccess         = "success"
	outcomeInvalidInput    = "invalid_input"
	outcomeConflict        = "conflict"
	outcomeUnauthenticated = "unauthenticated"
	outcomeNotFound        = "not_found"
	outcomeInvalidToken    = "invalid_token"
	outcomeError           = "error"
)

// mapError translates a service error into the HTTP error and the metrics
// outcome. required is used for every validation failure except a
// password that is only too long.
func mapError(err error, required handler.HTTPError) (handler.HTTPError, string) {
	switch {
	case validator.IsValidationError(err):
		// A missing field wins over a length failure in the same request.
		if errors.Is(err, validator.ErrInvalidLength) && !errors.Is(err, validator.ErrFieldRequired) {
			return ErrPasswordTooLong.Wrap(err), outcomeInvalidInput
		}
		return required.Wrap(err), outcomeInvalidInput
	case errors.Is(err, auth.ErrEmailTaken):
		return ErrEmailAlreadyTaken.Wrap(err), outcomeConflict
	case errors.Is(err, auth.ErrInvalidCredentials):
		return ErrInvalidCredentials.Wrap(err), outcomeUnauthenticated
	case errors.Is(err, auth.ErrInvalidResetToken):
		return ErrInvalidResetToken.Wrap(err), outcomeInvalidToken
	case errors.Is(err, auth.ErrAccountNotFound):
		return ErrUserNotFound.Wrap(err), outcomeNotFound
	case errors.Is(err, auth.ErrUnauthenticated):
		return ErrInvalidSession.Wrap(err), outcomeUnauthenticated
	default:
		return handler.ErrInternalServerError.Wrap(err), outcomeError
	}
}
