package jwt

import (
	"errors"
	"net/http"
)

// TokenExtractorFunc extracts a raw token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// CookieTokenExtractor reads the token from the named cookie.
func CookieTokenExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		c, err := r.Cookie(cookieName)
		if err != nil {
			if errors.Is(err, http.ErrNoCookie) {
				return "", ErrMissingToken
			}
			return "", errors.Join(ErrInvalidToken, err)
		}
		if c.Value == "" {
			return "", ErrMissingToken
		}
		return c.Value, nil
	}
}
