// Package jwt signs and verifies HS256 JSON Web Tokens.
//
// Service wraps github.com/golang-jwt/jwt/v5 with a fixed algorithm, a
// mandatory expiry and an injectable clock:
//
//	svc, err := jwt.NewFromString(secret)
//	tok, err := svc.Generate(jwt.RegisteredClaims{
//		Subject:   id,
//		IssuedAt:  jwt.NewNumericDate(now),
//		ExpiresAt: jwt.NewNumericDate(now.Add(8 * time.Hour)),
//	})
//
//	var claims jwt.RegisteredClaims
//	err = svc.Parse(tok, &claims)
//
// Parse errors always wrap ErrInvalidToken; expired tokens additionally
// wrap ErrExpiredToken and bad signatures ErrInvalidSignature.
//
// CookieTokenExtractor reads the raw token from a request cookie and
// reports ErrMissingToken when the cookie is absent.
package jwt
