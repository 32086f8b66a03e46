package auth

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/gatekeep/pkg/jwt"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 8 * time.Hour

// SessionCodec issues and verifies signed session tokens.
type SessionCodec struct {
	signer *jwt.Service
	ttl    time.Duration
	now    func() time.Time
}

type SessionOption func(*SessionCodec)

// WithSessionTTL overrides SessionTTL.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(c *SessionCodec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithSessionClock replaces the clock used for issuing and verifying.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(c *SessionCodec) {
		if now != nil {
			c.now = now
		}
	}
}

func NewSessionCodec(secret string, opts ...SessionOption) (*SessionCodec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	c := &SessionCodec{ttl: SessionTTL, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	signer, err := jwt.NewFromString(secret, jwt.WithTimeFunc(func() time.Time { return c.now() }))
	if err != nil {
		return nil, err
	}
	c.signer = signer
	return c, nil
}

// TTL returns the session lifetime.
func (c *SessionCodec) TTL() time.Duration { return c.ttl }

// Issue returns a token for id and its absolute expiry.
func (c *SessionCodec) Issue(id bson.ObjectID) (string, time.Time, error) {
	now := c.now()
	expiresAt := now.Add(c.ttl)

	tok, err := c.signer.Generate(jwt.RegisteredClaims{
		Subject:   id.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue session: %w", err)
	}
	return tok, expiresAt, nil
}

// Verify returns the account id carried by a valid token. Every failure
// wraps ErrUnauthenticated.
func (c *SessionCodec) Verify(token string) (bson.ObjectID, error) {
	var claims jwt.RegisteredClaims
	if err := c.signer.Parse(token, &claims); err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	id, err := bson.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: subject: %w", ErrUnauthenticated, err)
	}
	return id, nil
}
