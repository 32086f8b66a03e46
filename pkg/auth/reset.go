package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/gatekeep/pkg/token"
)

// ResetTokenTTL is how long a reset token can be consumed after issue.
const ResetTokenTTL = 30 * time.Minute

// ResetTokens issues and consumes one-time password reset tokens. Only the
// SHA-256 digest of a token is stored.
type ResetTokens struct {
	store    Storage
	hasher   PasswordHasher
	ttl      time.Duration
	now      func() time.Time
	generate func() (string, error)
}

func NewResetTokens(store Storage, hasher PasswordHasher, ttl time.Duration, now func() time.Time) *ResetTokens {
	if ttl <= 0 {
		ttl = ResetTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &ResetTokens{
		store:    store,
		hasher:   hasher,
		ttl:      ttl,
		now:      now,
		generate: func() (string, error) { return token.Generate(token.DefaultSize) },
	}
}

// Issue stores a fresh token for the account with email, replacing any
// pending one, and returns the raw token. ErrAccountNotFound is returned
// unchanged so the caller decides what to reveal.
func (m *ResetTokens) Issue(ctx context.Context, email string) (string, error) {
	raw, err := m.generate()
	if err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}

	if err := m.store.SetResetToken(ctx, email, token.Hash(raw), m.now().Add(m.ttl)); err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return raw, nil
}

// Consume sets newPassword on the account owning raw and invalidates the
// token. Wrong, expired and used tokens all yield ErrInvalidResetToken.
func (m *ResetTokens) Consume(ctx context.Context, raw, newPassword string) (*Account, error) {
	if raw == "" {
		return nil, ErrInvalidResetToken
	}

	// Hashing first keeps the cost identical for valid and invalid tokens.
	hash, err := m.hasher.Hash(newPassword)
	if err != nil {
		return nil, err
	}

	acc, err := m.store.ConsumeResetToken(ctx, token.Hash(raw), m.now(), hash)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, fmt.Errorf("consume reset token: %w", err)
	}
	return acc, nil
}
