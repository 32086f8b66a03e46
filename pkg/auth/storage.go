package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Storage persists accounts. Email uniqueness must be enforced by the store
// itself so concurrent signups cannot both succeed.
type Storage interface {
	// CreateAccount inserts acc, returning ErrEmailTaken when the email exists.
	CreateAccount(ctx context.Context, acc *Account) error
	AccountByEmail(ctx context.Context, email string) (*Account, error)
	AccountByID(ctx context.Context, id bson.ObjectID) (*Account, error)
	// SetResetToken replaces any pending reset on the account with email.
	// It returns ErrAccountNotFound when no account has that email.
	SetResetToken(ctx context.Context, email, digest string, expiresAt time.Time) error
	// ConsumeResetToken atomically finds the account whose reset digest
	// equals digest and whose expiry is after now, stores passwordHash and
	// clears both reset fields. It returns ErrAccountNotFound when nothing
	// matched.
	ConsumeResetToken(ctx context.Context, digest string, now time.Time, passwordHash string) (*Account, error)
}
