package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account is a registered identity. Email is stored normalized.
// ResetTokenHash and ResetTokenExpiresAt are either both set or both nil.
type Account struct {
	ID                  bson.ObjectID
	Email               string
	PasswordHash        string
	ResetTokenHash      *string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ResetPending reports whether a reset token is stored and still valid at now.
func (a *Account) ResetPending(now time.Time) bool {
	return a.ResetTokenHash != nil && a.ResetTokenExpiresAt != nil && a.ResetTokenExpiresAt.After(now)
}

// clone returns a deep copy so callers never share pointers with a store.
func (a *Account) clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	if a.ResetTokenHash != nil {
		h := *a.ResetTokenHash
		c.ResetTokenHash = &h
	}
	if a.ResetTokenExpiresAt != nil {
		t := *a.ResetTokenExpiresAt
		c.ResetTokenExpiresAt = &t
	}
	return &c
}
