package mongostore

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/gatekeep/pkg/auth"
)

type accountDocument struct {
	ID                  bson.ObjectID `bson:"_id"`
	Email               string        `bson:"email"`
	PasswordHash        string        `bson:"passwordHash"`
	ResetTokenHash      *string       `bson:"resetTokenHash"`
	ResetTokenExpiresAt *time.Time    `bson:"resetTokenExpiresAt"`
	CreatedAt           time.Time     `bson:"createdAt"`
	UpdatedAt           time.Time     `bson:"updatedAt"`
}

func fromAccount(a *auth.Account) accountDocument {
	return accountDocument{
		ID:                  a.ID,
		Email:               a.Email,
		PasswordHash:        a.PasswordHash,
		ResetTokenHash:      a.ResetTokenHash,
		ResetTokenExpiresAt: a.ResetTokenExpiresAt,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func (d accountDocument) toAccount() *auth.Account {
	acc := &auth.Account{
		ID:           d.ID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
	if d.ResetTokenHash != nil && d.ResetTokenExpiresAt != nil {
		h := *d.ResetTokenHash
		t := d.ResetTokenExpiresAt.UTC()
		acc.ResetTokenHash = &h
		acc.ResetTokenExpiresAt = &t
	}
	return acc
}
