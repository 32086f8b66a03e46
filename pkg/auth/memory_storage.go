package auth

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStorage is an in-process Storage for tests and local runs.
type MemoryStorage struct {
	mu      sync.RWMutex
	byID    map[bson.ObjectID]*Account
	byEmail map[string]bson.ObjectID
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:    make(map[bson.ObjectID]*Account),
		byEmail: make(map[string]bson.ObjectID),
	}
}

func (s *MemoryStorage) CreateAccount(ctx context.Context, acc *Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[acc.Email]; ok {
		return ErrEmailTaken
	}
	if acc.ID.IsZero() {
		acc.ID = bson.NewObjectID()
	}

	s.byID[acc.ID] = acc.clone()
	s.byEmail[acc.Email] = acc.ID
	return nil
}

func (s *MemoryStorage) AccountByEmail(ctx context.Context, email string) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return s.byID[id].clone(), nil
}

func (s *MemoryStorage) AccountByID(ctx context.Context, id bson.ObjectID) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acc.clone(), nil
}

func (s *MemoryStorage) SetResetToken(ctx context.Context, email, digest string, expiresAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return ErrAccountNotFound
	}

	acc := s.byID[id]
	acc.ResetTokenHash = &digest
	acc.ResetTokenExpiresAt = &expiresAt
	acc.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStorage) ConsumeResetToken(ctx context.Context, digest string, now time.Time, passwordHash string) (*Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.byID {
		if acc.ResetTokenHash == nil || *acc.ResetTokenHash != digest || !acc.ResetPending(now) {
			continue
		}
		acc.PasswordHash = passwordHash
		acc.ResetTokenHash = nil
		acc.ResetTokenExpiresAt = nil
		acc.UpdatedAt = now
		return acc.clone(), nil
	}
	return nil, ErrAccountNotFound
}
