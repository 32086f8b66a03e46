package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/gatekeep/pkg/logger"
	"github.com/dmitrymomot/gatekeep/pkg/sanitizer"
	"github.com/dmitrymomot/gatekeep/pkg/token"
	"github.com/dmitrymomot/gatekeep/pkg/validator"
)

// Service runs the account flows on top of a Storage.
type Service struct {
	store    Storage
	hasher   PasswordHasher
	sessions *SessionCodec
	resets   *ResetTokens
	logger   *slog.Logger
	now      func() time.Time
	resetTTL time.Duration

	// dummyHash is verified against when the email is unknown so signin
	// costs one bcrypt comparison either way.
	dummyHash string
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHasher replaces the default bcrypt hasher.
func WithHasher(h PasswordHasher) Option {
	return func(s *Service) {
		if h != nil {
			s.hasher = h
		}
	}
}

// WithClock replaces the clock used for timestamps and reset expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithResetTokenTTL overrides ResetTokenTTL.
func WithResetTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.resetTTL = ttl
		}
	}
}

func NewService(store Storage, sessions *SessionCodec, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrNilStorage
	}
	if sessions == nil {
		return nil, ErrNilSessionCodec
	}

	s := &Service{
		store:    store,
		sessions: sessions,
		logger:   logger.Discard(),
		now:      time.Now,
		resetTTL: ResetTokenTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.hasher == nil {
		h, err := NewBcryptHasher(DefaultBcryptCost)
		if err != nil {
			return nil, err
		}
		s.hasher = h
	}

	seed, err := token.Generate(token.DefaultSize)
	if err != nil {
		return nil, err
	}
	if s.dummyHash, err = s.hasher.Hash(seed); err != nil {
		return nil, err
	}

	s.resets = NewResetTokens(store, s.hasher, s.resetTTL, s.now)
	return s, nil
}

// Signup creates an account for email and password.
func (s *Service) Signup(ctx context.Context, email, password string) (*Account, error) {
	if err := validator.Apply(
		validator.RequiredString("email", email),
		validator.Required("password", password),
		validator.MaxBytes("password", password, MaxPasswordBytes),
	); err != nil {
		return nil, err
	}
	email = sanitizer.NormalizeEmail(email)

	// Fast path only. The store's unique index decides concurrent signups.
	if _, err := s.store.AccountByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("check existing account: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	acc := &Account{
		ID:           bson.NewObjectID(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.InfoContext(ctx, "account created",
		logger.AccountID(acc.ID),
		logger.Component("auth"),
		logger.Event("signup"),
	)
	return acc, nil
}

// Signin returns the account when password matches. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Signin(ctx context.Context, email, password string) (*Account, error) {
	if err := validator.Apply(
		validator.RequiredString("email", email),
		validator.Required("password", password),
	); err != nil {
		return nil, err
	}
	email = sanitizer.NormalizeEmail(email)

	acc, err := s.store.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if !s.hasher.Verify(password, acc.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

// IssueSession returns a session token for acc and its expiry.
func (s *Service) IssueSession(acc *Account) (string, time.Time, error) {
	return s.sessions.Issue(acc.ID)
}

// SessionTTL is the lifetime of tokens returned by IssueSession.
func (s *Service) SessionTTL() time.Duration {
	return s.sessions.TTL()
}

// Authorize verifies a session token and returns its account id.
func (s *Service) Authorize(tok string) (bson.ObjectID, error) {
	if tok == "" {
		return bson.NilObjectID, ErrUnauthenticated
	}
	return s.sessions.Verify(tok)
}

// Account loads the account with id. ErrAccountNotFound means it is gone.
func (s *Service) Account(ctx context.Context, id bson.ObjectID) (*Account, error) {
	acc, err := s.store.AccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	return acc, nil
}

// ForgotPassword issues a reset token for email. It returns an empty token
// and no error when the email is unknown.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := validator.Apply(validator.RequiredString("email", email)); err != nil {
		return "", err
	}
	email = sanitizer.NormalizeEmail(email)

	raw, err := s.resets.Issue(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			s.logger.DebugContext(ctx, "reset requested for unknown email",
				logger.Component("auth"),
				logger.Event("forgot_password"),
			)
			return "", nil
		}
		return "", err
	}

	s.logger.InfoContext(ctx, "reset token issued",
		logger.Component("auth"),
		logger.Event("forgot_password"),
	)
	return raw, nil
}

// ResetPassword replaces the password of the account owning raw.
func (s *Service) ResetPassword(ctx context.Context, raw, newPassword string) (*Account, error) {
	if err := validator.Apply(
		validator.RequiredString("token", raw),
		validator.Required("password", newPassword),
		validator.MaxBytes("password", newPassword, MaxPasswordBytes),
	); err != nil {
		return nil, err
	}

	acc, err := s.resets.Consume(ctx, raw, newPassword)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "password reset",
		logger.AccountID(acc.ID),
		logger.Component("auth"),
		logger.Event("reset_password"),
	)
	return acc, nil
}
