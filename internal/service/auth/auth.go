// Package auth signs the doctor in and out against the users table and
// issues redis-backed session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/pkg/password"
	"github.com/drvaldez/consultorio_backend/pkg/session"
)

type LoginResult struct {
	Token    string
	Username string
	Role     string
}

// SessionStore is the slice of pkg/session the service needs.
// *session.Manager satisfies it.
type SessionStore interface {
	Create(ctx context.Context, username, role string) (string, error)
	Verify(ctx context.Context, token string) (*session.Data, error)
	Destroy(ctx context.Context, token string) error
}

type Service interface {
	Login(ctx context.Context, username, pass string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	// Check resolves the session behind a token; ErrSessionInvalid when
	// there is none.
	Check(ctx context.Context, token string) (*session.Data, error)
	// Seed creates the doctor account when it does not exist yet. Used
	// by the migration command; a second run is a no-op.
	Seed(ctx context.Context, username, pass string) error
}

type service struct {
	db       store.Store
	sessions SessionStore
}

func New(db store.Store, sessions SessionStore) Service {
	return &service{db: db, sessions: sessions}
}

func (s *service) Login(ctx context.Context, username, pass string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.db.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !password.Match(user.PasswordHash, pass) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &LoginResult{Token: token, Username: user.Username, Role: user.Role}, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

func (s *service) Check(ctx context.Context, token string) (*session.Data, error) {
	data, err := s.sessions.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	return data, nil
}

func (s *service) Seed(ctx context.Context, username, pass string) error {
	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		return fmt.Errorf("seed user: username and password are required")
	}

	if _, err := s.db.Users().GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.db.Users().Create(ctx, &store.User{
		Username:     username,
		PasswordHash: hash,
		Role:         "medico",
	})
	if err != nil && !errors.Is(err, store.ErrAlreadyExists) {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
