// Package session manages opaque bearer tokens backed by Redis.
// A token maps to the username and role of the signed-in doctor and
// expires after the configured TTL.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

var (
	ErrNotFound = errors.New("session not found or expired")
)

// Data is what a session token resolves to.
type Data struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager creates, verifies, and destroys sessions in Redis.
type Manager struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewManager(rdb *goredis.Client, ttl time.Duration) *Manager {
	return &Manager{rdb: rdb, ttl: ttl}
}

// Create issues a new opaque token for the given user.
func (m *Manager) Create(ctx context.Context, username, role string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	data := Data{
		Username:  username,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := m.rdb.Set(ctx, keyPrefix+token, payload, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Verify resolves a token to its session data and refreshes the TTL.
func (m *Manager) Verify(ctx context.Context, token string) (*Data, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	payload, err := m.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	// Sliding expiration: each authenticated request extends the session.
	if err := m.rdb.Expire(ctx, keyPrefix+token, m.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to refresh session ttl: %w", err)
	}

	return &data, nil
}

// Destroy invalidates a token. Destroying an unknown token is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
