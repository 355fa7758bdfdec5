package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/internal/store/memstore"
	"github.com/drvaldez/consultorio_backend/pkg/password"
	"github.com/drvaldez/consultorio_backend/pkg/session"
)

// fakeSessions is an in-memory stand-in for the Redis-backed manager.
type fakeSessions struct {
	data map[string]session.Data
	seq  int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{data: make(map[string]session.Data)}
}

func (f *fakeSessions) Create(_ context.Context, username, role string) (string, error) {
	f.seq++
	token := "tok-" + username + "-" + string(rune('0'+f.seq))
	f.data[token] = session.Data{Username: username, Role: role, CreatedAt: time.Now().UTC()}
	return token, nil
}

func (f *fakeSessions) Verify(_ context.Context, token string) (*session.Data, error) {
	d, ok := f.data[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &d, nil
}

func (f *fakeSessions) Destroy(_ context.Context, token string) error {
	delete(f.data, token)
	return nil
}

func newService(t *testing.T) (Service, *fakeSessions) {
	t.Helper()

	db := memstore.New()
	hash, err := password.Hash("super-secreto")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	_, err = db.Users().Create(context.Background(), &store.User{
		Username:     "drvaldez",
		PasswordHash: hash,
		Role:         "medico",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sessions := newFakeSessions()
	return New(db, sessions), sessions
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newService(t)

	res, err := svc.Login(ctx, "drvaldez", "super-secreto")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.Token == "" {
		t.Error("Login() returned empty token")
	}
	if res.Username != "drvaldez" || res.Role != "medico" {
		t.Errorf("Login() = %+v", res)
	}
	if _, ok := sessions.data[res.Token]; !ok {
		t.Error("token was not stored")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "drvaldez", "incorrecta"},
		{"unknown user", "nadie", "super-secreto"},
		{"empty username", "", "super-secreto"},
		{"empty password", "drvaldez", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.username, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestCheckAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	res, err := svc.Login(ctx, "drvaldez", "super-secreto")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	data, err := svc.Check(ctx, res.Token)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if data.Username != "drvaldez" {
		t.Errorf("Check() username = %q", data.Username)
	}

	if err := svc.Logout(ctx, res.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := svc.Check(ctx, res.Token); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("Check(after logout) error = %v, want ErrSessionInvalid", err)
	}

	// Logging out twice is fine.
	if err := svc.Logout(ctx, res.Token); err != nil {
		t.Errorf("Logout(again) error = %v", err)
	}
}

func TestCheckRejectsUnknownToken(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.Check(context.Background(), "no-such-token"); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("Check() error = %v, want ErrSessionInvalid", err)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := memstore.New()
	svc := New(db, newFakeSessions())

	if err := svc.Seed(ctx, "drvaldez", "inicial"); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	user, err := db.Users().GetByUsername(ctx, "drvaldez")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if !password.Match(user.PasswordHash, "inicial") {
		t.Error("seeded hash does not match the password")
	}

	// A second seed keeps the existing account untouched.
	if err := svc.Seed(ctx, "drvaldez", "otra"); err != nil {
		t.Fatalf("Seed(again) error = %v", err)
	}
	user, _ = db.Users().GetByUsername(ctx, "drvaldez")
	if !password.Match(user.PasswordHash, "inicial") {
		t.Error("second seed overwrote the password")
	}
}
