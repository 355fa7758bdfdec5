package entstore

import (
	"context"

	"github.com/drvaldez/consultorio_backend/internal/repo"
	entuser "github.com/drvaldez/consultorio_backend/internal/repo/user"
	"github.com/drvaldez/consultorio_backend/internal/store"
)

type userRepo struct {
	db *repo.Client
}

func (r *userRepo) Create(ctx context.Context, u *store.User) (*store.User, error) {
	e, err := r.db.User.Create().
		SetUsername(u.Username).
		SetPasswordHash(u.PasswordHash).
		SetRole(u.Role).
		Save(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return userFromEnt(e), nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*store.User, error) {
	e, err := r.db.User.Query().
		Where(entuser.Username(username)).
		Only(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return userFromEnt(e), nil
}

func userFromEnt(e *repo.User) *store.User {
	return &store.User{
		ID:           e.ID,
		Username:     e.Username,
		PasswordHash: e.PasswordHash,
		Role:         e.Role,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
