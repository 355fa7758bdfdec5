// Package entstore implements store.Store on Postgres through the ent
// client generated into internal/repo.
package entstore

import (
	"context"
	"fmt"

	"github.com/drvaldez/consultorio_backend/internal/repo"
	"github.com/drvaldez/consultorio_backend/internal/store"
)

// Store wraps the ent client. Inside WithTx the same type carries a
// transaction-bound client, so the repos are oblivious to whether they
// run inside a transaction.
type Store struct {
	db *repo.Client
}

func New(db *repo.Client) *Store {
	return &Store{db: db}
}

func (s *Store) Patients() store.PatientRepo         { return &patientRepo{db: s.db} }
func (s *Store) Appointments() store.AppointmentRepo { return &appointmentRepo{db: s.db} }
func (s *Store) BlockedSlots() store.BlockedSlotRepo { return &blockedSlotRepo{db: s.db} }
func (s *Store) History() store.HistoryRepo          { return &historyRepo{db: s.db} }
func (s *Store) Users() store.UserRepo               { return &userRepo{db: s.db} }

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	entTx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&Store{db: entTx.Client()}); err != nil {
		if rbErr := entTx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := entTx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// mapErr converts ent's typed errors to the store sentinels.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case repo.IsNotFound(err):
		return store.ErrNotFound
	case repo.IsConstraintError(err):
		return store.ErrAlreadyExists
	default:
		return err
	}
}
