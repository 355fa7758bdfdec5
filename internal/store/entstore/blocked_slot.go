package entstore

import (
	"context"

	"github.com/drvaldez/consultorio_backend/internal/repo"
	entblocked "github.com/drvaldez/consultorio_backend/internal/repo/blockedslot"
	"github.com/drvaldez/consultorio_backend/internal/repo/predicate"
	"github.com/drvaldez/consultorio_backend/internal/store"
)

type blockedSlotRepo struct {
	db *repo.Client
}

func (r *blockedSlotRepo) Create(ctx context.Context, date, tm string) (*store.BlockedSlot, error) {
	e, err := r.db.BlockedSlot.Create().
		SetDate(date).
		SetTime(tm).
		Save(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return blockedSlotFromEnt(e), nil
}

func (r *blockedSlotRepo) Delete(ctx context.Context, date, tm string) error {
	n, err := r.db.BlockedSlot.Delete().
		Where(entblocked.Date(date), entblocked.Time(tm)).
		Exec(ctx)
	if err != nil {
		return mapErr(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *blockedSlotRepo) Exists(ctx context.Context, date, tm string) (bool, error) {
	exists, err := r.db.BlockedSlot.Query().
		Where(entblocked.Date(date), entblocked.Time(tm)).
		Exist(ctx)
	if err != nil {
		return false, mapErr(err)
	}
	return exists, nil
}

func (r *blockedSlotRepo) ListByDate(ctx context.Context, date string) ([]*store.BlockedSlot, error) {
	return r.query(ctx, entblocked.Date(date))
}

func (r *blockedSlotRepo) ListRange(ctx context.Context, fromDate, toDate string) ([]*store.BlockedSlot, error) {
	var preds []predicate.BlockedSlot
	if fromDate != "" {
		preds = append(preds, entblocked.DateGTE(fromDate))
	}
	if toDate != "" {
		preds = append(preds, entblocked.DateLTE(toDate))
	}
	return r.query(ctx, preds...)
}

func (r *blockedSlotRepo) query(ctx context.Context, preds ...predicate.BlockedSlot) ([]*store.BlockedSlot, error) {
	entities, err := r.db.BlockedSlot.Query().
		Where(preds...).
		Order(entblocked.ByDate(), entblocked.ByTime()).
		All(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*store.BlockedSlot, len(entities))
	for i, e := range entities {
		out[i] = blockedSlotFromEnt(e)
	}
	return out, nil
}

func blockedSlotFromEnt(e *repo.BlockedSlot) *store.BlockedSlot {
	return &store.BlockedSlot{
		ID:        e.ID,
		Date:      e.Date,
		Time:      e.Time,
		CreatedAt: e.CreatedAt,
	}
}
