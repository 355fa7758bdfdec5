package entstore

import (
	"context"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/repo"
	enthistory "github.com/drvaldez/consultorio_backend/internal/repo/historyentry"
	"github.com/drvaldez/consultorio_backend/internal/repo/predicate"
	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/pkg/constants"
)

type historyRepo struct {
	db *repo.Client
}

func (r *historyRepo) Create(ctx context.Context, e *store.HistoryEntry) (*store.HistoryEntry, error) {
	entity, err := r.db.HistoryEntry.Create().
		SetPatientID(e.PatientID).
		SetType(enthistory.Type(e.Type)).
		SetPayload(e.Payload).
		Save(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return historyFromEnt(entity), nil
}

func (r *historyRepo) Get(ctx context.Context, id uuid.UUID) (*store.HistoryEntry, error) {
	entity, err := r.db.HistoryEntry.Get(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return historyFromEnt(entity), nil
}

func (r *historyRepo) Update(ctx context.Context, e *store.HistoryEntry) (*store.HistoryEntry, error) {
	entity, err := r.db.HistoryEntry.UpdateOneID(e.ID).
		SetPayload(e.Payload).
		Save(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return historyFromEnt(entity), nil
}

func (r *historyRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*store.HistoryEntry, error) {
	return r.query(ctx, enthistory.PatientID(patientID))
}

func (r *historyRepo) ListByType(ctx context.Context, t store.HistoryType, fromDate, toDate string) ([]*store.HistoryEntry, error) {
	preds := []predicate.HistoryEntry{enthistory.TypeEQ(enthistory.Type(t))}

	if fromDate != "" {
		from, err := time.Parse(constants.DateLayout, fromDate)
		if err == nil {
			preds = append(preds, enthistory.CreatedAtGTE(from))
		}
	}
	if toDate != "" {
		to, err := time.Parse(constants.DateLayout, toDate)
		if err == nil {
			// Inclusive day bound
			preds = append(preds, enthistory.CreatedAtLT(to.AddDate(0, 0, 1)))
		}
	}

	return r.query(ctx, preds...)
}

func (r *historyRepo) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	_, err := r.db.HistoryEntry.Delete().
		Where(enthistory.PatientID(patientID)).
		Exec(ctx)
	return mapErr(err)
}

func (r *historyRepo) query(ctx context.Context, preds ...predicate.HistoryEntry) ([]*store.HistoryEntry, error) {
	entities, err := r.db.HistoryEntry.Query().
		Where(preds...).
		Order(enthistory.ByCreatedAt(sql.OrderDesc()), enthistory.ByID(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*store.HistoryEntry, len(entities))
	for i, e := range entities {
		out[i] = historyFromEnt(e)
	}
	return out, nil
}

func historyFromEnt(e *repo.HistoryEntry) *store.HistoryEntry {
	return &store.HistoryEntry{
		ID:        e.ID,
		PatientID: e.PatientID,
		Type:      store.HistoryType(e.Type),
		Payload:   e.Payload,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
