package entstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/repo"
	entappt "github.com/drvaldez/consultorio_backend/internal/repo/appointment"
	"github.com/drvaldez/consultorio_backend/internal/repo/predicate"
	"github.com/drvaldez/consultorio_backend/internal/store"
)

type appointmentRepo struct {
	db *repo.Client
}

func (r *appointmentRepo) Create(ctx context.Context, a *store.Appointment) (*store.Appointment, error) {
	e, err := r.db.Appointment.Create().
		SetPatientID(a.PatientID).
		SetDate(a.Date).
		SetTime(a.Time).
		SetStatus(entappt.Status(a.Status)).
		SetReason(a.Reason).
		Save(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return appointmentFromEnt(e), nil
}

func (r *appointmentRepo) Get(ctx context.Context, id uuid.UUID) (*store.Appointment, error) {
	e, err := r.db.Appointment.Get(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return appointmentFromEnt(e), nil
}

func (r *appointmentRepo) Update(ctx context.Context, a *store.Appointment) (*store.Appointment, error) {
	update := r.db.Appointment.UpdateOneID(a.ID).
		SetDate(a.Date).
		SetTime(a.Time).
		SetStatus(entappt.Status(a.Status)).
		SetReason(a.Reason)

	if a.CompletedAt != nil {
		update.SetCompletedAt(*a.CompletedAt)
	} else {
		update.ClearCompletedAt()
	}

	e, err := update.Save(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return appointmentFromEnt(e), nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Appointment.DeleteOneID(id).Exec(ctx); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *appointmentRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*store.Appointment, error) {
	return r.query(ctx, entappt.PatientID(patientID))
}

func (r *appointmentRepo) ListByDate(ctx context.Context, date string) ([]*store.Appointment, error) {
	return r.query(ctx, entappt.Date(date))
}

func (r *appointmentRepo) ListBySlot(ctx context.Context, date, tm string) ([]*store.Appointment, error) {
	return r.query(ctx, entappt.Date(date), entappt.Time(tm))
}

func (r *appointmentRepo) ListRange(ctx context.Context, fromDate, toDate string) ([]*store.Appointment, error) {
	var preds []predicate.Appointment
	if fromDate != "" {
		preds = append(preds, entappt.DateGTE(fromDate))
	}
	if toDate != "" {
		preds = append(preds, entappt.DateLTE(toDate))
	}
	return r.query(ctx, preds...)
}

func (r *appointmentRepo) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	_, err := r.db.Appointment.Delete().
		Where(entappt.PatientID(patientID)).
		Exec(ctx)
	return mapErr(err)
}

func (r *appointmentRepo) query(ctx context.Context, preds ...predicate.Appointment) ([]*store.Appointment, error) {
	entities, err := r.db.Appointment.Query().
		Where(preds...).
		Order(entappt.ByDate(), entappt.ByTime(), entappt.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*store.Appointment, len(entities))
	for i, e := range entities {
		out[i] = appointmentFromEnt(e)
	}
	return out, nil
}

func appointmentFromEnt(e *repo.Appointment) *store.Appointment {
	return &store.Appointment{
		ID:          e.ID,
		PatientID:   e.PatientID,
		Date:        e.Date,
		Time:        e.Time,
		Status:      store.AppointmentStatus(e.Status),
		Reason:      e.Reason,
		CompletedAt: e.CompletedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
