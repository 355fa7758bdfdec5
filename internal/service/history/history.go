// Package history manages the per-patient clinical timeline: saving
// prescriptions, diagnoses, studies, notes, and payments, plus the
// reports built over them. Appointment events are written by the agenda
// service and are read-only here.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SaveItemRequest struct {
	PatientID uuid.UUID
	// EntryID, when set, overwrites that entry's payload in place
	// instead of appending a new one.
	EntryID *uuid.UUID
	Type    store.HistoryType
	Payload json.RawMessage
}

type PaymentRow struct {
	EntryID     uuid.UUID `json:"entry_id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	RecordedAt  time.Time `json:"recorded_at"`
	Payment     Payment   `json:"payment"`
}

type PrescriptionRow struct {
	EntryID      uuid.UUID    `json:"entry_id"`
	PatientID    uuid.UUID    `json:"patient_id"`
	PatientName  string       `json:"patient_name"`
	RecordedAt   time.Time    `json:"recorded_at"`
	Prescription Prescription `json:"prescription"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	SaveItem(ctx context.Context, req SaveItemRequest) (*store.HistoryEntry, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*store.HistoryEntry, error)
	// FindPatient resolves the patient owning a history entry, used by
	// the edit flows that start from a timeline row.
	FindPatient(ctx context.Context, entryID uuid.UUID) (*store.Patient, error)

	PaymentsReport(ctx context.Context, fromDate, toDate string) ([]PaymentRow, error)
	PrescriptionsReport(ctx context.Context, fromDate, toDate string) ([]PrescriptionRow, error)
}

type service struct {
	db store.Store
}

func New(db store.Store) Service {
	return &service{db: db}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

func (s *service) SaveItem(ctx context.Context, req SaveItemRequest) (*store.HistoryEntry, error) {
	payload, err := decodePayload(req.Type, req.Payload)
	if err != nil {
		return nil, err
	}

	if req.EntryID != nil {
		return s.updateInPlace(ctx, *req.EntryID, req.Type, payload)
	}

	if _, err := s.db.Patients().Get(ctx, req.PatientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	entry, err := s.db.History().Create(ctx, &store.HistoryEntry{
		PatientID: req.PatientID,
		Type:      req.Type,
		Payload:   payload,
	})
	if err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}
	return entry, nil
}

// updateInPlace overwrites the payload of an existing entry. The entry
// keeps its identity and position; only its data and update stamp
// change. Appointment events never reach here: decodePayload already
// rejected their types.
func (s *service) updateInPlace(ctx context.Context, entryID uuid.UUID, t store.HistoryType, payload map[string]any) (*store.HistoryEntry, error) {
	existing, err := s.db.History().Get(ctx, entryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.Type != t {
		return nil, fmt.Errorf("%w: entry is %s, not %s", ErrValidation, existing.Type, t)
	}

	existing.Payload = payload
	updated, err := s.db.History().Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update history: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func (s *service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*store.HistoryEntry, error) {
	if _, err := s.db.Patients().Get(ctx, patientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return s.db.History().ListByPatient(ctx, patientID)
}

func (s *service) FindPatient(ctx context.Context, entryID uuid.UUID) (*store.Patient, error) {
	entry, err := s.db.History().Get(ctx, entryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p, err := s.db.Patients().Get(ctx, entry.PatientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) PaymentsReport(ctx context.Context, fromDate, toDate string) ([]PaymentRow, error) {
	entries, err := s.db.History().ListByType(ctx, store.HistoryPaymentRecorded, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	names, err := s.patientNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PaymentRow, 0, len(entries))
	for _, e := range entries {
		payment, err := PaymentFromPayload(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		out = append(out, PaymentRow{
			EntryID:     e.ID,
			PatientID:   e.PatientID,
			PatientName: names[e.PatientID],
			RecordedAt:  e.CreatedAt,
			Payment:     *payment,
		})
	}
	return out, nil
}

func (s *service) PrescriptionsReport(ctx context.Context, fromDate, toDate string) ([]PrescriptionRow, error) {
	entries, err := s.db.History().ListByType(ctx, store.HistoryPrescriptionIssued, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	names, err := s.patientNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PrescriptionRow, 0, len(entries))
	for _, e := range entries {
		prescription, err := PrescriptionFromPayload(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		out = append(out, PrescriptionRow{
			EntryID:      e.ID,
			PatientID:    e.PatientID,
			PatientName:  names[e.PatientID],
			RecordedAt:   e.CreatedAt,
			Prescription: *prescription,
		})
	}
	return out, nil
}

func (s *service) patientNames(ctx context.Context) (map[uuid.UUID]string, error) {
	patients, err := s.db.Patients().List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.FullName()
	}
	return names, nil
}
