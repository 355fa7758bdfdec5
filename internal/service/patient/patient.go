// Package patient implements the patient registry: intake, edits,
// directory listing, and the guarded cascade delete.
package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/pkg/constants"
	"github.com/drvaldez/consultorio_backend/pkg/rfc"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SaveRequest struct {
	GivenName       string
	PaternalSurname string
	MaternalSurname string
	BirthDate       string // YYYY-MM-DD
	Sex             string // masculino | femenino | ""
	Phone           string

	Allergies          []string
	ChronicConditions  []string
	CurrentMedications []string
	PriorSurgeries     []store.Surgery
	FamilyHistory      string
	SubstanceUse       string // yes | no | unset | ""
	SubstanceDetail    *store.SubstanceDetail
	ConsultationReason string
	InitialSymptoms    string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req SaveRequest) (*store.Patient, error)
	Update(ctx context.Context, id uuid.UUID, req SaveRequest) (*store.Patient, error)
	Get(ctx context.Context, id uuid.UUID) (*store.Patient, error)
	List(ctx context.Context) ([]*store.Patient, error)
	// Search matches the query as a case-insensitive substring of each
	// patient's full name or RFC.
	Search(ctx context.Context, query string) ([]*store.Patient, error)
	// Delete removes the patient and everything they own. The
	// confirmation text must be exactly "BORRAR <full name>".
	Delete(ctx context.Context, id uuid.UUID, confirmation string) error
}

type service struct {
	db store.Store
}

func New(db store.Store) Service {
	return &service{db: db}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

func (s *service) Create(ctx context.Context, req SaveRequest) (*store.Patient, error) {
	p, err := s.build(req)
	if err != nil {
		return nil, err
	}

	if err := s.checkDuplicates(ctx, p, uuid.Nil); err != nil {
		return nil, err
	}

	var created *store.Patient
	err = s.db.WithTx(ctx, func(tx store.Store) error {
		var err error
		created, err = tx.Patients().Create(ctx, p)
		if err != nil {
			return fmt.Errorf("create patient: %w", err)
		}

		_, err = tx.History().Create(ctx, &store.HistoryEntry{
			PatientID: created.ID,
			Type:      store.HistoryPatientCreated,
			Payload:   map[string]any{"full_name": created.FullName()},
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req SaveRequest) (*store.Patient, error) {
	existing, err := s.db.Patients().Get(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err)
	}

	p, err := s.build(req)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID

	if err := s.checkDuplicates(ctx, p, id); err != nil {
		return nil, err
	}

	var updated *store.Patient
	err = s.db.WithTx(ctx, func(tx store.Store) error {
		var err error
		updated, err = tx.Patients().Update(ctx, p)
		if err != nil {
			return fmt.Errorf("update patient: %w", err)
		}

		_, err = tx.History().Create(ctx, &store.HistoryEntry{
			PatientID: updated.ID,
			Type:      store.HistoryPatientEdited,
			Payload:   map[string]any{"full_name": updated.FullName()},
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*store.Patient, error) {
	p, err := s.db.Patients().Get(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]*store.Patient, error) {
	return s.db.Patients().List(ctx)
}

func (s *service) Search(ctx context.Context, query string) ([]*store.Patient, error) {
	all, err := s.db.Patients().List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	var out []*store.Patient
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.FullName()), q) ||
			strings.Contains(strings.ToLower(p.RFC), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Delete cascades: history, appointments, and any blocked slot the
// deleted appointments held that no other patient's appointment still
// claims. All inside one transaction.
func (s *service) Delete(ctx context.Context, id uuid.UUID, confirmation string) error {
	p, err := s.db.Patients().Get(ctx, id)
	if err != nil {
		return s.mapNotFound(err)
	}

	expected := "BORRAR " + p.FullName()
	if strings.TrimSpace(confirmation) != expected {
		return ErrConfirmationMismatch
	}

	return s.db.WithTx(ctx, func(tx store.Store) error {
		mine, err := tx.Appointments().ListByPatient(ctx, id)
		if err != nil {
			return fmt.Errorf("list appointments: %w", err)
		}

		if err := tx.Appointments().DeleteByPatient(ctx, id); err != nil {
			return fmt.Errorf("delete appointments: %w", err)
		}

		// Release each slot unless another appointment still claims it.
		for _, a := range mine {
			claims, err := tx.Appointments().ListBySlot(ctx, a.Date, a.Time)
			if err != nil {
				return fmt.Errorf("check slot %s %s: %w", a.Date, a.Time, err)
			}
			if len(claims) > 0 {
				continue
			}
			if err := tx.BlockedSlots().Delete(ctx, a.Date, a.Time); err != nil && !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("release slot %s %s: %w", a.Date, a.Time, err)
			}
		}

		if err := tx.History().DeleteByPatient(ctx, id); err != nil {
			return fmt.Errorf("delete history: %w", err)
		}

		if err := tx.Patients().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete patient: %w", err)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// build validates the request and assembles a patient record with the
// derived fields recomputed.
func (s *service) build(req SaveRequest) (*store.Patient, error) {
	given := strings.TrimSpace(req.GivenName)
	paternal := strings.TrimSpace(req.PaternalSurname)
	maternal := strings.TrimSpace(req.MaternalSurname)

	if given == "" {
		return nil, fmt.Errorf("%w: given name is required", ErrValidation)
	}
	if paternal == "" {
		return nil, fmt.Errorf("%w: paternal surname is required", ErrValidation)
	}
	if req.BirthDate == "" {
		return nil, fmt.Errorf("%w: birth date is required", ErrValidation)
	}

	born, err := time.Parse(constants.DateLayout, req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: birth date must be YYYY-MM-DD", ErrValidation)
	}
	if born.After(time.Now()) {
		return nil, fmt.Errorf("%w: birth date is in the future", ErrValidation)
	}

	switch req.Sex {
	case "", "masculino", "femenino":
	default:
		return nil, fmt.Errorf("%w: unknown sex %q", ErrValidation, req.Sex)
	}

	substanceUse := req.SubstanceUse
	switch substanceUse {
	case "":
		substanceUse = "unset"
	case "yes", "no", "unset":
	default:
		return nil, fmt.Errorf("%w: unknown substance use %q", ErrValidation, req.SubstanceUse)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" {
		parsed, err := phonenumbers.Parse(phone, "MX")
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			return nil, fmt.Errorf("%w: invalid phone number", ErrValidation)
		}
		phone = phonenumbers.Format(parsed, phonenumbers.E164)
	}

	return &store.Patient{
		GivenName:          given,
		PaternalSurname:    paternal,
		MaternalSurname:    maternal,
		BirthDate:          req.BirthDate,
		Sex:                req.Sex,
		Phone:              phone,
		RFC:                rfc.Generate(given, paternal, maternal, req.BirthDate),
		Allergies:          req.Allergies,
		ChronicConditions:  req.ChronicConditions,
		CurrentMedications: req.CurrentMedications,
		PriorSurgeries:     req.PriorSurgeries,
		FamilyHistory:      req.FamilyHistory,
		SubstanceUse:       substanceUse,
		SubstanceDetail:    req.SubstanceDetail,
		ConsultationReason: req.ConsultationReason,
		InitialSymptoms:    req.InitialSymptoms,
	}, nil
}

// checkDuplicates rejects a second patient with the same RFC or the
// same (names, birth date) identity. self is excluded on update.
func (s *service) checkDuplicates(ctx context.Context, p *store.Patient, self uuid.UUID) error {
	all, err := s.db.Patients().List(ctx)
	if err != nil {
		return err
	}

	for _, other := range all {
		if other.ID == self {
			continue
		}
		if p.RFC != "" && other.RFC == p.RFC {
			return ErrDuplicateRFC
		}
		if strings.EqualFold(other.GivenName, p.GivenName) &&
			strings.EqualFold(other.PaternalSurname, p.PaternalSurname) &&
			strings.EqualFold(other.MaternalSurname, p.MaternalSurname) &&
			other.BirthDate == p.BirthDate {
			return ErrDuplicateIdentity
		}
	}
	return nil
}

func (s *service) mapNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
