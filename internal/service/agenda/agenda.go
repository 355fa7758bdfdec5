// Package agenda orchestrates the appointment lifecycle: booking,
// cancellation, completion, rescheduling, and manual slot blocking.
// Every mutating operation runs as one transaction so the appointment,
// its blocked slot, and the history entry land together or not at all.
package agenda

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/service/calendar"
	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/pkg/constants"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	PatientID uuid.UUID
	Date      string // YYYY-MM-DD
	Time      string // HH:MM:SS
	Reason    string
}

type QuickBookRequest struct {
	PatientName string
	Date        string
	Time        string
	Reason      string
	// CreateIfMissing creates a minimal patient record when no existing
	// patient matches the name. The caller sets it after explicit user
	// confirmation.
	CreateIfMissing bool
}

type QuickBookResult struct {
	Appointment    *store.Appointment `json:"appointment"`
	Patient        *store.Patient     `json:"patient"`
	PatientCreated bool               `json:"patient_created"`
}

type Snapshot struct {
	Appointments []*store.Appointment `json:"appointments"`
	BlockedSlots []*store.BlockedSlot `json:"blocked_slots"`
	Patients     []*store.Patient     `json:"patients"`
}

type Stats struct {
	AppointmentsToday int                `json:"appointments_today"`
	BlockedToday      int                `json:"blocked_today"`
	NextAppointment   *store.Appointment `json:"next_appointment,omitempty"`
}

// Config tunes the booking rules.
type Config struct {
	// BookingCutoff is the minimum lead time for same-day bookings.
	BookingCutoff time.Duration
	// EnforceSchedule rejects completion before the scheduled slot time
	// has elapsed. Off by default; the data layer does not require it.
	EnforceSchedule bool
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Book(ctx context.Context, req BookRequest) (*store.Appointment, error)
	QuickBook(ctx context.Context, req QuickBookRequest) (*QuickBookResult, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) (*store.Appointment, error)
	Reschedule(ctx context.Context, id uuid.UUID, newDate, newTime string) (*store.Appointment, error)
	// ToggleBlock flips manual blocking for a free slot and reports the
	// resulting state.
	ToggleBlock(ctx context.Context, date, tm string) (blocked bool, err error)

	Snapshot(ctx context.Context) (*Snapshot, error)
	Day(ctx context.Context, date string) ([]calendar.Slot, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	db  store.Store
	cfg Config
	now func() time.Time
}

func New(db store.Store, cfg Config) Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	if cfg.BookingCutoff <= 0 {
		cfg.BookingCutoff = 60 * time.Minute
	}
	return &service{db: db, cfg: cfg, now: now}
}

// ---------------------------------------------------------------------------
// Booking
// ---------------------------------------------------------------------------

func (s *service) Book(ctx context.Context, req BookRequest) (*store.Appointment, error) {
	if err := s.validateSlotRef(req.Date, req.Time); err != nil {
		return nil, err
	}
	if !calendar.Bookable(req.Date, req.Time, s.now(), s.cfg.BookingCutoff) {
		return nil, fmt.Errorf("%w: %s %s", ErrInvalidDate, req.Date, req.Time)
	}

	if _, err := s.db.Patients().Get(ctx, req.PatientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	var appt *store.Appointment
	err := s.db.WithTx(ctx, func(tx store.Store) error {
		var err error
		appt, err = s.bookTx(ctx, tx, req.PatientID, req.Date, req.Time, req.Reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

// bookTx claims the slot inside an open transaction. The occupancy
// check runs here so a concurrent writer cannot slip between check and
// insert.
func (s *service) bookTx(ctx context.Context, tx store.Store, patientID uuid.UUID, date, tm, reason string) (*store.Appointment, error) {
	claims, err := tx.Appointments().ListBySlot(ctx, date, tm)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if len(claims) > 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrSlotUnavailable, date, tm)
	}

	blocked, err := tx.BlockedSlots().Exists(ctx, date, tm)
	if err != nil {
		return nil, fmt.Errorf("check block: %w", err)
	}
	if blocked {
		return nil, fmt.Errorf("%w: %s %s", ErrSlotUnavailable, date, tm)
	}

	appt, err := tx.Appointments().Create(ctx, &store.Appointment{
		PatientID: patientID,
		Date:      date,
		Time:      tm,
		Status:    store.AppointmentActive,
		Reason:    reason,
	})
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	if _, err := tx.BlockedSlots().Create(ctx, date, tm); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
		return nil, fmt.Errorf("block slot: %w", err)
	}

	_, err = tx.History().Create(ctx, &store.HistoryEntry{
		PatientID: patientID,
		Type:      store.HistoryAppointmentBooked,
		Payload:   appointmentPayload(appt),
	})
	if err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	return appt, nil
}

func (s *service) QuickBook(ctx context.Context, req QuickBookRequest) (*QuickBookResult, error) {
	name := strings.TrimSpace(req.PatientName)
	if name == "" {
		return nil, fmt.Errorf("%w: patient name is required", ErrValidation)
	}
	if err := s.validateSlotRef(req.Date, req.Time); err != nil {
		return nil, err
	}
	if !calendar.Bookable(req.Date, req.Time, s.now(), s.cfg.BookingCutoff) {
		return nil, fmt.Errorf("%w: %s %s", ErrInvalidDate, req.Date, req.Time)
	}

	match, err := s.findByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if match == nil && !req.CreateIfMissing {
		return nil, ErrPatientNotFound
	}

	result := &QuickBookResult{Patient: match}
	err = s.db.WithTx(ctx, func(tx store.Store) error {
		patient := match
		if patient == nil {
			// Minimal record; the doctor completes the chart later.
			var err error
			patient, err = tx.Patients().Create(ctx, &store.Patient{
				GivenName:       name,
				PaternalSurname: "(Sin apellido)",
				BirthDate:       "1900-01-01",
				SubstanceUse:    "unset",
			})
			if err != nil {
				return fmt.Errorf("create patient: %w", err)
			}

			_, err = tx.History().Create(ctx, &store.HistoryEntry{
				PatientID: patient.ID,
				Type:      store.HistoryPatientCreated,
				Payload:   map[string]any{"full_name": patient.FullName()},
			})
			if err != nil {
				return fmt.Errorf("append history: %w", err)
			}
			result.Patient = patient
			result.PatientCreated = true
		}

		appt, err := s.bookTx(ctx, tx, patient.ID, req.Date, req.Time, req.Reason)
		if err != nil {
			return err
		}
		result.Appointment = appt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// findByName returns the first patient whose full name contains the
// query, case-insensitively, in directory order.
func (s *service) findByName(ctx context.Context, name string) (*store.Patient, error) {
	all, err := s.db.Patients().List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(name)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.FullName()), q) {
			return p, nil
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Lifecycle transitions
// ---------------------------------------------------------------------------

func (s *service) Cancel(ctx context.Context, id uuid.UUID) error {
	appt, err := s.db.Appointments().Get(ctx, id)
	if err != nil {
		return s.mapNotFound(err)
	}

	return s.db.WithTx(ctx, func(tx store.Store) error {
		if err := tx.Appointments().Delete(ctx, appt.ID); err != nil {
			return fmt.Errorf("delete appointment: %w", err)
		}

		if err := s.releaseSlotTx(ctx, tx, appt.Date, appt.Time); err != nil {
			return err
		}

		_, err := tx.History().Create(ctx, &store.HistoryEntry{
			PatientID: appt.PatientID,
			Type:      store.HistoryAppointmentCancelled,
			Payload:   appointmentPayload(appt),
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
}

func (s *service) Complete(ctx context.Context, id uuid.UUID) (*store.Appointment, error) {
	appt, err := s.db.Appointments().Get(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err)
	}
	if appt.Status != store.AppointmentActive {
		return nil, fmt.Errorf("%w: already %s", ErrInvalidState, appt.Status)
	}

	if s.cfg.EnforceSchedule {
		start, err := time.ParseInLocation(constants.DateLayout+" "+constants.TimeLayout, appt.Date+" "+appt.Time, s.now().Location())
		if err == nil && s.now().Before(start) {
			return nil, ErrNotYetElapsed
		}
	}

	var updated *store.Appointment
	err = s.db.WithTx(ctx, func(tx store.Store) error {
		now := s.now()
		appt.Status = store.AppointmentCompleted
		appt.CompletedAt = &now

		var err error
		updated, err = tx.Appointments().Update(ctx, appt)
		if err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}

		// Completed appointments keep their slot blocked.
		if _, err := tx.BlockedSlots().Create(ctx, appt.Date, appt.Time); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("block slot: %w", err)
		}

		_, err = tx.History().Create(ctx, &store.HistoryEntry{
			PatientID: appt.PatientID,
			Type:      store.HistoryAppointmentCompleted,
			Payload:   appointmentPayload(updated),
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

func (s *service) Reschedule(ctx context.Context, id uuid.UUID, newDate, newTime string) (*store.Appointment, error) {
	if err := s.validateSlotRef(newDate, newTime); err != nil {
		return nil, err
	}

	appt, err := s.db.Appointments().Get(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err)
	}

	today := s.now().Format(constants.DateLayout)
	if newDate <= today {
		return nil, fmt.Errorf("%w: new date must be in the future", ErrInvalidDate)
	}

	oldDate, oldTime := appt.Date, appt.Time

	var updated *store.Appointment
	err = s.db.WithTx(ctx, func(tx store.Store) error {
		claims, err := tx.Appointments().ListBySlot(ctx, newDate, newTime)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		for _, c := range claims {
			if c.ID != appt.ID {
				return fmt.Errorf("%w: %s %s", ErrSlotUnavailable, newDate, newTime)
			}
		}

		sameSlot := oldDate == newDate && oldTime == newTime
		if !sameSlot {
			blocked, err := tx.BlockedSlots().Exists(ctx, newDate, newTime)
			if err != nil {
				return fmt.Errorf("check block: %w", err)
			}
			if blocked {
				return fmt.Errorf("%w: %s %s", ErrSlotUnavailable, newDate, newTime)
			}
		}

		appt.Date = newDate
		appt.Time = newTime
		updated, err = tx.Appointments().Update(ctx, appt)
		if err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}

		if !sameSlot {
			if err := s.releaseSlotTx(ctx, tx, oldDate, oldTime); err != nil {
				return err
			}
			if _, err := tx.BlockedSlots().Create(ctx, newDate, newTime); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
				return fmt.Errorf("block slot: %w", err)
			}
		}

		payload := appointmentPayload(updated)
		payload["old_date"] = oldDate
		payload["old_time"] = oldTime
		payload["new_date"] = newDate
		payload["new_time"] = newTime

		_, err = tx.History().Create(ctx, &store.HistoryEntry{
			PatientID: appt.PatientID,
			Type:      store.HistoryAppointmentRescheduled,
			Payload:   payload,
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

func (s *service) ToggleBlock(ctx context.Context, date, tm string) (bool, error) {
	if err := s.validateSlotRef(date, tm); err != nil {
		return false, err
	}

	var blocked bool
	err := s.db.WithTx(ctx, func(tx store.Store) error {
		claims, err := tx.Appointments().ListBySlot(ctx, date, tm)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if len(claims) > 0 {
			return fmt.Errorf("%w: %s %s", ErrSlotOccupied, date, tm)
		}

		exists, err := tx.BlockedSlots().Exists(ctx, date, tm)
		if err != nil {
			return fmt.Errorf("check block: %w", err)
		}

		if exists {
			if err := tx.BlockedSlots().Delete(ctx, date, tm); err != nil {
				return fmt.Errorf("unblock slot: %w", err)
			}
			blocked = false
			return nil
		}

		if _, err := tx.BlockedSlots().Create(ctx, date, tm); err != nil {
			return fmt.Errorf("block slot: %w", err)
		}
		blocked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return blocked, nil
}

// releaseSlotTx removes the blocked-slot row unless another appointment
// still claims the same (date, time).
func (s *service) releaseSlotTx(ctx context.Context, tx store.Store, date, tm string) error {
	claims, err := tx.Appointments().ListBySlot(ctx, date, tm)
	if err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if len(claims) > 0 {
		return nil
	}
	if err := tx.BlockedSlots().Delete(ctx, date, tm); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("release slot: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read models
// ---------------------------------------------------------------------------

func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	appointments, err := s.db.Appointments().ListRange(ctx, "", "")
	if err != nil {
		return nil, err
	}
	blocked, err := s.db.BlockedSlots().ListRange(ctx, "", "")
	if err != nil {
		return nil, err
	}
	patients, err := s.db.Patients().List(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Appointments: appointments, BlockedSlots: blocked, Patients: patients}, nil
}

func (s *service) Day(ctx context.Context, date string) ([]calendar.Slot, error) {
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: malformed date %q", ErrValidation, date)
	}

	appointments, err := s.db.Appointments().ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	blocked, err := s.db.BlockedSlots().ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return calendar.DaySchedule(date, appointments, blocked, s.now(), s.cfg.BookingCutoff), nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	today := now.Format(constants.DateLayout)
	nowTime := now.Format(constants.TimeLayout)

	todayAppts, err := s.db.Appointments().ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	todayBlocked, err := s.db.BlockedSlots().ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.db.Appointments().ListRange(ctx, today, "")
	if err != nil {
		return nil, err
	}

	var next *store.Appointment
	for _, a := range upcoming {
		if a.Status != store.AppointmentActive {
			continue
		}
		if a.Date == today && a.Time <= nowTime {
			continue
		}
		next = a
		break
	}

	return &Stats{
		AppointmentsToday: len(todayAppts),
		BlockedToday:      len(todayBlocked),
		NextAppointment:   next,
	}, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *service) validateSlotRef(date, tm string) error {
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return fmt.Errorf("%w: malformed date %q", ErrValidation, date)
	}
	if _, err := time.Parse(constants.TimeLayout, tm); err != nil {
		return fmt.Errorf("%w: malformed time %q", ErrValidation, tm)
	}
	return nil
}

func (s *service) mapNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func appointmentPayload(a *store.Appointment) map[string]any {
	return map[string]any{
		"appointment_id": a.ID.String(),
		"date":           a.Date,
		"time":           a.Time,
	}
}
