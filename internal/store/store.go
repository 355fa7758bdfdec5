// Package store defines the persistence boundary for the clinic: plain
// domain records plus repository interfaces the services depend on.
// Two implementations exist: entstore (Postgres via ent) and memstore
// (in-memory, used by tests and the local-emulation mode).
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Appointment status. Cancellation removes the row, so there is no
// cancelled state: none -> active -> completed, or active -> deleted.
type AppointmentStatus string

const (
	AppointmentActive    AppointmentStatus = "active"
	AppointmentCompleted AppointmentStatus = "completed"
)

type HistoryType string

const (
	HistoryAppointmentBooked      HistoryType = "appointment_booked"
	HistoryAppointmentCancelled   HistoryType = "appointment_cancelled"
	HistoryAppointmentCompleted   HistoryType = "appointment_completed"
	HistoryAppointmentRescheduled HistoryType = "appointment_rescheduled"
	HistoryPatientCreated         HistoryType = "patient_created"
	HistoryPatientEdited          HistoryType = "patient_edited"
	HistoryPrescriptionIssued     HistoryType = "prescription_issued"
	HistoryDiagnosisRecorded      HistoryType = "diagnosis_recorded"
	HistoryStudyRecorded          HistoryType = "study_recorded"
	HistoryMedicalNoteRecorded    HistoryType = "medical_note_recorded"
	HistoryPaymentRecorded        HistoryType = "payment_recorded"
)

// ValidHistoryType reports whether t is one of the known entry types.
func ValidHistoryType(t HistoryType) bool {
	switch t {
	case HistoryAppointmentBooked, HistoryAppointmentCancelled,
		HistoryAppointmentCompleted, HistoryAppointmentRescheduled,
		HistoryPatientCreated, HistoryPatientEdited,
		HistoryPrescriptionIssued, HistoryDiagnosisRecorded,
		HistoryStudyRecorded, HistoryMedicalNoteRecorded,
		HistoryPaymentRecorded:
		return true
	}
	return false
}

// Surgery is one entry in a patient's surgical history.
type Surgery struct {
	Date         string `json:"date"`
	Procedure    string `json:"procedure"`
	Complication string `json:"complication"`
}

// SubstanceDetail qualifies a positive substance-use answer.
type SubstanceDetail struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

type Patient struct {
	ID              uuid.UUID `json:"id"`
	GivenName       string    `json:"given_name"`
	PaternalSurname string    `json:"paternal_surname"`
	MaternalSurname string    `json:"maternal_surname"`
	BirthDate       string    `json:"birth_date"` // YYYY-MM-DD
	Sex             string    `json:"sex"`        // masculino | femenino | ""
	Phone           string    `json:"phone"`      // E.164
	RFC             string    `json:"rfc"`        // derived, recomputed on every write

	Allergies          []string         `json:"allergies"`
	ChronicConditions  []string         `json:"chronic_conditions"`
	CurrentMedications []string         `json:"current_medications"`
	PriorSurgeries     []Surgery        `json:"prior_surgeries"`
	FamilyHistory      string           `json:"family_history"`
	SubstanceUse       string           `json:"substance_use"` // yes | no | unset
	SubstanceDetail    *SubstanceDetail `json:"substance_detail,omitempty"`
	ConsultationReason string           `json:"consultation_reason"`
	InitialSymptoms    string           `json:"initial_symptoms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName is the display name: given name plus both surnames, with
// empty components omitted.
func (p *Patient) FullName() string {
	name := p.GivenName
	if p.PaternalSurname != "" {
		name += " " + p.PaternalSurname
	}
	if p.MaternalSurname != "" {
		name += " " + p.MaternalSurname
	}
	return name
}

type Appointment struct {
	ID          uuid.UUID         `json:"id"`
	PatientID   uuid.UUID         `json:"patient_id"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Time        string            `json:"time"` // HH:MM:SS
	Status      AppointmentStatus `json:"status"`
	Reason      string            `json:"reason"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type BlockedSlot struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryEntry struct {
	ID        uuid.UUID      `json:"id"`
	PatientID uuid.UUID      `json:"patient_id"`
	Type      HistoryType    `json:"type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Store bundles the repositories behind a single transactional
// boundary. WithTx runs fn against a transactional view; every write
// inside fn is applied atomically, or not at all if fn returns an
// error.
type Store interface {
	Patients() PatientRepo
	Appointments() AppointmentRepo
	BlockedSlots() BlockedSlotRepo
	History() HistoryRepo
	Users() UserRepo

	WithTx(ctx context.Context, fn func(tx Store) error) error
}

type PatientRepo interface {
	Create(ctx context.Context, p *Patient) (*Patient, error)
	Get(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) (*Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all patients ordered by paternal surname, maternal
	// surname, given name.
	List(ctx context.Context) ([]*Patient, error)
	Count(ctx context.Context) (int, error)
}

type AppointmentRepo interface {
	Create(ctx context.Context, a *Appointment) (*Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) (*Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByPatient returns the patient's appointments ordered by
	// (date, time) ascending.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)
	ListByDate(ctx context.Context, date string) ([]*Appointment, error)
	// ListBySlot returns every appointment on the exact (date, time),
	// regardless of status.
	ListBySlot(ctx context.Context, date, time string) ([]*Appointment, error)
	ListRange(ctx context.Context, fromDate, toDate string) ([]*Appointment, error)
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
}

type BlockedSlotRepo interface {
	Create(ctx context.Context, date, time string) (*BlockedSlot, error)
	Delete(ctx context.Context, date, time string) error
	Exists(ctx context.Context, date, time string) (bool, error)
	ListByDate(ctx context.Context, date string) ([]*BlockedSlot, error)
	ListRange(ctx context.Context, fromDate, toDate string) ([]*BlockedSlot, error)
}

type HistoryRepo interface {
	Create(ctx context.Context, e *HistoryEntry) (*HistoryEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*HistoryEntry, error)
	Update(ctx context.Context, e *HistoryEntry) (*HistoryEntry, error)
	// ListByPatient returns the patient's entries newest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*HistoryEntry, error)
	// ListByType returns entries of the given type with created_at in
	// [fromDate, toDate] (inclusive, YYYY-MM-DD), newest first. Empty
	// bounds are open-ended.
	ListByType(ctx context.Context, t HistoryType, fromDate, toDate string) ([]*HistoryEntry, error)
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
}

type UserRepo interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
