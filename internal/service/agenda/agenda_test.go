package agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/internal/store/memstore"
)

// Monday morning; 2026-09-01 and 2026-09-02 are the following Tuesday
// and Wednesday.
var testNow = time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)

func newService(t *testing.T, cfg Config) (Service, *memstore.Store, *store.Patient) {
	t.Helper()

	db := memstore.New()
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return testNow }
	}
	svc := New(db, cfg)

	p, err := db.Patients().Create(context.Background(), &store.Patient{
		GivenName:       "Ana",
		PaternalSurname: "Pérez",
		BirthDate:       "1990-04-12",
	})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return svc, db, p
}

// checkInvariants asserts slot exclusivity and the blocked-slot "iff"
// rule: every appointment's slot is blocked, no slot has two
// appointments. manualBlocks lists slots blocked by staff with no
// appointment.
func checkInvariants(t *testing.T, db *memstore.Store, manualBlocks map[string]bool) {
	t.Helper()
	ctx := context.Background()

	appts, _ := db.Appointments().ListRange(ctx, "", "")
	claimed := map[string]int{}
	for _, a := range appts {
		key := a.Date + "|" + a.Time
		claimed[key]++
		if claimed[key] > 1 {
			t.Errorf("slot %s claimed by %d appointments", key, claimed[key])
		}
		if exists, _ := db.BlockedSlots().Exists(ctx, a.Date, a.Time); !exists {
			t.Errorf("appointment at %s has no blocked slot", key)
		}
	}

	blocked, _ := db.BlockedSlots().ListRange(ctx, "", "")
	for _, b := range blocked {
		key := b.Date + "|" + b.Time
		if claimed[key] == 0 && !manualBlocks[key] {
			t.Errorf("blocked slot %s has no appointment and was not manually blocked", key)
		}
	}
}

func TestBookCompleteScenario(t *testing.T) {
	ctx := context.Background()
	svc, db, p := newService(t, Config{})

	appt, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-01", Time: "15:00:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if appt.Status != store.AppointmentActive {
		t.Errorf("status = %s, want active", appt.Status)
	}
	if exists, _ := db.BlockedSlots().Exists(ctx, "2026-09-01", "15:00:00"); !exists {
		t.Error("slot not blocked after booking")
	}

	hist, _ := db.History().ListByPatient(ctx, p.ID)
	if len(hist) != 1 || hist[0].Type != store.HistoryAppointmentBooked {
		t.Fatalf("history after booking = %+v", hist)
	}

	completed, err := svc.Complete(ctx, appt.ID)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if completed.Status != store.AppointmentCompleted || completed.CompletedAt == nil {
		t.Errorf("completed = %+v", completed)
	}
	if exists, _ := db.BlockedSlots().Exists(ctx, "2026-09-01", "15:00:00"); !exists {
		t.Error("slot released on completion; it must stay blocked")
	}

	hist, _ = db.History().ListByPatient(ctx, p.ID)
	if len(hist) != 2 || hist[0].Type != store.HistoryAppointmentCompleted {
		t.Fatalf("history after completion = %+v", hist)
	}

	if _, err := svc.Complete(ctx, appt.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Complete() error = %v, want ErrInvalidState", err)
	}

	checkInvariants(t, db, nil)
}

func TestBookConflicts(t *testing.T) {
	ctx := context.Background()
	svc, _, p := newService(t, Config{})

	if _, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-01", Time: "15:00:00"}); err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if _, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-01", Time: "15:00:00"}); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("double Book() error = %v, want ErrSlotUnavailable", err)
	}

	// A manually blocked slot rejects booking too.
	if _, err := svc.ToggleBlock(ctx, "2026-09-01", "16:00:00"); err != nil {
		t.Fatalf("ToggleBlock() error = %v", err)
	}
	if _, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-01", Time: "16:00:00"}); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Book(blocked) error = %v, want ErrSlotUnavailable", err)
	}

	if _, err := svc.Book(ctx, BookRequest{PatientID: uuid.New(), Date: "2026-09-01", Time: "17:00:00"}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("Book(unknown patient) error = %v, want ErrPatientNotFound", err)
	}
}

func TestBookingCutoff(t *testing.T) {
	ctx := context.Background()
	svc, _, p := newService(t, Config{})

	tests := []struct {
		name string
		date string
		tm   string
		ok   bool
	}{
		{"future date", "2026-09-01", "15:00:00", true},
		{"past date", "2026-08-30", "08:00:00", false},
		// testNow is Monday 10:00; Monday slots start at 15:00 so the
		// same-day afternoon is beyond the 60-minute cutoff.
		{"same day beyond cutoff", "2026-08-31", "15:00:00", true},
		{"same day elapsed", "2026-08-31", "09:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: tt.date, Time: tt.tm})
			if tt.ok && err != nil {
				t.Errorf("Book() error = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Book() error = %v, want ErrInvalidDate", err)
			}
		})
	}
}

func TestCancelReleasesSlotAndRebookGetsFreshID(t *testing.T) {
	ctx := context.Background()
	svc, db, p := newService(t, Config{})

	first, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-01", Time: "15:00:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	if err := svc.Cancel(ctx, first.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if exists, _ := db.BlockedSlots().Exists(ctx, "2026-09-01", "15:00:00"); exists {
		t.Error("slot still blocked after sole appointment cancelled")
	}

	hist, _ := db.History().ListByPatient(ctx, p.ID)
	if hist[0].Type != store.HistoryAppointmentCancelled {
		t.Errorf("newest history type = %s, want appointment_cancelled", hist[0].Type)
	}

	second, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-01", Time: "15:00:00"})
	if err != nil {
		t.Fatalf("re-Book() error = %v", err)
	}
	if second.ID == first.ID {
		t.Error("re-booking reused the cancelled appointment id")
	}

	if err := svc.Cancel(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Cancel(gone) error = %v, want ErrNotFound", err)
	}

	checkInvariants(t, db, nil)
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	svc, db, p := newService(t, Config{})

	appt, _ := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-01", Time: "15:00:00"})

	moved, err := svc.Reschedule(ctx, appt.ID, "2026-09-02", "16:00:00")
	if err != nil {
		t.Fatalf("Reschedule() error = %v", err)
	}
	if moved.Date != "2026-09-02" || moved.Time != "16:00:00" {
		t.Errorf("moved appointment = %s %s", moved.Date, moved.Time)
	}

	if exists, _ := db.BlockedSlots().Exists(ctx, "2026-09-01", "15:00:00"); exists {
		t.Error("old slot still blocked after reschedule")
	}
	if exists, _ := db.BlockedSlots().Exists(ctx, "2026-09-02", "16:00:00"); !exists {
		t.Error("new slot not blocked after reschedule")
	}

	hist, _ := db.History().ListByPatient(ctx, p.ID)
	if hist[0].Type != store.HistoryAppointmentRescheduled {
		t.Fatalf("newest history type = %s", hist[0].Type)
	}
	payload := hist[0].Payload
	if payload["old_time"] != "15:00:00" || payload["new_time"] != "16:00:00" {
		t.Errorf("reschedule payload = %+v", payload)
	}

	checkInvariants(t, db, nil)
}

func TestRescheduleRejections(t *testing.T) {
	ctx := context.Background()
	svc, _, p := newService(t, Config{})

	appt, _ := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-01", Time: "15:00:00"})
	other, _ := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-02", Time: "15:00:00"})

	if _, err := svc.Reschedule(ctx, appt.ID, "2026-08-31", "15:00:00"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Reschedule(today) error = %v, want ErrInvalidDate", err)
	}
	if _, err := svc.Reschedule(ctx, appt.ID, "2026-09-02", "15:00:00"); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Reschedule(taken) error = %v, want ErrSlotUnavailable", err)
	}

	if _, err := svc.ToggleBlock(ctx, "2026-09-02", "17:00:00"); err != nil {
		t.Fatalf("ToggleBlock() error = %v", err)
	}
	if _, err := svc.Reschedule(ctx, appt.ID, "2026-09-02", "17:00:00"); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Reschedule(blocked) error = %v, want ErrSlotUnavailable", err)
	}

	if _, err := svc.Reschedule(ctx, uuid.New(), "2026-09-02", "18:00:00"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Reschedule(missing) error = %v, want ErrNotFound", err)
	}

	_ = other
}

func TestToggleBlockScenario(t *testing.T) {
	ctx := context.Background()
	svc, db, p := newService(t, Config{})

	// Wednesday 16:00: block, then unblock.
	blocked, err := svc.ToggleBlock(ctx, "2026-09-02", "16:00:00")
	if err != nil || !blocked {
		t.Fatalf("ToggleBlock() = %v, %v, want blocked", blocked, err)
	}
	checkInvariants(t, db, map[string]bool{"2026-09-02|16:00:00": true})

	blocked, err = svc.ToggleBlock(ctx, "2026-09-02", "16:00:00")
	if err != nil || blocked {
		t.Fatalf("second ToggleBlock() = %v, %v, want unblocked", blocked, err)
	}

	// A live appointment makes the slot untouchable.
	if _, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-02", Time: "16:00:00"}); err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if _, err := svc.ToggleBlock(ctx, "2026-09-02", "16:00:00"); !errors.Is(err, ErrSlotOccupied) {
		t.Errorf("ToggleBlock(occupied) error = %v, want ErrSlotOccupied", err)
	}
}

func TestQuickBook(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newService(t, Config{})

	// Case-insensitive substring match against the seeded "Ana Pérez".
	res, err := svc.QuickBook(ctx, QuickBookRequest{PatientName: "ana pé", Date: "2026-09-01", Time: "15:00:00"})
	if err != nil {
		t.Fatalf("QuickBook() error = %v", err)
	}
	if res.PatientCreated || res.Patient.GivenName != "Ana" {
		t.Errorf("QuickBook() matched = %+v", res.Patient)
	}

	// No match and no confirmation: surface it to the caller.
	_, err = svc.QuickBook(ctx, QuickBookRequest{PatientName: "Desconocido", Date: "2026-09-01", Time: "16:00:00"})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("QuickBook(no match) error = %v, want ErrPatientNotFound", err)
	}

	// Confirmed: create the minimal record and book in one go.
	res, err = svc.QuickBook(ctx, QuickBookRequest{PatientName: "Desconocido", Date: "2026-09-01", Time: "16:00:00", CreateIfMissing: true})
	if err != nil {
		t.Fatalf("QuickBook(create) error = %v", err)
	}
	if !res.PatientCreated {
		t.Error("QuickBook(create) did not report a new patient")
	}
	if res.Patient.PaternalSurname != "(Sin apellido)" || res.Patient.BirthDate != "1900-01-01" {
		t.Errorf("minimal patient = %+v", res.Patient)
	}
	if res.Appointment == nil || res.Appointment.Time != "16:00:00" {
		t.Errorf("appointment = %+v", res.Appointment)
	}

	checkInvariants(t, db, nil)
}

func TestCompleteScheduleGuard(t *testing.T) {
	ctx := context.Background()
	svc, _, p := newService(t, Config{EnforceSchedule: true})

	appt, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-09-01", Time: "15:00:00"})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	if _, err := svc.Complete(ctx, appt.ID); !errors.Is(err, ErrNotYetElapsed) {
		t.Errorf("Complete(before schedule) error = %v, want ErrNotYetElapsed", err)
	}
}

func TestDayAndStats(t *testing.T) {
	ctx := context.Background()
	svc, _, p := newService(t, Config{})

	if _, err := svc.Book(ctx, BookRequest{PatientID: p.ID, Date: "2026-08-31", Time: "15:00:00"}); err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if _, err := svc.ToggleBlock(ctx, "2026-08-31", "16:00:00"); err != nil {
		t.Fatalf("ToggleBlock() error = %v", err)
	}

	slots, err := svc.Day(ctx, "2026-08-31")
	if err != nil {
		t.Fatalf("Day() error = %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("Day(monday) = %d slots, want 8", len(slots))
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.AppointmentsToday != 1 || stats.BlockedToday != 2 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.NextAppointment == nil || stats.NextAppointment.Time != "15:00:00" {
		t.Errorf("NextAppointment = %+v", stats.NextAppointment)
	}
}
