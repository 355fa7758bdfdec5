package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/store"
)

func TestPatientCRUD(t *testing.T) {
	ctx := context.Background()
	s := New()

	created, err := s.Patients().Create(ctx, &store.Patient{
		GivenName:       "Laura",
		PaternalSurname: "Mendoza",
		BirthDate:       "1985-03-10",
		Allergies:       []string{"penicilina"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == (uuid.UUID{}) {
		t.Fatal("Create() did not assign an ID")
	}

	got, err := s.Patients().Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.GivenName != "Laura" || got.Allergies[0] != "penicilina" {
		t.Errorf("Get() = %+v", got)
	}

	// Mutating the returned record must not affect the stored copy.
	got.Allergies[0] = "ninguna"
	again, _ := s.Patients().Get(ctx, created.ID)
	if again.Allergies[0] != "penicilina" {
		t.Error("stored patient shares slice memory with returned copy")
	}

	got.GivenName = "Laura Elena"
	if _, err := s.Patients().Update(ctx, got); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := s.Patients().Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Patients().Get(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestPatientListOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, p := range []store.Patient{
		{GivenName: "Ana", PaternalSurname: "Zavala"},
		{GivenName: "Luis", PaternalSurname: "Aguilar"},
		{GivenName: "Eva", PaternalSurname: "Mendoza"},
	} {
		if _, err := s.Patients().Create(ctx, &p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	list, err := s.Patients().List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"Aguilar", "Mendoza", "Zavala"}
	for i, surname := range want {
		if list[i].PaternalSurname != surname {
			t.Errorf("List()[%d].PaternalSurname = %s, want %s", i, list[i].PaternalSurname, surname)
		}
	}
}

func TestBlockedSlotUniqueness(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.BlockedSlots().Create(ctx, "2026-09-01", "15:00:00"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.BlockedSlots().Create(ctx, "2026-09-01", "15:00:00"); !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("duplicate Create() error = %v, want ErrAlreadyExists", err)
	}

	exists, err := s.BlockedSlots().Exists(ctx, "2026-09-01", "15:00:00")
	if err != nil || !exists {
		t.Errorf("Exists() = %v, %v, want true, nil", exists, err)
	}

	if err := s.BlockedSlots().Delete(ctx, "2026-09-01", "15:00:00"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.BlockedSlots().Delete(ctx, "2026-09-01", "15:00:00"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.WithTx(ctx, func(tx store.Store) error {
		p, err := tx.Patients().Create(ctx, &store.Patient{GivenName: "Mario", PaternalSurname: "Ruiz"})
		if err != nil {
			return err
		}
		_, err = tx.Appointments().Create(ctx, &store.Appointment{
			PatientID: p.ID,
			Date:      "2026-09-01",
			Time:      "16:00:00",
			Status:    store.AppointmentActive,
		})
		return err
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	patients, _ := s.Patients().List(ctx)
	if len(patients) != 1 {
		t.Fatalf("patients after commit = %d, want 1", len(patients))
	}
	appts, _ := s.Appointments().ListByDate(ctx, "2026-09-01")
	if len(appts) != 1 {
		t.Fatalf("appointments after commit = %d, want 1", len(appts))
	}
}

func TestWithTxRollsBackAllWrites(t *testing.T) {
	ctx := context.Background()
	s := New()

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Store) error {
		if _, err := tx.Patients().Create(ctx, &store.Patient{GivenName: "Rollback", PaternalSurname: "Caso"}); err != nil {
			return err
		}
		if _, err := tx.BlockedSlots().Create(ctx, "2026-09-02", "17:00:00"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx() error = %v, want boom", err)
	}

	patients, _ := s.Patients().List(ctx)
	if len(patients) != 0 {
		t.Errorf("patients after rollback = %d, want 0", len(patients))
	}
	exists, _ := s.BlockedSlots().Exists(ctx, "2026-09-02", "17:00:00")
	if exists {
		t.Error("blocked slot survived rollback")
	}
}

func TestHistoryListByTypeDateFilter(t *testing.T) {
	ctx := context.Background()
	s := New()

	p, _ := s.Patients().Create(ctx, &store.Patient{GivenName: "Nora", PaternalSurname: "Vidal"})

	for i := 0; i < 3; i++ {
		_, err := s.History().Create(ctx, &store.HistoryEntry{
			PatientID: p.ID,
			Type:      store.HistoryPaymentRecorded,
			Payload:   map[string]any{"amount": 500},
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	_, _ = s.History().Create(ctx, &store.HistoryEntry{
		PatientID: p.ID,
		Type:      store.HistoryDiagnosisRecorded,
	})

	payments, err := s.History().ListByType(ctx, store.HistoryPaymentRecorded, "", "")
	if err != nil {
		t.Fatalf("ListByType() error = %v", err)
	}
	if len(payments) != 3 {
		t.Errorf("ListByType() returned %d entries, want 3", len(payments))
	}

	// A window entirely in the past excludes entries created just now.
	old, _ := s.History().ListByType(ctx, store.HistoryPaymentRecorded, "2000-01-01", "2000-12-31")
	if len(old) != 0 {
		t.Errorf("ListByType() past window returned %d entries, want 0", len(old))
	}
}

func TestDeleteByPatientCascades(t *testing.T) {
	ctx := context.Background()
	s := New()

	p, _ := s.Patients().Create(ctx, &store.Patient{GivenName: "Iris", PaternalSurname: "Campos"})
	other, _ := s.Patients().Create(ctx, &store.Patient{GivenName: "Otro", PaternalSurname: "Paciente"})

	_, _ = s.Appointments().Create(ctx, &store.Appointment{PatientID: p.ID, Date: "2026-09-03", Time: "15:00:00", Status: store.AppointmentActive})
	_, _ = s.Appointments().Create(ctx, &store.Appointment{PatientID: other.ID, Date: "2026-09-03", Time: "16:00:00", Status: store.AppointmentActive})
	_, _ = s.History().Create(ctx, &store.HistoryEntry{PatientID: p.ID, Type: store.HistoryPatientCreated})

	if err := s.Appointments().DeleteByPatient(ctx, p.ID); err != nil {
		t.Fatalf("DeleteByPatient() error = %v", err)
	}
	if err := s.History().DeleteByPatient(ctx, p.ID); err != nil {
		t.Fatalf("History DeleteByPatient() error = %v", err)
	}

	mine, _ := s.Appointments().ListByPatient(ctx, p.ID)
	if len(mine) != 0 {
		t.Errorf("appointments after cascade = %d, want 0", len(mine))
	}
	theirs, _ := s.Appointments().ListByPatient(ctx, other.ID)
	if len(theirs) != 1 {
		t.Errorf("other patient's appointments = %d, want 1", len(theirs))
	}
	hist, _ := s.History().ListByPatient(ctx, p.ID)
	if len(hist) != 0 {
		t.Errorf("history after cascade = %d, want 0", len(hist))
	}
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Users().Create(ctx, &store.User{Username: "dra.valdez", PasswordHash: "x", Role: "medico"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.Users().Create(ctx, &store.User{Username: "dra.valdez", PasswordHash: "y"}); !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("duplicate Create() error = %v, want ErrAlreadyExists", err)
	}

	u, err := s.Users().GetByUsername(ctx, "dra.valdez")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if u.Role != "medico" {
		t.Errorf("Role = %s, want medico", u.Role)
	}

	if _, err := s.Users().GetByUsername(ctx, "nadie"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByUsername(missing) error = %v, want ErrNotFound", err)
	}
}
