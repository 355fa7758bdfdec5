package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/internal/store/memstore"
)

func newService() (Service, *memstore.Store) {
	db := memstore.New()
	return New(db), db
}

func validRequest() SaveRequest {
	return SaveRequest{
		GivenName:       "Ana",
		PaternalSurname: "Pérez",
		MaternalSurname: "Gómez",
		BirthDate:       "1990-04-12",
		Sex:             "femenino",
		Phone:           "55 1234 5678",
	}
}

func TestCreateComputesDerivedFields(t *testing.T) {
	ctx := context.Background()
	svc, db := newService()

	p, err := svc.Create(ctx, validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if p.FullName() != "Ana Pérez Gómez" {
		t.Errorf("FullName() = %q", p.FullName())
	}
	if p.RFC != "PEGA900412" {
		t.Errorf("RFC = %q, want PEGA900412", p.RFC)
	}
	if p.Phone != "+525512345678" {
		t.Errorf("Phone = %q, want E.164 +525512345678", p.Phone)
	}
	if p.SubstanceUse != "unset" {
		t.Errorf("SubstanceUse = %q, want unset", p.SubstanceUse)
	}

	hist, _ := db.History().ListByPatient(ctx, p.ID)
	if len(hist) != 1 || hist[0].Type != store.HistoryPatientCreated {
		t.Errorf("history after create = %+v, want one patient_created entry", hist)
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	tests := []struct {
		name   string
		mutate func(*SaveRequest)
	}{
		{"missing given name", func(r *SaveRequest) { r.GivenName = " " }},
		{"missing paternal surname", func(r *SaveRequest) { r.PaternalSurname = "" }},
		{"missing birth date", func(r *SaveRequest) { r.BirthDate = "" }},
		{"malformed birth date", func(r *SaveRequest) { r.BirthDate = "12/04/1990" }},
		{"future birth date", func(r *SaveRequest) { r.BirthDate = "2099-01-01" }},
		{"bad phone", func(r *SaveRequest) { r.Phone = "123" }},
		{"unknown sex", func(r *SaveRequest) { r.Sex = "otro" }},
		{"unknown substance use", func(r *SaveRequest) { r.SubstanceUse = "maybe" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			if _, err := svc.Create(ctx, req); !errors.Is(err, ErrValidation) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	if _, err := svc.Create(ctx, validRequest()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Same identity, same RFC.
	if _, err := svc.Create(ctx, validRequest()); !errors.Is(err, ErrDuplicateRFC) {
		t.Errorf("duplicate Create() error = %v, want ErrDuplicateRFC", err)
	}

	// Same identity but different birth day digits would change the
	// RFC; same name + birth date must still be rejected. Use a request
	// whose names differ only in case.
	req := validRequest()
	req.GivenName = "ANA"
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrDuplicateRFC) && !errors.Is(err, ErrDuplicateIdentity) {
		t.Errorf("case-variant Create() error = %v, want duplicate error", err)
	}
}

func TestUpdateRecomputesRFC(t *testing.T) {
	ctx := context.Background()
	svc, db := newService()

	p, _ := svc.Create(ctx, validRequest())

	req := validRequest()
	req.PaternalSurname = "Domínguez"
	updated, err := svc.Update(ctx, p.ID, req)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.RFC != "DOGA900412" {
		t.Errorf("RFC after update = %q, want DOGA900412", updated.RFC)
	}

	hist, _ := db.History().ListByPatient(ctx, p.ID)
	if len(hist) != 2 {
		t.Fatalf("history after update = %d entries, want 2", len(hist))
	}
	if hist[0].Type != store.HistoryPatientEdited {
		t.Errorf("newest entry type = %s, want patient_edited", hist[0].Type)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, _ = svc.Create(ctx, validRequest())
	other := validRequest()
	other.GivenName = "Bruno"
	other.PaternalSurname = "Salas"
	other.BirthDate = "1985-01-20"
	_, _ = svc.Create(ctx, other)

	got, err := svc.Search(ctx, "pérez")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0].GivenName != "Ana" {
		t.Errorf("Search(pérez) = %d results", len(got))
	}

	// RFC substring also matches.
	got, _ = svc.Search(ctx, "sagb")
	if len(got) != 1 || got[0].GivenName != "Bruno" {
		t.Errorf("Search(sagb) matched %d patients", len(got))
	}

	got, _ = svc.Search(ctx, "")
	if len(got) != 2 {
		t.Errorf("Search(empty) = %d results, want all 2", len(got))
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	p, _ := svc.Create(ctx, validRequest())

	if err := svc.Delete(ctx, p.ID, "BORRAR Ana Pérez"); !errors.Is(err, ErrConfirmationMismatch) {
		t.Errorf("Delete(partial name) error = %v, want ErrConfirmationMismatch", err)
	}
	if err := svc.Delete(ctx, p.ID, "borrar Ana Pérez Gómez"); !errors.Is(err, ErrConfirmationMismatch) {
		t.Errorf("Delete(lowercase keyword) error = %v, want ErrConfirmationMismatch", err)
	}

	if err := svc.Delete(ctx, p.ID, "BORRAR Ana Pérez Gómez"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascadesAndReleasesSlots(t *testing.T) {
	ctx := context.Background()
	svc, db := newService()

	p, _ := svc.Create(ctx, validRequest())

	// One appointment with its blocked slot, plus a slot shared with
	// another patient's appointment (booked then cancelled scenario is
	// covered in agenda tests; here both claims are live rows).
	_, _ = db.Appointments().Create(ctx, &store.Appointment{PatientID: p.ID, Date: "2026-09-07", Time: "15:00:00", Status: store.AppointmentActive})
	_, _ = db.BlockedSlots().Create(ctx, "2026-09-07", "15:00:00")

	otherReq := validRequest()
	otherReq.GivenName = "Luisa"
	otherReq.BirthDate = "1992-06-15"
	other, _ := svc.Create(ctx, otherReq)
	_, _ = db.Appointments().Create(ctx, &store.Appointment{PatientID: p.ID, Date: "2026-09-08", Time: "16:00:00", Status: store.AppointmentActive})
	_, _ = db.Appointments().Create(ctx, &store.Appointment{PatientID: other.ID, Date: "2026-09-08", Time: "16:00:00", Status: store.AppointmentCompleted})
	_, _ = db.BlockedSlots().Create(ctx, "2026-09-08", "16:00:00")

	if err := svc.Delete(ctx, p.ID, "BORRAR Ana Pérez Gómez"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Sole-claim slot released, shared slot kept.
	if exists, _ := db.BlockedSlots().Exists(ctx, "2026-09-07", "15:00:00"); exists {
		t.Error("sole-claim slot still blocked after cascade")
	}
	if exists, _ := db.BlockedSlots().Exists(ctx, "2026-09-08", "16:00:00"); !exists {
		t.Error("shared slot was released even though another appointment claims it")
	}

	appts, _ := db.Appointments().ListByPatient(ctx, p.ID)
	if len(appts) != 0 {
		t.Errorf("appointments after cascade = %d, want 0", len(appts))
	}
	hist, _ := db.History().ListByPatient(ctx, p.ID)
	if len(hist) != 0 {
		t.Errorf("history after cascade = %d, want 0", len(hist))
	}
}
