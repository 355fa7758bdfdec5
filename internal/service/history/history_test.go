package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/internal/store/memstore"
)

func newService(t *testing.T) (Service, *memstore.Store, *store.Patient) {
	t.Helper()

	db := memstore.New()
	p, err := db.Patients().Create(context.Background(), &store.Patient{
		GivenName:       "Carmen",
		PaternalSurname: "Ortega",
		BirthDate:       "1978-02-14",
	})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return New(db), db, p
}

func TestSaveItemAppends(t *testing.T) {
	ctx := context.Background()
	svc, _, p := newService(t)

	raw := json.RawMessage(`{
		"medications": [
			{"name": "Paracetamol", "dose": "500mg", "frequency": "cada 8 horas", "duration": "5 días", "instructions": "con alimentos"}
		],
		"recommendations": "reposo",
		"studies": "biometría hemática"
	}`)

	entry, err := svc.SaveItem(ctx, SaveItemRequest{PatientID: p.ID, Type: store.HistoryPrescriptionIssued, Payload: raw})
	if err != nil {
		t.Fatalf("SaveItem() error = %v", err)
	}
	if entry.Type != store.HistoryPrescriptionIssued {
		t.Errorf("entry type = %s", entry.Type)
	}

	prescription, err := PrescriptionFromPayload(entry.Payload)
	if err != nil {
		t.Fatalf("PrescriptionFromPayload() error = %v", err)
	}
	if len(prescription.Medications) != 1 || prescription.Medications[0].Name != "Paracetamol" {
		t.Errorf("prescription = %+v", prescription)
	}
	if prescription.Recommendations != "reposo" {
		t.Errorf("recommendations = %q", prescription.Recommendations)
	}
}

func TestSaveItemUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	svc, db, p := newService(t)

	entry, err := svc.SaveItem(ctx, SaveItemRequest{
		PatientID: p.ID,
		Type:      store.HistoryDiagnosisRecorded,
		Payload:   json.RawMessage(`{"title": "Gastritis", "description": "leve"}`),
	})
	if err != nil {
		t.Fatalf("SaveItem() error = %v", err)
	}

	updated, err := svc.SaveItem(ctx, SaveItemRequest{
		PatientID: p.ID,
		EntryID:   &entry.ID,
		Type:      store.HistoryDiagnosisRecorded,
		Payload:   json.RawMessage(`{"title": "Gastritis crónica", "description": "moderada"}`),
	})
	if err != nil {
		t.Fatalf("SaveItem(update) error = %v", err)
	}
	if updated.ID != entry.ID {
		t.Error("update created a new entry instead of overwriting")
	}
	if updated.Payload["title"] != "Gastritis crónica" {
		t.Errorf("payload after update = %+v", updated.Payload)
	}

	// Still a single entry for the patient.
	all, _ := db.History().ListByPatient(ctx, p.ID)
	if len(all) != 1 {
		t.Errorf("entries after in-place update = %d, want 1", len(all))
	}

	// Type mismatch on update is rejected.
	_, err = svc.SaveItem(ctx, SaveItemRequest{
		PatientID: p.ID,
		EntryID:   &entry.ID,
		Type:      store.HistoryPaymentRecorded,
		Payload:   json.RawMessage(`{"concept": "consulta", "amount": 500}`),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("SaveItem(type mismatch) error = %v, want ErrValidation", err)
	}
}

func TestSaveItemRejectsAppointmentTypes(t *testing.T) {
	ctx := context.Background()
	svc, _, p := newService(t)

	for _, tt := range []store.HistoryType{
		store.HistoryAppointmentBooked,
		store.HistoryAppointmentCancelled,
		store.HistoryPatientCreated,
		store.HistoryType("unknown"),
	} {
		_, err := svc.SaveItem(ctx, SaveItemRequest{PatientID: p.ID, Type: tt, Payload: json.RawMessage(`{}`)})
		if !errors.Is(err, ErrInvalidType) {
			t.Errorf("SaveItem(%s) error = %v, want ErrInvalidType", tt, err)
		}
	}
}

func TestSaveItemUnknownPatient(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.SaveItem(ctx, SaveItemRequest{
		PatientID: uuid.New(),
		Type:      store.HistoryPaymentRecorded,
		Payload:   json.RawMessage(`{"concept": "consulta", "amount": 500}`),
	})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("SaveItem(unknown patient) error = %v, want ErrPatientNotFound", err)
	}
}

func TestFindPatient(t *testing.T) {
	ctx := context.Background()
	svc, _, p := newService(t)

	entry, _ := svc.SaveItem(ctx, SaveItemRequest{
		PatientID: p.ID,
		Type:      store.HistoryMedicalNoteRecorded,
		Payload:   json.RawMessage(`{"diagnosis": "migraña", "details": "episodios semanales"}`),
	})

	found, err := svc.FindPatient(ctx, entry.ID)
	if err != nil {
		t.Fatalf("FindPatient() error = %v", err)
	}
	if found.ID != p.ID {
		t.Errorf("FindPatient() = %s, want %s", found.ID, p.ID)
	}

	if _, err := svc.FindPatient(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindPatient(missing) error = %v, want ErrNotFound", err)
	}
}

func TestPaymentsReport(t *testing.T) {
	ctx := context.Background()
	svc, db, p := newService(t)

	other, _ := db.Patients().Create(ctx, &store.Patient{GivenName: "Hugo", PaternalSurname: "Lara", BirthDate: "1965-09-30"})

	_, _ = svc.SaveItem(ctx, SaveItemRequest{
		PatientID: p.ID,
		Type:      store.HistoryPaymentRecorded,
		Payload:   json.RawMessage(`{"concept": "consulta", "amount": 800, "method": "efectivo", "invoiced": true, "invoice_issued": false}`),
	})
	_, _ = svc.SaveItem(ctx, SaveItemRequest{
		PatientID: other.ID,
		Type:      store.HistoryPaymentRecorded,
		Payload:   json.RawMessage(`{"concept": "ultrasonido", "amount": 1200, "method": "tarjeta"}`),
	})
	// A prescription must not leak into the payments report.
	_, _ = svc.SaveItem(ctx, SaveItemRequest{
		PatientID: p.ID,
		Type:      store.HistoryPrescriptionIssued,
		Payload:   json.RawMessage(`{"medications": [], "recommendations": "", "studies": ""}`),
	})

	rows, err := svc.PaymentsReport(ctx, "", "")
	if err != nil {
		t.Fatalf("PaymentsReport() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("PaymentsReport() = %d rows, want 2", len(rows))
	}

	total := rows[0].Payment.Amount + rows[1].Payment.Amount
	if total != 2000 {
		t.Errorf("summed amounts = %v, want 2000", total)
	}
	for _, row := range rows {
		if row.PatientName == "" {
			t.Errorf("row %s has empty patient name", row.EntryID)
		}
	}
}

func TestPrescriptionsReport(t *testing.T) {
	ctx := context.Background()
	svc, _, p := newService(t)

	_, _ = svc.SaveItem(ctx, SaveItemRequest{
		PatientID: p.ID,
		Type:      store.HistoryPrescriptionIssued,
		Payload:   json.RawMessage(`{"medications": [{"name": "Omeprazol", "dose": "20mg"}], "recommendations": "", "studies": ""}`),
	})

	rows, err := svc.PrescriptionsReport(ctx, "", "")
	if err != nil {
		t.Fatalf("PrescriptionsReport() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("PrescriptionsReport() = %d rows, want 1", len(rows))
	}
	if rows[0].PatientName != "Carmen Ortega" {
		t.Errorf("patient name = %q", rows[0].PatientName)
	}
	if rows[0].Prescription.Medications[0].Name != "Omeprazol" {
		t.Errorf("prescription = %+v", rows[0].Prescription)
	}
}
