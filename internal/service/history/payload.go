package history

import (
	"encoding/json"
	"fmt"

	"github.com/drvaldez/consultorio_backend/internal/store"
)

// One payload struct per clinical entry type. The JSON column stays a
// free-form map at the storage layer; these types are the contract the
// service validates against.

type Medication struct {
	Name         string `json:"name"`
	Dose         string `json:"dose"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

type Prescription struct {
	Medications     []Medication `json:"medications"`
	Recommendations string       `json:"recommendations"`
	Studies         string       `json:"studies"`
}

type Diagnosis struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Study struct {
	StudyType string `json:"study_type"`
	BodyPart  string `json:"body_part"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}

type MedicalNote struct {
	Diagnosis string `json:"diagnosis"`
	Details   string `json:"details"`
}

type Payment struct {
	Concept       string  `json:"concept"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Invoiced      bool    `json:"invoiced"`
	InvoiceIssued bool    `json:"invoice_issued"`
}

// decodePayload parses raw JSON against the payload shape of t and
// returns it as the generic map the store persists. Unknown fields are
// dropped; a payload that does not parse is rejected.
func decodePayload(t store.HistoryType, raw json.RawMessage) (map[string]any, error) {
	var typed any
	switch t {
	case store.HistoryPrescriptionIssued:
		typed = &Prescription{}
	case store.HistoryDiagnosisRecorded:
		typed = &Diagnosis{}
	case store.HistoryStudyRecorded:
		typed = &Study{}
	case store.HistoryMedicalNoteRecorded:
		typed = &MedicalNote{}
	case store.HistoryPaymentRecorded:
		typed = &Payment{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, t)
	}

	if err := json.Unmarshal(raw, typed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return toMap(typed)
}

func toMap(v any) (map[string]any, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}

// PaymentFromPayload reconstructs the typed payment from a stored map.
func PaymentFromPayload(payload map[string]any) (*Payment, error) {
	return fromMap[Payment](payload)
}

// PrescriptionFromPayload reconstructs the typed prescription.
func PrescriptionFromPayload(payload map[string]any) (*Prescription, error) {
	return fromMap[Prescription](payload)
}

func fromMap[T any](payload map[string]any) (*T, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	out := new(T)
	if err := json.Unmarshal(buf, out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}
