package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/service/history"
	"github.com/drvaldez/consultorio_backend/internal/store"
)

type HistoryHandler struct {
	svc history.Service
}

func NewHistoryHandler(svc history.Service) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

func mapHistoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, history.ErrNotFound),
		errors.Is(err, history.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, history.ErrInvalidType):
		return unprocessable(c, "invalid_type", err.Error())
	case errors.Is(err, history.ErrValidation):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/:id/history
func (h *HistoryHandler) ListByPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	entries, err := h.svc.ListByPatient(c.Context(), patientID)
	if err != nil {
		return mapHistoryError(c, err)
	}
	return ok(c, fiber.Map{"entries": entries, "total": len(entries)})
}

// POST /history
func (h *HistoryHandler) SaveItem(c fiber.Ctx) error {
	var body struct {
		PatientID string          `json:"patient_id"`
		EntryID   *string         `json:"entry_id"`
		Type      string          `json:"type"`
		Payload   json.RawMessage `json:"payload"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	req := history.SaveItemRequest{
		PatientID: patientID,
		Type:      store.HistoryType(body.Type),
		Payload:   body.Payload,
	}
	if body.EntryID != nil {
		entryID, err := uuid.Parse(*body.EntryID)
		if err != nil {
			return badRequest(c, "invalid entry_id")
		}
		req.EntryID = &entryID
	}

	entry, err := h.svc.SaveItem(c.Context(), req)
	if err != nil {
		return mapHistoryError(c, err)
	}
	if req.EntryID != nil {
		return ok(c, entry)
	}
	return created(c, entry)
}

// GET /history/:id/patient
func (h *HistoryHandler) FindPatient(c fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	p, err := h.svc.FindPatient(c.Context(), entryID)
	if err != nil {
		return mapHistoryError(c, err)
	}
	return ok(c, p)
}

// GET /reports/payments?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *HistoryHandler) PaymentsReport(c fiber.Ctx) error {
	rows, err := h.svc.PaymentsReport(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		return mapHistoryError(c, err)
	}

	var total float64
	for _, row := range rows {
		total += row.Payment.Amount
	}
	return ok(c, fiber.Map{"payments": rows, "total_amount": total})
}

// GET /reports/prescriptions?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *HistoryHandler) PrescriptionsReport(c fiber.Ctx) error {
	rows, err := h.svc.PrescriptionsReport(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		return mapHistoryError(c, err)
	}
	return ok(c, fiber.Map{"prescriptions": rows, "total": len(rows)})
}
