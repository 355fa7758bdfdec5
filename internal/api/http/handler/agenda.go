package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/service/agenda"
	"github.com/drvaldez/consultorio_backend/pkg/constants"
)

type AgendaHandler struct {
	svc agenda.Service
}

func NewAgendaHandler(svc agenda.Service) *AgendaHandler {
	return &AgendaHandler{svc: svc}
}

func mapAgendaError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, agenda.ErrNotFound),
		errors.Is(err, agenda.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, agenda.ErrSlotUnavailable):
		return conflict(c, err.Error())
	case errors.Is(err, agenda.ErrSlotOccupied):
		return conflict(c, err.Error())
	case errors.Is(err, agenda.ErrInvalidState):
		return unprocessable(c, "invalid_state", err.Error())
	case errors.Is(err, agenda.ErrNotYetElapsed):
		return unprocessable(c, "not_yet_elapsed", err.Error())
	case errors.Is(err, agenda.ErrInvalidDate),
		errors.Is(err, agenda.ErrValidation):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /agenda
func (h *AgendaHandler) Snapshot(c fiber.Ctx) error {
	snap, err := h.svc.Snapshot(c.Context())
	if err != nil {
		return mapAgendaError(c, err)
	}
	return ok(c, snap)
}

// GET /agenda/day/:date
func (h *AgendaHandler) Day(c fiber.Ctx) error {
	date := c.Params("date")
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	slots, err := h.svc.Day(c.Context(), date)
	if err != nil {
		return mapAgendaError(c, err)
	}
	return ok(c, fiber.Map{"date": date, "slots": slots})
}

// GET /agenda/stats
func (h *AgendaHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.Context())
	if err != nil {
		return mapAgendaError(c, err)
	}
	return ok(c, stats)
}

// POST /agenda/appointments
func (h *AgendaHandler) Book(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patient_id"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Reason    string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	appt, err := h.svc.Book(c.Context(), agenda.BookRequest{
		PatientID: patientID,
		Date:      body.Date,
		Time:      body.Time,
		Reason:    body.Reason,
	})
	if err != nil {
		return mapAgendaError(c, err)
	}
	return created(c, appt)
}

// POST /agenda/appointments/quick
func (h *AgendaHandler) QuickBook(c fiber.Ctx) error {
	var body struct {
		PatientName     string `json:"patient_name"`
		Date            string `json:"date"`
		Time            string `json:"time"`
		Reason          string `json:"reason"`
		CreateIfMissing bool   `json:"create_if_missing"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.QuickBook(c.Context(), agenda.QuickBookRequest{
		PatientName:     body.PatientName,
		Date:            body.Date,
		Time:            body.Time,
		Reason:          body.Reason,
		CreateIfMissing: body.CreateIfMissing,
	})
	if err != nil {
		return mapAgendaError(c, err)
	}
	return created(c, res)
}

// DELETE /agenda/appointments/:id
func (h *AgendaHandler) Cancel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Cancel(c.Context(), id); err != nil {
		return mapAgendaError(c, err)
	}
	return ok(c, fiber.Map{"cancelled": true})
}

// PATCH /agenda/appointments/:id/complete
func (h *AgendaHandler) Complete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Complete(c.Context(), id)
	if err != nil {
		return mapAgendaError(c, err)
	}
	return ok(c, appt)
}

// PATCH /agenda/appointments/:id/reschedule
func (h *AgendaHandler) Reschedule(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Reschedule(c.Context(), id, body.Date, body.Time)
	if err != nil {
		return mapAgendaError(c, err)
	}
	return ok(c, appt)
}

// POST /agenda/blocks/toggle
func (h *AgendaHandler) ToggleBlock(c fiber.Ctx) error {
	var body struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	blocked, err := h.svc.ToggleBlock(c.Context(), body.Date, body.Time)
	if err != nil {
		return mapAgendaError(c, err)
	}
	return ok(c, fiber.Map{"date": body.Date, "time": body.Time, "blocked": blocked})
}
