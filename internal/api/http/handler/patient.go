package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/service/patient"
	"github.com/drvaldez/consultorio_backend/internal/store"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrDuplicateRFC),
		errors.Is(err, patient.ErrDuplicateIdentity):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrConfirmationMismatch):
		return unprocessable(c, "confirmation_mismatch", err.Error())
	case errors.Is(err, patient.ErrValidation):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type patientBody struct {
	GivenName       string `json:"given_name"`
	PaternalSurname string `json:"paternal_surname"`
	MaternalSurname string `json:"maternal_surname"`
	BirthDate       string `json:"birth_date"`
	Sex             string `json:"sex"`
	Phone           string `json:"phone"`

	Allergies          []string               `json:"allergies"`
	ChronicConditions  []string               `json:"chronic_conditions"`
	CurrentMedications []string               `json:"current_medications"`
	PriorSurgeries     []store.Surgery        `json:"prior_surgeries"`
	FamilyHistory      string                 `json:"family_history"`
	SubstanceUse       string                 `json:"substance_use"`
	SubstanceDetail    *store.SubstanceDetail `json:"substance_detail"`
	ConsultationReason string                 `json:"consultation_reason"`
	InitialSymptoms    string                 `json:"initial_symptoms"`
}

func (b patientBody) toRequest() patient.SaveRequest {
	return patient.SaveRequest{
		GivenName:          b.GivenName,
		PaternalSurname:    b.PaternalSurname,
		MaternalSurname:    b.MaternalSurname,
		BirthDate:          b.BirthDate,
		Sex:                b.Sex,
		Phone:              b.Phone,
		Allergies:          b.Allergies,
		ChronicConditions:  b.ChronicConditions,
		CurrentMedications: b.CurrentMedications,
		PriorSurgeries:     b.PriorSurgeries,
		FamilyHistory:      b.FamilyHistory,
		SubstanceUse:       b.SubstanceUse,
		SubstanceDetail:    b.SubstanceDetail,
		ConsultationReason: b.ConsultationReason,
		InitialSymptoms:    b.InitialSymptoms,
	}
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	query := c.Query("q")

	var (
		patients []*store.Patient
		err      error
	)
	if query != "" {
		patients, err = h.svc.Search(c.Context(), query)
	} else {
		patients, err = h.svc.List(c.Context())
	}
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{"patients": patients, "total": len(patients)})
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Create(c.Context(), body.toRequest())
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// PUT /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body patientBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), id, body.toRequest())
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		Confirmation string `json:"confirmation"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Delete(c.Context(), id, body.Confirmation); err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, fiber.Map{"deleted": true})
}
