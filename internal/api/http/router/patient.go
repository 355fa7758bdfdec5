package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/drvaldez/consultorio_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	hh *handler.HistoryHandler,
	sessionRequired fiber.Handler,
) {
	patients := api.Group("/patients", sessionRequired)

	patients.Get("/", ph.List)
	patients.Post("/", ph.Create)

	p := patients.Group("/:id")
	p.Get("/", ph.Get)
	p.Put("/", ph.Update)
	p.Delete("/", ph.Delete)
	p.Get("/history", hh.ListByPatient)
}
