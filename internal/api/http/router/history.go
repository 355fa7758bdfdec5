package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/drvaldez/consultorio_backend/internal/api/http/handler"
)

func (r *Router) registerHistoryRoutes(api fiber.Router, hh *handler.HistoryHandler, sessionRequired fiber.Handler) {
	hist := api.Group("/history", sessionRequired)
	hist.Post("/", hh.SaveItem)
	hist.Get("/:id/patient", hh.FindPatient)

	reports := api.Group("/reports", sessionRequired)
	reports.Get("/payments", hh.PaymentsReport)
	reports.Get("/prescriptions", hh.PrescriptionsReport)
}
