package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/drvaldez/consultorio_backend/internal/api/http/handler"
)

func (r *Router) registerAgendaRoutes(api fiber.Router, ah *handler.AgendaHandler, sessionRequired fiber.Handler) {
	ag := api.Group("/agenda", sessionRequired)

	ag.Get("/", ah.Snapshot)
	ag.Get("/day/:date", ah.Day)
	ag.Get("/stats", ah.Stats)

	appts := ag.Group("/appointments")
	appts.Post("/", ah.Book)
	appts.Post("/quick", ah.QuickBook)

	a := appts.Group("/:id")
	a.Delete("/", ah.Cancel)
	a.Patch("/complete", ah.Complete)
	a.Patch("/reschedule", ah.Reschedule)

	ag.Post("/blocks/toggle", ah.ToggleBlock)
}
