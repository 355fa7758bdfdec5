package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/drvaldez/consultorio_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, ah *handler.AuthHandler, sessionRequired fiber.Handler) {
	authGroup := api.Group("/auth")

	authGroup.Post("/login", ah.Login)
	authGroup.Post("/logout", sessionRequired, ah.Logout)
	authGroup.Get("/session", sessionRequired, ah.Session)
}
