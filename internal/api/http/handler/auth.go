package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/drvaldez/consultorio_backend/internal/api/http/middleware"
	"github.com/drvaldez/consultorio_backend/internal/service/auth"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, "invalid_credentials", "invalid username or password")
		}
		return internalError(c)
	}

	return ok(c, fiber.Map{
		"token":    res.Token,
		"username": res.Username,
		"role":     res.Role,
	})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	token, valid := middleware.TokenFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	if err := h.svc.Logout(c.Context(), token); err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{"logged_out": true})
}

// GET /auth/session
func (h *AuthHandler) Session(c fiber.Ctx) error {
	data, valid := middleware.SessionFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	return ok(c, data)
}
