package handler

import "github.com/gofiber/fiber/v3"

// Every response carries the same envelope: {"success": true, "data": ...}
// or {"success": false, "error": {"kind": ..., "message": ...}}.

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func fail(c fiber.Ctx, status int, kind, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   fiber.Map{"kind": kind, "message": msg},
	})
}

func badRequest(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusBadRequest, "validation", msg)
}

func unauthorized(c fiber.Ctx) error {
	return fail(c, fiber.StatusUnauthorized, "unauthorized", "authentication required")
}

func notFound(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusNotFound, "not_found", msg)
}

func conflict(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusConflict, "conflict", msg)
}

func unprocessable(c fiber.Ctx, kind, msg string) error {
	return fail(c, fiber.StatusUnprocessableEntity, kind, msg)
}

func internalError(c fiber.Ctx) error {
	return fail(c, fiber.StatusInternalServerError, "internal", "internal server error")
}
