package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/drvaldez/consultorio_backend/internal/service/auth"
	"github.com/drvaldez/consultorio_backend/pkg/constants"
	"github.com/drvaldez/consultorio_backend/pkg/session"
)

const (
	LocalsSession = "session_data"
	LocalsToken   = "session_token"
)

// SessionRequired validates the Bearer session token against Redis.
// On success it stores the *session.Data and the raw token in locals.
func SessionRequired(svc auth.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}
		token := strings.TrimSpace(parts[1])

		data, err := svc.Check(c.Context(), token)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		if data.Role != constants.RoleDoctor {
			return fiber.ErrForbidden
		}

		c.Locals(LocalsSession, data)
		c.Locals(LocalsToken, token)
		return c.Next()
	}
}

func SessionFromLocals(c fiber.Ctx) (*session.Data, bool) {
	d, ok := c.Locals(LocalsSession).(*session.Data)
	return d, ok && d != nil
}

func TokenFromLocals(c fiber.Ctx) (string, bool) {
	s, ok := c.Locals(LocalsToken).(string)
	return s, ok && s != ""
}
