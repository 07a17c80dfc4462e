package session

import (
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	issuer *Issuer
}

func NewHandler(issuer *Issuer) *Handler {
	return &Handler{issuer: issuer}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/session", h.createSession)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	tok, err := h.issuer.Issue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.Status(fiber.StatusCreated).JSON(tok)
}

// Middleware guards session-scoped routes. Every failure, missing or
// invalid token alike, is answered with 401.
func (h *Handler) Middleware() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: h.issuer.secret,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	})
}
