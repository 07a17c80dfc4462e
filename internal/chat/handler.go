package chat

import (
	"errors"

	"github.com/abuhisan/coffee-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/chat/match", h.match)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/chat/messages", h.postMessage)
	app.Get("/api/v1/chat/messages", h.getMessages)
}

type messageRequest struct {
	Text string `json:"text"`
}

// postMessage accepts the message; the reply shows up in the transcript
// once the typing delay has passed.
func (h *Handler) postMessage(c *fiber.Ctx) error {
	sessionID, err := session.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(messageRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	msg, err := h.service.Submit(sessionID, payload.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(msg)
}

func (h *Handler) getMessages(c *fiber.Ctx) error {
	sessionID, err := session.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.service.Transcript(sessionID))
}

func (h *Handler) match(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "q is required"})
	}
	return c.JSON(h.service.Respond(q))
}
