package recommend

import (
	"github.com/abuhisan/coffee-backend/internal/cart"
	"github.com/abuhisan/coffee-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

// CartSource reads the current cart of a session.
type CartSource interface {
	Get(sessionID string) cart.State
}

type Handler struct {
	recommender *Recommender
	carts       CartSource
}

func NewHandler(r *Recommender, carts CartSource) *Handler {
	return &Handler{recommender: r, carts: carts}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/recommendations", h.scoreCart)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/product/recommended", h.getRecommended)
}

func (h *Handler) getRecommended(c *fiber.Ctx) error {
	sessionID, err := session.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.recommender.Recommend(h.carts.Get(sessionID).Items))
}

type scoreRequest struct {
	Items []cart.Item `json:"items"`
}

// scoreCart ranks a cart sent in the body. Nothing is stored.
func (h *Handler) scoreCart(c *fiber.Ctx) error {
	payload := new(scoreRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if c.QueryBool("scores") {
		return c.JSON(h.recommender.Rank(payload.Items))
	}
	return c.JSON(h.recommender.Recommend(payload.Items))
}
