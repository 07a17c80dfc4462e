package cart

import (
	"errors"
	"strconv"

	"github.com/abuhisan/coffee-backend/internal/product"
	"github.com/abuhisan/coffee-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

// Recommender suggests products to go with the current cart lines.
type Recommender interface {
	Recommend(items []Item) []product.Product
}

// Handler delegates cart operations to the cart service.
type Handler struct {
	service     *Service
	recommender Recommender
}

func NewHandler(s *Service, r Recommender) *Handler {
	return &Handler{service: s, recommender: r}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Delete("/api/v1/cart/items/:index", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

// View is the cart drawer: lines, derived totals and the suggestion panel.
type View struct {
	Items           []Item            `json:"items"`
	Total           int               `json:"total"`
	Count           int               `json:"count"`
	Recommendations []product.Product `json:"recommendations"`
}

func (h *Handler) view(s State) View {
	items := s.Items
	if items == nil {
		items = []Item{}
	}
	recs := []product.Product{}
	if h.recommender != nil && len(items) > 0 {
		if r := h.recommender.Recommend(items); r != nil {
			recs = r
		}
	}
	return View{Items: items, Total: s.Total(), Count: s.Count(), Recommendations: recs}
}

// addRequest adds by catalog name, or carries a full snapshot when price is
// present.
type addRequest struct {
	Name     string           `json:"name"`
	Price    *Price           `json:"price,omitempty"`
	Emoji    string           `json:"emoji,omitempty"`
	Category product.Category `json:"category,omitempty"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	sessionID, err := session.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required"})
	}

	var state State
	if payload.Price == nil {
		state, err = h.service.AddByName(sessionID, payload.Name)
	} else {
		state, err = h.service.AddItem(sessionID, Item{
			Name:     payload.Name,
			Price:    *payload.Price,
			Emoji:    payload.Emoji,
			Category: payload.Category,
		})
	}
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case errors.Is(err, ErrInvalidItem):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(h.view(state))
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sessionID, err := session.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.view(h.service.Get(sessionID)))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sessionID, err := session.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid index"})
	}
	return c.JSON(h.view(h.service.Remove(sessionID, idx)))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sessionID, err := session.IDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	h.service.Clear(sessionID)
	return c.SendStatus(fiber.StatusNoContent)
}
