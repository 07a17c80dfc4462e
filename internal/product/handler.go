package product

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	service      *Service
	adminKeyHash string
}

// NewHandler builds the catalog handler. adminKeyHash is the bcrypt hash
// guarding the dev reset endpoint; an empty hash disables it.
func NewHandler(service *Service, adminKeyHash string) *Handler {
	return &Handler{service: service, adminKeyHash: adminKeyHash}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/:name", h.getProduct)

	app.Post("/dev/reset-products", h.resetProducts)
}

// getProducts serves the filter tabs and the search box: ?category=espresso&q=لاتيه
func (h *Handler) getProducts(c *fiber.Ctx) error {
	products := h.service.Query(c.Query("category"), c.Query("q"))
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product name"})
	}

	p, err := h.service.GetByName(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(p)
}

// resetProducts replaces the catalog with the posted list, or with the
// built-in menu when the body is not a product list. Requires X-Admin-Key.
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	if !h.adminAllowed(c.Get("X-Admin-Key")) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "reset not allowed"})
	}

	var products []Product
	if err := c.BodyParser(&products); err != nil {
		products = DefaultCatalog()
	}

	for i := range products {
		if ves := validateProductPayload(&products[i]); len(ves) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"index": i, "errors": ves})
		}
	}

	if err := h.service.ResetProducts(products); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) adminAllowed(key string) bool {
	if h.adminKeyHash == "" || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.adminKeyHash), []byte(key)) == nil
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price <= 0 {
		errs["price"] = "price must be > 0"
	}
	if c, ok := ParseCategory(string(p.Category)); ok {
		p.Category = c
	} else {
		errs["category"] = "invalid category"
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return errs
}
