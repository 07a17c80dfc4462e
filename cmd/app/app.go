package main

import (
	"github.com/abuhisan/coffee-backend/internal/cart"
	"github.com/abuhisan/coffee-backend/internal/category"
	"github.com/abuhisan/coffee-backend/internal/chat"
	"github.com/abuhisan/coffee-backend/internal/config"
	"github.com/abuhisan/coffee-backend/internal/logger"
	"github.com/abuhisan/coffee-backend/internal/product"
	"github.com/abuhisan/coffee-backend/internal/recommend"
	"github.com/abuhisan/coffee-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func newApp(cfg config.Config, log logger.Logger, catalogRepo product.Repository) (*fiber.App, error) {
	weights, err := recommend.LoadWeights(cfg.RecommendConfigPath)
	if err != nil {
		return nil, err
	}
	intents, err := chat.LoadIntents(cfg.ChatIntentsPath)
	if err != nil {
		return nil, err
	}

	app := fiber.New()
	app.Use(recover.New())
	setupCORS(app)
	app.Use(logger.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	productService := product.NewService(catalogRepo)
	recommender := recommend.New(productService, weights)

	cartService := cart.NewService(cart.NewInMemoryRepository(cfg.SessionTTL), productService)
	chatService := chat.NewService(
		chat.NewResponder(chat.NewMatcher(intents), productService),
		cfg.SessionTTL, cfg.TypingMin, cfg.TypingMax, log,
	)

	sessionHandler := session.NewHandler(session.NewIssuer(cfg.JWTSecret, cfg.SessionTTL))
	productHandler := product.NewHandler(productService, cfg.AdminKeyHash)
	categoryHandler := category.NewHandler(category.NewService(productService))
	cartHandler := cart.NewHandler(cartService, recommender)
	recommendHandler := recommend.NewHandler(recommender, cartService)
	chatHandler := chat.NewHandler(chatService)

	sessionHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	recommendHandler.RegisterPublicRoutes(app)
	chatHandler.RegisterPublicRoutes(app)

	app.Use(sessionHandler.Middleware())

	cartHandler.RegisterProtectedRoutes(app)
	recommendHandler.RegisterProtectedRoutes(app)
	chatHandler.RegisterProtectedRoutes(app)

	log.Info("main", "routes registered", map[string]interface{}{
		"intents":         len(intents),
		"recommend_limit": weights.Limit,
	})
	return app, nil
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Admin-Key",
	}))
}
