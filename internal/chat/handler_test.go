package chat

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abuhisan/coffee-backend/internal/logger"
	"github.com/abuhisan/coffee-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithChatHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Session-ID"); v != "" {
			c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{session.ClaimSessionID: v}})
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func immediate(_ time.Duration, fn func()) { fn() }

func TestChatRoutes_MessageAndTranscript(t *testing.T) {
	svc := NewService(newResponder(), time.Hour, 0, 0, logger.NewNop()).WithScheduler(immediate)
	app := makeAppWithChatHandler(NewHandler(svc))

	req := httptest.NewRequest("POST", "/api/v1/chat/messages", strings.NewReader(`{"text":"بارد"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("POST", "/api/v1/chat/messages", strings.NewReader(`{"text":"بارد"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if res.StatusCode != fiber.StatusAccepted {
		t.Fatalf("expected 202 got %d", res.StatusCode)
	}

	req = httptest.NewRequest("GET", "/api/v1/chat/messages", nil)
	req.Header.Set("X-Session-ID", "s1")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	var tr []Message
	if err := json.NewDecoder(res.Body).Decode(&tr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(tr) != 2 || tr[1].Role != RoleBot || tr[1].Intent != IntentCold {
		t.Fatalf("unexpected transcript %+v", tr)
	}

	req = httptest.NewRequest("POST", "/api/v1/chat/messages", strings.NewReader(`{"text":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "s1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty text, got %d", res.StatusCode)
	}
}

func TestChatRoutes_Match(t *testing.T) {
	svc := NewService(newResponder(), time.Hour, 0, 0, logger.NewNop())
	app := makeAppWithChatHandler(NewHandler(svc))

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/chat/match?q=hello", nil))
	if err != nil {
		t.Fatalf("match failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var reply Reply
	if err := json.NewDecoder(res.Body).Decode(&reply); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reply.Intent != IntentGreeting {
		t.Fatalf("expected greeting, got %s", reply.Intent)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/chat/match", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without q, got %d", res.StatusCode)
	}
}
