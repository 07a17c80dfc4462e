package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ClaimSessionID is the JWT claim holding the anonymous shopper id.
const ClaimSessionID = "session_id"

var ErrNoSession = errors.New("no session in request context")

// Token is what the storefront receives when it opens a session.
type Token struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Issuer signs anonymous session tokens. Carts and chat transcripts are keyed
// by the session id inside the token.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a fresh session id and a signed HS256 token for it.
func (i *Issuer) Issue() (Token, error) {
	id := uuid.NewString()
	exp := i.now().Add(i.ttl)

	claims := jwt.MapClaims{
		ClaimSessionID: id,
		"iat":          i.now().Unix(),
		"exp":          exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Token{}, err
	}
	return Token{SessionID: id, Token: signed, ExpiresAt: exp}, nil
}

// IDFromCtx extracts the session_id claim from the JWT token stored
// in `c.Locals("user")` by the JWT middleware.
func IDFromCtx(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok || tok == nil {
		return "", ErrNoSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	id, ok := claims[ClaimSessionID].(string)
	if !ok || id == "" {
		return "", ErrNoSession
	}
	return id, nil
}
