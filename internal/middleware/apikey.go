package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"
)

// APIKeyHeader is the request header carrying the shared API key.
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware rejects requests that do not carry the configured key.
type APIKeyMiddleware struct {
	key    []byte
	public map[string]struct{}
}

// NewAPIKeyMiddleware creates an API key middleware. Paths listed in public
// are served without a key. An empty key disables the check.
func NewAPIKeyMiddleware(key string, public ...string) *APIKeyMiddleware {
	m := &APIKeyMiddleware{key: []byte(key), public: make(map[string]struct{}, len(public))}
	for _, p := range public {
		m.public[p] = struct{}{}
	}
	return m
}

// Enabled reports whether a key is configured.
func (m *APIKeyMiddleware) Enabled() bool {
	return len(m.key) > 0
}

// RequireKey ensures the request carries the API key.
func (m *APIKeyMiddleware) RequireKey(c fiber.Ctx) error {
	if !m.Enabled() {
		return c.Next()
	}
	if _, ok := m.public[c.Path()]; ok {
		return c.Next()
	}

	got := []byte(c.Get(APIKeyHeader))
	if subtle.ConstantTimeCompare(got, m.key) != 1 {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid or missing API key")
	}

	return c.Next()
}
