package identity

import (
	"errors"
	"strings"

	"content-state/core/api"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
)

// LocalKey is the fiber locals key the resolved user id is stored under.
const LocalKey = "user_id"

// ErrUnauthorized is returned when no user can be resolved from the request.
var ErrUnauthorized = errors.New("unauthorized")

// Verifier validates HS256 user tokens.
type Verifier struct {
	Secret []byte
}

// Parse verifies token and returns its registered claims.
func (v Verifier) Parse(token string) (*jwt.RegisteredClaims, error) {
	if len(v.Secret) == 0 {
		return nil, errors.New("token secret is not configured")
	}
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// UserID resolves the user id carried by the token. The subject claim is the user id.
func (v Verifier) UserID(token string) (string, error) {
	claims, err := v.Parse(token)
	if err != nil {
		return "", err
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return "", ErrUnauthorized
	}
	return sub, nil
}

// RequireUser returns a middleware that resolves the caller's user id from the configured token
// header, falling back to an "Authorization: Bearer" header. Unresolvable callers get a 401 envelope
// reported under apiID.
func RequireUser(cfg Config, apiID string) fiber.Handler {
	verifier := Verifier{Secret: []byte(cfg.TokenSecret)}
	header := cfg.TokenHeader
	if header == "" {
		header = "x-authenticated-user-token"
	}

	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(header))
		if token == "" {
			token = bearer(c.Get(fiber.HeaderAuthorization))
		}
		if token == "" {
			return unauthorized(c, apiID)
		}
		uid, err := verifier.UserID(token)
		if err != nil {
			return unauthorized(c, apiID)
		}
		c.Locals(LocalKey, uid)
		return c.Next()
	}
}

// UserID returns the user id resolved by RequireUser.
func UserID(c *fiber.Ctx) (string, bool) {
	uid, ok := c.Locals(LocalKey).(string)
	return uid, ok && uid != ""
}

func bearer(authz string) string {
	parts := strings.SplitN(strings.TrimSpace(authz), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *fiber.Ctx, apiID string) error {
	return api.Send(c, fiber.StatusUnauthorized, api.Failed(apiID, api.CodeUnauthorized, "You are not authorized."))
}
