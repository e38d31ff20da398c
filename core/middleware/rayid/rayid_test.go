package rayid_test

import (
	"net/http/httptest"
	"testing"

	"content-state/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalKey).(string))
	})

	t.Run("Generated", func(t *testing.T) {
		res, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		rid := res.Header.Get(rayid.Header)
		_, parseErr := uuid.Parse(rid)
		assert.NoError(t, parseErr)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, "upstream-ray")

		res, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-ray", res.Header.Get(rayid.Header))
	})
}
