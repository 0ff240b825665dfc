package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, app *fiber.App, headers map[string]string) (int, string, http.Header) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp.Header
}

func TestGatewayAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(GatewayAuthMiddleware("s3cret"))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	code, _, _ := request(t, app, nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _, _ = request(t, app, map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, body, _ := request(t, app, map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ok", body)

	code, _, _ = request(t, app, map[string]string{"Authorization": "s3cret"})
	assert.Equal(t, fiber.StatusOK, code)
}

func TestUserContextMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", UserContextMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c) + "|" + UserName(c))
	})

	code, _, _ := request(t, app, nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, body, _ := request(t, app, map[string]string{
		"X-User-ID":   "42",
		"X-User-Name": "Speedy%20Gonz%C3%A1lez",
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "42|Speedy González", body)
}

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	_, _, header := request(t, app, nil)
	assert.Len(t, header.Get(fiber.HeaderXRequestID), 36)

	_, _, header = request(t, app, map[string]string{fiber.HeaderXRequestID: "upstream-id"})
	assert.Equal(t, "upstream-id", header.Get(fiber.HeaderXRequestID))
}
