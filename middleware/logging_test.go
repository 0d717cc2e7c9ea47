package middleware

import (
	"bytes"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddlewareRecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	app := fiber.New()
	app.Use(LoggingMiddleware(logger))
	app.Get("/api/students", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/students", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	line := buf.String()
	assert.Contains(t, line, "GET")
	assert.Contains(t, line, "/api/students")
	assert.Contains(t, line, "200")
}
