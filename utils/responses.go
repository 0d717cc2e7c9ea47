package utils

import "github.com/gofiber/fiber/v2"

// Message sends the static single-message body every non-row response
// uses. No field-level detail is ever attached.
func Message(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}
