package utils

import "github.com/gofiber/fiber/v2"

// JSONError sends the plain {"message": ...} envelope the API uses for
// every failure.
func JSONError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// JSONInternal additionally echoes the underlying error description, the
// way unexpected failures are reported.
func JSONInternal(c *fiber.Ctx, msg string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": msg,
		"error":   err.Error(),
	})
}
