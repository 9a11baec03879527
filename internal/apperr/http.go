package apperr

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Detail is the error body returned by every endpoint.
type Detail struct {
	Detail string `json:"detail"`
}

// BadRequest rejects a malformed request before any upstream work.
func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Detail{Detail: msg})
}

// Respond writes err as a 500. Typed failures carry their own message; any
// other error is logged in full and reported under prefix.
func Respond(c *fiber.Ctx, err error, prefix string) error {
	detail := err.Error()
	if Expected(err) {
		slog.Warn("request failed", "path", c.Path(), "requestid", c.Locals("requestid"), "error", err)
	} else {
		slog.Error("unexpected failure", "path", c.Path(), "requestid", c.Locals("requestid"), "error", err)
		detail = prefix + ": " + detail
	}
	return c.Status(fiber.StatusInternalServerError).JSON(Detail{Detail: detail})
}

// ErrorHandler is the fiber.Config.ErrorHandler for the app. It handles
// routing errors and anything a handler returned without writing a response,
// including recovered panics, whose messages are never shown to the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(Detail{Detail: fe.Message})
	}
	slog.Error("unhandled error", "method", c.Method(), "path", c.Path(), "requestid", c.Locals("requestid"), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(Detail{Detail: "Internal server error"})
}
