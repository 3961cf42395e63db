package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorHandler maps the usecase layer's grpc status codes onto HTTP.
// Internal errors are never leaked to the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.InvalidArgument:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": s.Message()})
		case codes.NotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": s.Message()})
		case codes.PermissionDenied:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": s.Message()})
		case codes.FailedPrecondition:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": s.Message()})
		}
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
