package serverutils

import (
	"errors"

	"hulunote-be/internal/pkg/apperror"
	"hulunote-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// NewErrorHandlerMiddleware maps the error taxonomy to HTTP statuses:
// BadRequest 400, NotFound 404, PermissionDenied 403, everything else 500.
// Internal errors are logged in full and surfaced without detail.
func NewErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			switch appErr.Kind {
			case apperror.KindBadRequest:
				return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": appErr.Message})
			case apperror.KindNotFound:
				return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": appErr.Message})
			case apperror.KindPermissionDenied:
				return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": appErr.Message})
			default:
				log.Error("http", "internal error", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Unwrap(),
				})
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
