package serverutils

import (
	"errors"

	"parts-catalog-be/internal/pkg/apperror"
	"parts-catalog-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps typed application errors onto HTTP statuses:
// NotFound 404, Validation 422, Conflict 409, Storage and everything
// else 500. Controllers return errors; they never write error JSON.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := fiber.StatusInternalServerError
			switch appErr.Kind {
			case apperror.KindNotFound:
				status = fiber.StatusNotFound
			case apperror.KindValidation:
				status = fiber.StatusUnprocessableEntity
			case apperror.KindConflict:
				status = fiber.StatusConflict
			case apperror.KindStorage:
				log.Error("http", "storage failure", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
			}
			return ctx.Status(status).JSON(ErrorBody{
				Status:  "error",
				Message: appErr.Message,
				Field:   appErr.Field,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorBody{
				Status:  "error",
				Message: fiberErr.Message,
			})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorBody{
			Status:  "error",
			Message: "internal server error",
		})
	}
}
