package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskflow-api/domain/apperrors"
	"taskflow-api/pkg/logger"
	"taskflow-api/pkg/utils"
)

// ErrorHandler is the boundary: anything a handler returns as an error is
// converted to the structured JSON envelope here. Persistence details are
// only exposed in development mode.
func ErrorHandler(development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if ve, ok := apperrors.AsValidation(err); ok {
			return utils.ValidationErrorResponse(c, ve)
		}

		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, "Task not found")
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message)
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "error", err)

		if development {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
		}
		return utils.InternalServerErrorResponse(c)
	}
}
