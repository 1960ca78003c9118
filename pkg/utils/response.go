package utils

import (
	"github.com/gofiber/fiber/v2"

	"taskflow-api/domain/apperrors"
)

// ========== Response Structures ==========

type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type PaginatedResponse struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ErrorBody is the envelope for every rejection: a human-readable message
// plus the offending field and, for enum mismatches, the allowed values.
type ErrorBody struct {
	Success       bool     `json:"success"`
	Error         string   `json:"error"`
	Field         string   `json:"field,omitempty"`
	ValidOptions  []string `json:"validOptions,omitempty"`
	ReceivedValue string   `json:"receivedValue,omitempty"`
}

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// PaginatedSuccessResponse emits a page with its metadata. totalPages is 0
// when the filtered set is empty.
func PaginatedSuccessResponse(c *fiber.Ctx, data any, total int64, page, limit, totalPages int) error {
	return c.Status(fiber.StatusOK).JSON(PaginatedResponse{
		Success: true,
		Data:    data,
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	})
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Success: false,
		Error:   message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, ve *apperrors.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{
		Success:       false,
		Error:         ve.Message,
		Field:         ve.Field,
		ValidOptions:  ve.ValidOptions,
		ReceivedValue: ve.ReceivedValue,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

func TooManyRequestsResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Too many requests"
	}
	return ErrorResponse(c, fiber.StatusTooManyRequests, message)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}
