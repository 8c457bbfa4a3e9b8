package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // Error code: bad_request, validation_failed, internal_error, etc.
	Message   string `json:"message"` // Human-readable message
	RequestID string `json:"request_id,omitempty"`
}

// ValidationErrorResponse lists every violated rule in the order it was checked.
type ValidationErrorResponse struct {
	APIError
	Errors []domain.ValidationFailure `json:"errors"`
}

func requestID(c *fiber.Ctx) string {
	reqID, _ := c.Locals("requestid").(string)
	return reqID
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code string, message string) error {
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: requestID(c),
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusBadRequest, "bad_request", msg)
}

// errInternal returns a 500 error.
func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusInternalServerError, "internal_error", msg)
}

// errValidation returns a 400 carrying all validation failures.
func errValidation(c *fiber.Ctx, verr *domain.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{
		APIError: APIError{
			Status:    fiber.StatusBadRequest,
			Code:      "validation_failed",
			Message:   "request failed validation",
			RequestID: requestID(c),
		},
		Errors: verr.Failures,
	})
}

// respondError maps a usecase error onto the HTTP envelope.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return errValidation(c, verr)
	}
	LoggerFromCtx(c.UserContext()).Error("calculation failed", "error", err)
	return errInternal(c, "internal server error")
}
