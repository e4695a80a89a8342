package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"foodkeeper/internal/service"
)

// errorPayload is the standardized error response body. The wire contract is
// a plain {message}, with itemsCount added only for the location-in-use
// conflict so the caller can re-prompt and retry with force.
type errorPayload struct {
	Message    string `json:"message"`
	ItemsCount *int   `json:"itemsCount,omitempty"`
}

// writeError writes a {message} error response with the given status.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Message: message})
}

// writeServiceError translates service-level errors to HTTP responses.
// Messages from the service taxonomy go out verbatim; anything unexpected is
// collapsed to a generic 500 so internals never leak.
func writeServiceError(c *fiber.Ctx, err error) error {
	var (
		vErr     *service.ValidationError
		conflict *service.ConflictError
	)
	switch {
	case errors.As(err, &vErr):
		return writeError(c, fiber.StatusBadRequest, vErr.Message)
	case errors.As(err, &conflict):
		count := conflict.ItemsCount
		return c.Status(fiber.StatusBadRequest).JSON(errorPayload{
			Message:    conflict.Message,
			ItemsCount: &count,
		})
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrLocationNotFound):
		return writeError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBackupUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for requests that never reach a route handler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusNotFound:
			return writeError(c, status, "Not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad request")
		default:
			return writeError(c, status, "Internal server error")
		}
	}
}
