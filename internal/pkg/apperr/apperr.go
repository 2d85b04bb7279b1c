package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error carries an HTTP status alongside a caller-facing message so the
// service layer can express the NOT_FOUND / BAD_REQUEST / FORBIDDEN taxonomy
// without importing fiber handlers.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: message}
}

// StatusOf returns the HTTP status for err, defaulting to 500 for errors
// that do not carry one.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return fiber.StatusInternalServerError
}
