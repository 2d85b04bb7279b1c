package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/betwise/picks-backend/internal/pkg/apperr"
)

// respondError maps a service error to the JSON error shape used across the
// API. Unexpected errors are logged and masked as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	status := apperr.StatusOf(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{"error": "internal_server_error", "message": "Something went wrong"})
	}
	return c.Status(status).JSON(fiber.Map{"error": errorCode(status), "message": err.Error()})
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusBadRequest:
		return "bad_request"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	default:
		return "error"
	}
}

// parseIDParam reads a positive integer route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, apperr.BadRequest("Invalid " + name)
	}
	return uint(id), nil
}
