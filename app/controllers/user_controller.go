package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/apperr"
	"github.com/betwise/picks-backend/internal/pkg/usercontext"
)

// HandleRegister creates an account and returns its API key. The key is
// shown exactly once; only its hash is stored.
func HandleRegister(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.BadRequest("Invalid request body"))
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	if _, err := repo.GetByEmail(body.Email); err == nil {
		return respondError(c, apperr.BadRequest("Email already registered"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, err)
	}

	user, err := models.CreateUser(body.Name, body.Email, body.Password)
	if err != nil {
		return respondError(c, apperr.BadRequest(err.Error()))
	}

	apiKey, err := user.GenerateAPIKey()
	if err != nil {
		return respondError(c, err)
	}
	if err := repo.Create(user); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    user,
		"api_key": apiKey,
	})
}

// HandleGetMe returns the caller's profile including the entitlement
// snapshot.
func HandleGetMe(c *fiber.Ctx) error {
	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(usercontext.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperr.NotFound("User not found"))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
