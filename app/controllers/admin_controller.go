package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/apperr"
	"github.com/betwise/picks-backend/internal/pkg/listquery"
	"github.com/betwise/picks-backend/internal/pkg/usercontext"
)

// staffRoles are the roles managed through the staff endpoints.
var staffRoles = []string{models.ROLE_ADMIN, models.ROLE_SUPER_ADMIN}

// HandleGetContentGating reports the tier-gating kill switch state.
func HandleGetContentGating(c *fiber.Ctx) error {
	enabled := repository.GetGlobalFactory().GetSettingRepository().
		GetBool(models.SettingContentGatingEnabled, true)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"content_gating_enabled": enabled})
}

// HandleSetContentGating flips the tier-gating kill switch. With gating off
// every post is served regardless of subscription state.
func HandleSetContentGating(c *fiber.Ctx) error {
	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if err := c.BodyParser(&body); err != nil || body.Enabled == nil {
		return respondError(c, apperr.BadRequest("enabled is required"))
	}

	value := "false"
	if *body.Enabled {
		value = "true"
	}
	if err := repository.GetGlobalFactory().GetSettingRepository().
		SetValue(models.SettingContentGatingEnabled, value, "boolean"); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"content_gating_enabled": *body.Enabled})
}

// HandleGetAdmin returns one staff account.
func HandleGetAdmin(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	admin, err := repository.GetGlobalFactory().GetUserRepository().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperr.NotFound("Admin not found"))
		}
		return respondError(c, err)
	}
	if !admin.IsStaff() {
		return respondError(c, apperr.NotFound("Admin not found"))
	}

	return c.Status(fiber.StatusOK).JSON(admin)
}

// HandleGetAllAdmins lists staff accounts for super admins.
func HandleGetAllAdmins(c *fiber.Ctx) error {
	params := listquery.Parse(c)

	repo := repository.GetGlobalFactory().GetUserRepository()
	total, err := repo.CountByRoles(staffRoles)
	if err != nil {
		return respondError(c, err)
	}
	admins, err := repo.ListByRoles(staffRoles, (params.Page-1)*params.Limit, params.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"meta":   listquery.NewMeta(params.Page, params.Limit, total),
		"admins": admins,
	})
}

// HandleDeleteAdmin removes a staff account. Self-deletion is rejected so a
// super admin cannot lock the operator team out of its own surface.
func HandleDeleteAdmin(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if id == usercontext.GetUserID(c) {
		return respondError(c, apperr.BadRequest("You cannot delete your own account"))
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	admin, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperr.NotFound("Admin not found"))
		}
		return respondError(c, err)
	}
	if !admin.IsStaff() {
		return respondError(c, apperr.NotFound("Admin not found"))
	}

	if err := repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": true})
}
