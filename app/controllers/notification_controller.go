package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/internal/pkg/apperr"
	"github.com/betwise/picks-backend/internal/pkg/database"
	"github.com/betwise/picks-backend/internal/pkg/listquery"
	"github.com/betwise/picks-backend/internal/pkg/notify"
	"github.com/betwise/picks-backend/internal/pkg/usercontext"
)

// HandleGetMyNotifications lists the caller's notifications plus operator
// broadcasts.
func HandleGetMyNotifications(c *fiber.Ctx) error {
	params := listquery.Parse(c)

	var notifications []models.Notification
	base := database.GetDB().Model(&models.Notification{}).
		Where("user_id IN ?", []uint{usercontext.GetUserID(c), notify.BroadcastUserID})

	meta, err := listquery.New(base, params).
		Sort().
		Paginate().
		Find(&notifications)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"meta": meta, "result": notifications})
}

// HandleMarkNotificationRead marks one of the caller's notifications read.
func HandleMarkNotificationRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	db := database.GetDB()
	var notification models.Notification
	if err := db.Where("id = ? AND user_id = ?", id, usercontext.GetUserID(c)).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperr.NotFound("Notification not found"))
		}
		return respondError(c, err)
	}

	if err := notification.MarkAsRead(db); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(notification)
}
