package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/apperr"
	"github.com/betwise/picks-backend/internal/pkg/listquery"
	"github.com/betwise/picks-backend/internal/pkg/usercontext"
)

// HandlePostFeedback stores a feedback submission from the caller.
func HandlePostFeedback(c *fiber.Ctx) error {
	var body struct {
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.BadRequest("Invalid request body"))
	}

	feedback := &models.Feedback{
		UserID:  usercontext.GetUserID(c),
		Subject: body.Subject,
		Message: body.Message,
	}
	if err := feedback.Validate(); err != nil {
		return respondError(c, apperr.BadRequest(err.Error()))
	}
	if err := repository.GetGlobalFactory().GetFeedbackRepository().Create(feedback); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// HandleGetAllFeedback lists feedback for operators.
func HandleGetAllFeedback(c *fiber.Ctx) error {
	params := listquery.Parse(c)

	repo := repository.GetGlobalFactory().GetFeedbackRepository()
	total, err := repo.Count()
	if err != nil {
		return respondError(c, err)
	}
	feedback, err := repo.List((params.Page-1)*params.Limit, params.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"meta":   listquery.NewMeta(params.Page, params.Limit, total),
		"result": feedback,
	})
}
