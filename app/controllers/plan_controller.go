package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/apperr"
)

type planInput struct {
	SubscriptionType string          `json:"subscriptionType"`
	Price            decimal.Decimal `json:"price"`
	Duration         string          `json:"duration"`
	Features         []string        `json:"features"`
}

// HandleCreatePlan creates a subscription plan.
func HandleCreatePlan(c *fiber.Ctx) error {
	var body planInput
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.BadRequest("Invalid request body"))
	}

	plan := &models.SubscriptionPlan{
		SubscriptionType: body.SubscriptionType,
		Price:            body.Price,
		Duration:         body.Duration,
	}
	if err := plan.SetFeatures(body.Features); err != nil {
		return respondError(c, apperr.BadRequest("Invalid feature list"))
	}
	if err := plan.Validate(); err != nil {
		return respondError(c, apperr.BadRequest(err.Error()))
	}

	if err := repository.GetGlobalFactory().GetPlanRepository().Create(plan); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(planResponse(plan))
}

// HandleGetAllPlans lists plans in ladder order for the pricing page.
func HandleGetAllPlans(c *fiber.Ctx) error {
	plans, err := repository.GetGlobalFactory().GetPlanRepository().List()
	if err != nil {
		return respondError(c, err)
	}

	out := make([]fiber.Map, len(plans))
	for i := range plans {
		out[i] = planResponse(&plans[i])
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"plans": out})
}

// HandleUpdatePlan edits a plan. Existing ledger entries keep their amount
// snapshot, so the edit never reaches already-computed windows or charges.
func HandleUpdatePlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	plan, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperr.NotFound("SubscriptionPlan not found"))
		}
		return respondError(c, err)
	}

	var body planInput
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.BadRequest("Invalid request body"))
	}

	plan.SubscriptionType = body.SubscriptionType
	plan.Price = body.Price
	plan.Duration = body.Duration
	if err := plan.SetFeatures(body.Features); err != nil {
		return respondError(c, apperr.BadRequest("Invalid feature list"))
	}
	if err := plan.Validate(); err != nil {
		return respondError(c, apperr.BadRequest(err.Error()))
	}
	if err := repo.Update(plan); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(planResponse(plan))
}

// HandleDeletePlan removes a plan. Ledger entries referencing it survive
// with a null plan reference.
func HandleDeletePlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	if _, err := repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperr.NotFound("SubscriptionPlan not found"))
		}
		return respondError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": true})
}

func planResponse(plan *models.SubscriptionPlan) fiber.Map {
	return fiber.Map{
		"id":                plan.ID,
		"subscription_type": plan.SubscriptionType,
		"price":             plan.Price,
		"duration":          plan.Duration,
		"features":          plan.Features(),
		"created_at":        plan.CreatedAt,
		"updated_at":        plan.UpdatedAt,
	}
}
