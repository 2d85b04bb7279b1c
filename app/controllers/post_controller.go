package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/apperr"
	"github.com/betwise/picks-backend/internal/pkg/database"
	"github.com/betwise/picks-backend/internal/pkg/entitlements"
	"github.com/betwise/picks-backend/internal/pkg/listquery"
	"github.com/betwise/picks-backend/internal/pkg/usercontext"
)

type postInput struct {
	PostTitle             string  `json:"postTitle"`
	SportType             string  `json:"sportType"`
	PredictionType        string  `json:"predictionType"`
	PredictionDescription string  `json:"predictionDescription"`
	WinRate               float64 `json:"winRate"`
	OddsRange             string  `json:"oddsRange"`
	PostImage             string  `json:"postImage"`
	TargetUser            string  `json:"targetUser"`
}

// HandleCreatePost creates a pick authored by the calling admin or
// super-admin. Exactly one author reference is stamped from the caller role.
func HandleCreatePost(c *fiber.Ctx) error {
	var body postInput
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.BadRequest("Invalid request body"))
	}

	userCtx := usercontext.GetUserContext(c)
	post := &models.Post{
		PostTitle:             body.PostTitle,
		SportType:             body.SportType,
		PredictionType:        body.PredictionType,
		PredictionDescription: body.PredictionDescription,
		WinRate:               body.WinRate,
		OddsRange:             body.OddsRange,
		PostImage:             body.PostImage,
		TargetUser:            body.TargetUser,
	}
	authorID := userCtx.UserID
	if userCtx.Role == models.ROLE_SUPER_ADMIN {
		post.PostedBySuperAdminID = &authorID
	} else {
		post.PostedByAdminID = &authorID
	}

	if err := post.Validate(); err != nil {
		return respondError(c, apperr.BadRequest(err.Error()))
	}
	if err := repository.GetGlobalFactory().GetPostRepository().Create(post); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleGetAllPosts lists picks visible to the caller. Tier gating applies
// unless the operator kill switch has disabled it; the toggle is read once
// here and passed into the evaluation, never consulted again downstream.
func HandleGetAllPosts(c *fiber.Ctx) error {
	gating := repository.GetGlobalFactory().GetSettingRepository().
		GetBool(models.SettingContentGatingEnabled, true)
	userCtx := usercontext.GetUserContext(c)
	params := listquery.Parse(c, "sport_type", "prediction_type", "target_user")

	base := database.GetDB().Model(&models.Post{})

	if gating {
		tier, err := subscriberTier(userCtx)
		if err != nil {
			return respondError(c, err)
		}
		if filter, ok := params.Filters["target_user"]; ok {
			// An explicit over-broad tier filter is a client error, never
			// silently narrowed.
			filterTier, valid := entitlements.ParseTier(filter)
			if !valid || !entitlements.CanAccess(tier, filterTier) {
				return respondError(c, apperr.BadRequest("You are not allowed to see this content"))
			}
		} else {
			base = base.Where("target_user IN ?", tierStrings(entitlements.AllowedTiers(tier)))
		}
	}

	var posts []models.Post
	meta, err := listquery.New(base, params).
		Search("post_title", "sport_type").
		Filter().
		Sort().
		Fields().
		Paginate().
		Find(&posts)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"meta": meta, "posts": posts})
}

// HandleGetPost returns a single pick, applying the same tier rule as the
// listing.
func HandleGetPost(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	post, err := repository.GetGlobalFactory().GetPostRepository().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperr.NotFound("Post not found"))
		}
		return respondError(c, err)
	}

	gating := repository.GetGlobalFactory().GetSettingRepository().
		GetBool(models.SettingContentGatingEnabled, true)
	if gating {
		userCtx := usercontext.GetUserContext(c)
		tier, err := subscriberTier(userCtx)
		if err != nil {
			return respondError(c, err)
		}
		contentTier, _ := entitlements.ParseTier(post.TargetUser)
		if !entitlements.CanAccess(tier, contentTier) {
			return respondError(c, apperr.BadRequest("You are not allowed to see this content"))
		}
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// HandleUpdatePost updates a pick's fields, keeping the original author.
func HandleUpdatePost(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetPostRepository()
	post, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperr.NotFound("Post not found"))
		}
		return respondError(c, err)
	}

	var body postInput
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperr.BadRequest("Invalid request body"))
	}

	post.PostTitle = body.PostTitle
	post.SportType = body.SportType
	post.PredictionType = body.PredictionType
	post.PredictionDescription = body.PredictionDescription
	post.WinRate = body.WinRate
	post.OddsRange = body.OddsRange
	post.PostImage = body.PostImage
	post.TargetUser = body.TargetUser

	if err := post.Validate(); err != nil {
		return respondError(c, apperr.BadRequest(err.Error()))
	}
	if err := repo.Update(post); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

// HandleDeletePost removes a pick.
func HandleDeletePost(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	repo := repository.GetGlobalFactory().GetPostRepository()
	if _, err := repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, apperr.NotFound("Post not found"))
		}
		return respondError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": true})
}

// subscriberTier resolves the caller's effective tier, enforcing the listing
// preconditions: an active subscription and a plan on the ladder.
func subscriberTier(userCtx usercontext.UserContext) (entitlements.Tier, error) {
	if !userCtx.IsSubscribed {
		return "", apperr.BadRequest("You are not subscribed")
	}
	tier, ok := entitlements.ParseTier(userCtx.PlanTier)
	if !ok {
		return "", apperr.BadRequest("Invalid subscription plan")
	}
	return tier, nil
}

func tierStrings(tiers []entitlements.Tier) []string {
	out := make([]string, len(tiers))
	for i, t := range tiers {
		out[i] = string(t)
	}
	return out
}
