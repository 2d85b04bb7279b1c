package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/betwise/picks-backend/app/repository"
)

// HandleGetDashboard aggregates revenue and growth numbers for operators.
// Plain reporting reads, no control logic.
func HandleGetDashboard(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	totalRevenue, err := repos.Payment.TotalRevenue()
	if err != nil {
		return respondError(c, err)
	}
	totalUsers, err := repos.User.Count()
	if err != nil {
		return respondError(c, err)
	}
	subscribers, err := repos.User.CountSubscribed()
	if err != nil {
		return respondError(c, err)
	}

	year := time.Now().Year()
	if requested := c.QueryInt("year"); requested > 0 {
		year = requested
	}
	monthly, err := repos.Payment.MonthlyRevenue(year)
	if err != nil {
		return respondError(c, err)
	}

	recent, err := repos.Payment.RecentSucceeded(10)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"total_revenue":   totalRevenue,
		"total_users":     totalUsers,
		"subscribers":     subscribers,
		"monthly_revenue": monthly,
		"recent_payments": recent,
		"year":            year,
	})
}
