package usercontext

import "github.com/gofiber/fiber/v2"

// UserContext represents the resolved caller identity for a request
type UserContext struct {
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	IsLoggedIn   bool   `json:"is_logged_in"`
	IsSubscribed bool   `json:"is_subscribed"`
	PlanTier     string `json:"plan_tier"`
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(ContextKey); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false}
}

// GetUserID returns the current user's ID, or 0 if not logged in
func GetUserID(c *fiber.Ctx) uint {
	return GetUserContext(c).UserID
}
