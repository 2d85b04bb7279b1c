package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/betwise/picks-backend/app/controllers"
	"github.com/betwise/picks-backend/app/models"
	"github.com/betwise/picks-backend/internal/pkg/middleware"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Public routes. The webhook authenticates via its signature, not via an
	// API key.
	app.Post("/auth/register", controllers.HandleRegister)
	app.Get("/plan", controllers.HandleGetAllPlans)
	app.Post("/payment/webhook", controllers.HandleStripeWebhook)

	// Authenticated user routes
	user := app.Group("/", middleware.APIKeyAuthMiddleware())
	user.Get("/user/me", controllers.HandleGetMe)
	user.Post("/payment/checkout", controllers.HandlePostCheckout)
	user.Get("/post", controllers.HandleGetAllPosts)
	user.Get("/post/:id", controllers.HandleGetPost)
	user.Post("/feedback", controllers.HandlePostFeedback)
	user.Get("/notification", controllers.HandleGetMyNotifications)
	user.Patch("/notification/:id/read", controllers.HandleMarkNotificationRead)

	// Staff routes
	staff := app.Group("/admin",
		middleware.APIKeyAuthMiddleware(),
		middleware.RequireRoles(models.ROLE_ADMIN, models.ROLE_SUPER_ADMIN),
	)
	staff.Post("/plan", controllers.HandleCreatePlan)
	staff.Patch("/plan/:id", controllers.HandleUpdatePlan)
	staff.Delete("/plan/:id", controllers.HandleDeletePlan)
	staff.Post("/post", controllers.HandleCreatePost)
	staff.Patch("/post/:id", controllers.HandleUpdatePost)
	staff.Delete("/post/:id", controllers.HandleDeletePost)
	staff.Get("/payment", controllers.HandleGetAllPayments)
	staff.Get("/dashboard", controllers.HandleGetDashboard)
	staff.Get("/feedback", controllers.HandleGetAllFeedback)
	staff.Get("/settings/content-gating", controllers.HandleGetContentGating)
	staff.Put("/settings/content-gating", controllers.HandleSetContentGating)
	staff.Get("/staff/:id", controllers.HandleGetAdmin)

	// Staff management is reserved for super admins
	super := app.Group("/admin",
		middleware.APIKeyAuthMiddleware(),
		middleware.RequireRoles(models.ROLE_SUPER_ADMIN),
	)
	super.Get("/staff", controllers.HandleGetAllAdmins)
	super.Delete("/staff/:id", controllers.HandleDeleteAdmin)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
