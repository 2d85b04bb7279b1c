package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/betwise/picks-backend/app/repository"
	"github.com/betwise/picks-backend/internal/pkg/cache"
	"github.com/betwise/picks-backend/internal/pkg/database"
	"github.com/betwise/picks-backend/internal/pkg/env"
	"github.com/betwise/picks-backend/internal/pkg/mail"
	"github.com/betwise/picks-backend/internal/pkg/router"
	"github.com/betwise/picks-backend/internal/pkg/sweeper"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	app := fiber.New(fiber.Config{})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// ROUTER
	router.InstallRouter(app)

	// Daily ledger maintenance. The schedule is fixed for the process
	// lifetime; there is nothing to reconfigure at runtime.
	sw := sweeper.NewFromDB(database.GetDB(), mail.SMTPMailer{})
	if _, err := sw.Schedule(); err != nil {
		log.Fatalf("failed to schedule expiry sweep: %v", err)
	}

	return app
}
