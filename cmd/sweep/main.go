package main

import (
	"log"

	"github.com/betwise/picks-backend/internal/pkg/database"
	"github.com/betwise/picks-backend/internal/pkg/env"
	"github.com/betwise/picks-backend/internal/pkg/mail"
	"github.com/betwise/picks-backend/internal/pkg/sweeper"
)

// One-shot sweep runner for operators; the server schedules the same sweep
// daily on its own.
func main() {
	env.SetupEnvFile()
	database.SetupDatabase()

	sw := sweeper.NewFromDB(database.GetDB(), mail.SMTPMailer{})
	sw.Run()

	log.Print("sweep complete")
}
