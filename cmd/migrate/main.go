package main

import (
	"log"

	"project-collab-be/internal/config"
	"project-collab-be/internal/model"
	"project-collab-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	color.Cyan("Running migrations...")

	// gen_random_uuid() defaults require pgcrypto.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		log.Fatalf("Failed to ensure pgcrypto extension: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.SubProject{},
		&model.SubProjectMember{},
		&model.Question{},
		&model.Feedback{},
		&model.BidDecision{},
		&model.ChatMessage{},
		&model.UnreadCounter{},
		&model.Activity{},
	)
	if err != nil {
		color.Red("Migration failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Migration complete.")
}
