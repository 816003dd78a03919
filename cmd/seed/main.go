package main

import (
	"log"
	"time"

	"project-collab-be/internal/config"
	"project-collab-be/internal/model"
	"project-collab-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// Seeds a superadmin account and a demo project tree for local development.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := &model.User{
		Id:            uuid.New(),
		Email:         "admin@example.com",
		PasswordHash:  string(hash),
		Role:          "superAdmin",
		FirstName:     "Site",
		LastName:      "Admin",
		Company:       "ProjectCollab",
		TermsAccepted: true,
		CreatedAt:     time.Now(),
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(admin).Error; err != nil {
		color.Red("Failed to seed admin: %v", err)
		log.Fatal(err)
	}
	color.Green("Seeded admin user admin@example.com")

	project := &model.Project{
		Id:         uuid.New(),
		Name:       "Demo Project",
		BlobFolder: "projects/demo",
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(project).Error; err != nil {
		log.Fatal(err)
	}

	subProject := &model.SubProject{
		Id:         uuid.New(),
		Name:       "Demo SubProject",
		ProjectId:  project.Id,
		BlobFolder: "projects/demo/sub-demo",
		IsPublic:   true,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(subProject).Error; err != nil {
		log.Fatal(err)
	}

	color.Green("Seeded demo project %s with subproject %s", project.Id, subProject.Id)
}
