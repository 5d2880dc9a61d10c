package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"court/internal/config"
	"court/internal/db"
	"court/internal/model"
	"court/internal/repository"
)

// rosterEntry is one user to ensure exists.
type rosterEntry struct {
	Name  string
	Email string
	Role  model.Role
}

// Default bench: one judge and a jury of three. Litigants sign up through
// the API themselves.
var roster = []rosterEntry{
	{Name: "Judge Holden", Email: "judge@court.local", Role: model.RoleJudge},
	{Name: "Juror One", Email: "juror1@court.local", Role: model.RoleJuror},
	{Name: "Juror Two", Email: "juror2@court.local", Role: model.RoleJuror},
	{Name: "Juror Three", Email: "juror3@court.local", Role: model.RoleJuror},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		log.Fatal("SEED_PASSWORD must be set")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	seeded, skipped := 0, 0
	for _, entry := range roster {
		existing, err := userRepo.FindByEmail(ctx, entry.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Error checking user %s: %v", entry.Email, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		user := &model.User{
			Name:         entry.Name,
			Email:        entry.Email,
			PasswordHash: string(hash),
			Role:         entry.Role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Error creating user %s: %v", entry.Email, err)
		}
		seeded++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", seeded)
	log.Printf("  - Existing users skipped: %d", skipped)
}
