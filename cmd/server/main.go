package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"court/internal/auth"
	"court/internal/cache"
	"court/internal/config"
	"court/internal/db"
	"court/internal/handler"
	"court/internal/model"
	"court/internal/repository"
	"court/internal/router"
	"court/internal/service"
)

// @title Court Case Management API
// @version 1.0
// @description Role-based case management: litigants submit case narratives, judges review them, jurors vote.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Vote{},
			&model.CaseSubmission{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CaseSubmission{},
		&model.Vote{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	submissionRepo := repository.NewSubmissionRepository(gormDB)
	voteRepo := repository.NewVoteRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, jwtService)
	caseService := service.NewCaseService(submissionRepo)
	juryService := service.NewJuryService(voteRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	caseHandler := handler.NewCaseHandler(caseService, userRepo)
	juryHandler := handler.NewJuryHandler(juryService, userRepo)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		caseHandler,
		juryHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
