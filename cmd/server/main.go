package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"recipeshare/internal/auth"
	"recipeshare/internal/cache"
	"recipeshare/internal/config"
	"recipeshare/internal/db"
	"recipeshare/internal/handler"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
	"recipeshare/internal/router"
	"recipeshare/internal/service"
	"recipeshare/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

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
			&model.Recipe{},
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
		&model.Recipe{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)

	// Initialize auth and session components
	hasher := auth.NewBcryptHasherWithCost(cfg.BcryptCost)
	sessions := session.NewRedisStore(cacheClient, cfg.SessionTTL)

	// Initialize services
	userService := service.NewUserService(userRepo, hasher, cacheClient)
	recipeService := service.NewRecipeService(recipeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, sessions)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	// Register routes
	router.Register(e, sessions, authHandler, recipeHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
