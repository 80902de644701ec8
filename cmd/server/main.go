package main

import (
	"context"
	"log"

	"github.com/jaehyo-dev/school-hub/backend/internal/cache"
	"github.com/jaehyo-dev/school-hub/backend/internal/router"
	"github.com/jaehyo-dev/school-hub/backend/pkg/config"
	"github.com/jaehyo-dev/school-hub/backend/pkg/firebase"
	"github.com/jaehyo-dev/school-hub/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	config.LoadEnv()
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Redis is optional; the hot feed falls back to the database without it
	cache.InitRedis(cfg.RedisAddr)
	defer cache.Close()

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Postgres, db.Mongo, firebaseApp.AuthClient)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
