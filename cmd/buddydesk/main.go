package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/studentbridge/buddydesk/internal/api"
	"github.com/studentbridge/buddydesk/internal/db"
	"github.com/studentbridge/buddydesk/internal/services"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "buddydesk.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey, cookieSecure)

	seedInitialAdmin(database)

	app := fiber.New(fiber.Config{
		AppName:               "BuddyDesk",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("BuddyDesk listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func seedInitialAdmin(database *gorm.DB) {
	identity := services.NewIdentityService(db.NewUserRepository(database))
	result, err := services.EnsureInitialAdmin(
		identity,
		getEnv("ADMIN_EMAIL", "admin@buddydesk.local"),
		os.Getenv("ADMIN_PASSWORD"),
	)
	if err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}
	if result.Created {
		if result.TemporaryPassword != "" {
			log.Printf("created initial admin %s with temporary password %s", result.Email, result.TemporaryPassword)
		} else {
			log.Printf("created initial admin %s", result.Email)
		}
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
