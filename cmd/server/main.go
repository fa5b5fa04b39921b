package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/reviewdeck/configs"
	"github.com/maheshrc27/reviewdeck/internal/api/handlers"
	job "github.com/maheshrc27/reviewdeck/internal/jobs"
	"github.com/maheshrc27/reviewdeck/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	notifier := service.NewNotifier()
	backendService := service.NewBackendService(*cfg)
	blackboxService := service.NewBlackboxService(*cfg)
	r2Service := service.NewR2Service(*cfg)
	syncService := service.NewSyncService(backendService, blackboxService, notifier)
	audioService := service.NewAudioService(syncService, blackboxService, r2Service)

	// Probe once at startup; rephrase falls back to the AI provider directly
	// when the backend is down.
	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	healthy := backendService.CheckHealth(startupCtx)
	syncService.SetHealthy(healthy)
	if !healthy {
		log.Println("Warning: content backend is unreachable, running in degraded mode")
	} else if err := syncService.Refresh(startupCtx); err != nil {
		log.Printf("Warning: initial content load failed: %v", err)
	}
	cancel()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "healthy"})
	})

	api := app.Group("/api")

	content := handlers.NewContentHandler(syncService, notifier)
	api.Get("/posts", content.ListPosts)
	api.Post("/refresh", content.RefreshContent)
	api.Put("/posts/:id/text", content.UpdateText)
	api.Post("/posts/:id/rephrase", content.Rephrase)
	api.Post("/posts/:id/approve", content.Approve)
	api.Post("/posts/:id/disapprove", content.Disapprove)
	api.Get("/notifications", content.Notifications)

	group := handlers.NewGroupHandler(syncService)
	api.Get("/groups", group.ListGroups)
	api.Post("/groups/select", group.SelectGroup)

	audio := handlers.NewAudioHandler(audioService)
	api.Post("/posts/:id/speech", audio.ReadAloud)

	// cron jobs
	refreshJob := job.NewContentRefreshJob(syncService)

	c := cron.New()
	c.AddFunc(cfg.RefreshSchedule, refreshJob.RefreshContent)
	c.Start()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:" + cfg.Port)

	gracefulShutdown(app, c)
}

func gracefulShutdown(app *fiber.App, c *cron.Cron) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	c.Stop()
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
