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
	"github.com/robfig/cron"

	config "github.com/Vajbratya/automnator/configs"
	"github.com/Vajbratya/automnator/internal/api/handlers"
	"github.com/Vajbratya/automnator/internal/api/middleware"
	"github.com/Vajbratya/automnator/internal/publisher"
	"github.com/Vajbratya/automnator/internal/service"
	"github.com/Vajbratya/automnator/internal/store"
	"github.com/Vajbratya/automnator/internal/worker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY is required")
	}

	fileStore := store.NewFileStore(cfg.DBPath)

	var pub publisher.Publisher
	if cfg.MockPublisher {
		pub = publisher.NewMock()
	} else {
		pub = publisher.NewWebhook(cfg.PublishWebhookURL, cfg.PublishWebhookSecret)
	}

	userService := service.NewUserService(fileStore)
	draftService := service.NewDraftService(fileStore)
	scheduleService := service.NewScheduleService(fileStore)
	researchService := service.NewResearchService(fileStore)
	plannerService := service.NewPlannerService(fileStore)

	publishWorker := worker.New(fileStore, pub, cfg.WorkerBatchLimit)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Worker-Secret",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	app.Get("/health", handlers.Health)

	auth := handlers.NewAuthHandler(*cfg, userService)
	app.Post("/auth/sign-in", auth.SignIn)
	app.Post("/auth/sign-out", auth.SignOut)

	workerHandler := handlers.NewWorkerHandler(*cfg, publishWorker)
	app.Post("/api/worker/run", workerHandler.RunWorker)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	api.Get("/me", auth.Me)

	draft := handlers.NewDraftHandler(draftService)
	api.Get("/drafts", draft.ListDrafts)
	api.Post("/drafts", draft.CreateDraft)
	api.Get("/drafts/:draftId", draft.GetDraft)
	api.Patch("/drafts/:draftId", draft.UpdateDraft)
	api.Delete("/drafts/:draftId", draft.DeleteDraft)

	schedule := handlers.NewScheduleHandler(scheduleService)
	api.Get("/schedules", schedule.ListSchedules)
	api.Post("/schedules", schedule.CreateSchedule)
	api.Get("/approvals", schedule.ListApprovals)
	api.Post("/approvals/:scheduleId/approve", schedule.ApproveSchedule)
	api.Post("/approvals/:scheduleId/reject", schedule.RejectSchedule)
	api.Get("/posts", schedule.ListPosts)
	api.Get("/logs", schedule.ListActionLogs)

	research := handlers.NewResearchHandler(researchService)
	api.Get("/research/sources", research.ListSources)
	api.Post("/research/sources", research.CreateSource)
	api.Delete("/research/sources/:sourceId", research.DeleteSource)
	api.Get("/research/captures", research.ListCaptures)
	api.Post("/research/captures", research.CreateCapture)
	api.Delete("/research/captures/:captureId", research.DeleteCapture)

	generate := handlers.NewGenerateHandler()
	api.Post("/ai/generate-post", generate.GeneratePost)
	api.Post("/ai/score", generate.ScoreDraft)

	plan := handlers.NewPlanHandler(plannerService)
	api.Post("/plans/generate", plan.GeneratePlan)

	// In-process worker tick, e.g. WORKER_CRON="@every 0h0m30s". Leave
	// unset when an external caller drives /api/worker/run instead.
	if cfg.WorkerCron != "" {
		c := cron.New()
		if err := c.AddFunc(cfg.WorkerCron, func() {
			if _, err := publishWorker.RunOnce(context.Background()); err != nil {
				log.Printf("worker tick failed: %v", err)
			}
		}); err != nil {
			log.Fatalf("Invalid WORKER_CRON: %v", err)
		}
		c.Start()
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
