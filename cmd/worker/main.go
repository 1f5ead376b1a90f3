package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	config "github.com/Vajbratya/automnator/configs"
	"github.com/Vajbratya/automnator/internal/publisher"
	"github.com/Vajbratya/automnator/internal/store"
	"github.com/Vajbratya/automnator/internal/worker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	fileStore := store.NewFileStore(cfg.DBPath)

	var pub publisher.Publisher
	if cfg.MockPublisher {
		pub = publisher.NewMock()
	} else {
		if cfg.PublishWebhookURL == "" {
			log.Fatal("PUBLISH_WEBHOOK_URL is required for non-mock publishing")
		}
		pub = publisher.NewWebhook(cfg.PublishWebhookURL, cfg.PublishWebhookSecret)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := worker.New(fileStore, pub, cfg.WorkerBatchLimit)
	w.Run(ctx, cfg.WorkerInterval)
}
