package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/webhook-ingest/internal/config"
	"github.com/bagdasarian/webhook-ingest/internal/db"
	"github.com/bagdasarian/webhook-ingest/internal/handler"
	"github.com/bagdasarian/webhook-ingest/internal/handler/server"
	"github.com/bagdasarian/webhook-ingest/internal/repository/postgres"
	"github.com/bagdasarian/webhook-ingest/internal/service"
)

func main() {
	cfg := config.Load()

	if cfg.GitHub.WebhookSecret == "" {
		log.Fatal("GITHUB_WEBHOOK_SECRET is required")
	}

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	store := postgres.NewStore(database)
	ingestService := service.NewIngestService(store, cfg.GitHub.WebhookSecret)

	h := handler.NewHandler(ingestService)
	srv := server.NewServer(h, cfg.Server.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
