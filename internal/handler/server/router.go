package server

import (
	"net/http"

	"github.com/bagdasarian/webhook-ingest/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /webhooks/github", h.HandleGitHubWebhook)
}
