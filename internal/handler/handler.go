package handler

import "github.com/bagdasarian/webhook-ingest/internal/service"

type Handler struct {
	ingestService service.IngestService
}

func NewHandler(ingestService service.IngestService) *Handler {
	return &Handler{
		ingestService: ingestService,
	}
}
