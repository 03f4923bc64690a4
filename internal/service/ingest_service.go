package service

import (
	"context"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

type IngestService interface {
	ProcessDelivery(ctx context.Context, delivery *domain.Delivery) (*domain.IngestResult, error)
}
