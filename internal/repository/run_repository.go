package repository

import (
	"context"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

type RunRepository interface {
	Create(ctx context.Context, run *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
}
