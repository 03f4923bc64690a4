package repository

import (
	"context"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

type InstallationRepository interface {
	Upsert(ctx context.Context, installation *domain.Installation) error
}
