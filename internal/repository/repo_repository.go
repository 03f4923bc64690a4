package repository

import (
	"context"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

type RepoRepository interface {
	Upsert(ctx context.Context, repo *domain.Repo) error
}
