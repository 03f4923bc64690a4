package repository

import (
	"context"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

type PullRequestRepository interface {
	Upsert(ctx context.Context, pr *domain.PullRequest) error
}
