package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/webhook-ingest/internal/repository"
)

type store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *store {
	return &store{db: db}
}

func (s *store) InTransaction(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	repos := repository.Repositories{
		Installations: NewInstallationRepositoryWithTx(tx),
		Repos:         NewRepoRepositoryWithTx(tx),
		PullRequests:  NewPullRequestRepositoryWithTx(tx),
		Runs:          NewRunRepositoryWithTx(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}

	return tx.Commit()
}
