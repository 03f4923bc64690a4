package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

type repoRepository struct {
	executor DBExecutor
}

func NewRepoRepository(db *sql.DB) *repoRepository {
	return &repoRepository{executor: db}
}

func NewRepoRepositoryWithTx(tx *sql.Tx) *repoRepository {
	return &repoRepository{executor: tx}
}

// Upsert перезаписывает все изменяемые атрибуты, включая installation_id:
// репозиторий принадлежит ровно одной установке, побеждает последняя запись
func (r *repoRepository) Upsert(ctx context.Context, repo *domain.Repo) error {
	query := `
		INSERT INTO repos (id, owner, name, full_name, installation_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET owner = EXCLUDED.owner,
		    name = EXCLUDED.name,
		    full_name = EXCLUDED.full_name,
		    installation_id = EXCLUDED.installation_id,
		    updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		repo.ID,
		repo.Owner,
		repo.Name,
		repo.FullName,
		repo.InstallationID,
		time.Now(),
	)
	return err
}
