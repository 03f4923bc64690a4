package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

type installationRepository struct {
	executor DBExecutor
}

func NewInstallationRepository(db *sql.DB) *installationRepository {
	return &installationRepository{executor: db}
}

func NewInstallationRepositoryWithTx(tx *sql.Tx) *installationRepository {
	return &installationRepository{executor: tx}
}

func (r *installationRepository) Upsert(ctx context.Context, installation *domain.Installation) error {
	query := `
		INSERT INTO installations (id, account_login, account_type, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET account_login = EXCLUDED.account_login,
		    account_type = EXCLUDED.account_type,
		    updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		installation.ID,
		installation.AccountLogin,
		installation.AccountType,
		time.Now(),
	)
	return err
}
