package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

type runRepository struct {
	executor DBExecutor
}

func NewRunRepository(db *sql.DB) *runRepository {
	return &runRepository{executor: db}
}

func NewRunRepositoryWithTx(tx *sql.Tx) *runRepository {
	return &runRepository{executor: tx}
}

// Create всегда вставляет новую строку: повторная доставка того же события
// даёт второй run, дедупликации по delivery id нет
func (r *runRepository) Create(ctx context.Context, run *domain.Run) error {
	contextPackage, err := json.Marshal(run.Context)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO runs (id, repo_id, pr_id, installation_id, trigger_event, head_sha, status, started_at, context_package)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.executor.ExecContext(
		ctx,
		query,
		run.ID,
		run.RepoID,
		run.PullRequestID,
		run.InstallationID,
		run.TriggerEvent,
		run.HeadSHA,
		string(run.Status),
		run.StartedAt,
		contextPackage,
	)
	return err
}

func (r *runRepository) GetByID(ctx context.Context, id string) (*domain.Run, error) {
	query := `
		SELECT id, repo_id, pr_id, installation_id, trigger_event, head_sha, status, started_at, context_package
		FROM runs
		WHERE id = $1
	`

	run := &domain.Run{}
	var status string
	var contextPackage []byte
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.RepoID,
		&run.PullRequestID,
		&run.InstallationID,
		&run.TriggerEvent,
		&run.HeadSHA,
		&status,
		&run.StartedAt,
		&contextPackage,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("run not found")
		}
		return nil, err
	}

	run.Status = domain.RunStatus(status)
	if err := json.Unmarshal(contextPackage, &run.Context); err != nil {
		return nil, err
	}

	return run, nil
}
