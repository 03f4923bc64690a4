package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

type pullRequestRepository struct {
	executor DBExecutor
}

func NewPullRequestRepository(db *sql.DB) *pullRequestRepository {
	return &pullRequestRepository{executor: db}
}

func NewPullRequestRepositoryWithTx(tx *sql.Tx) *pullRequestRepository {
	return &pullRequestRepository{executor: tx}
}

// Upsert без проверки порядка доставки: более позднее событие полностью
// перезаписывает более раннее
func (r *pullRequestRepository) Upsert(ctx context.Context, pr *domain.PullRequest) error {
	query := `
		INSERT INTO pull_requests (id, repo_id, number, head_sha, base_sha, title, body, author_login, url, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET repo_id = EXCLUDED.repo_id,
		    number = EXCLUDED.number,
		    head_sha = EXCLUDED.head_sha,
		    base_sha = EXCLUDED.base_sha,
		    title = EXCLUDED.title,
		    body = EXCLUDED.body,
		    author_login = EXCLUDED.author_login,
		    url = EXCLUDED.url,
		    state = EXCLUDED.state,
		    updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.executor.ExecContext(
		ctx,
		query,
		pr.ID,
		pr.RepoID,
		pr.Number,
		pr.HeadSHA,
		pr.BaseSHA,
		pr.Title,
		pr.Body,
		pr.AuthorLogin,
		pr.URL,
		pr.State,
		time.Now(),
	)
	return err
}
