package repository

import "context"

// Repositories - набор репозиториев, привязанных к одной транзакции
type Repositories struct {
	Installations InstallationRepository
	Repos         RepoRepository
	PullRequests  PullRequestRepository
	Runs          RunRepository
}

// Store выполняет fn внутри одной транзакции БД: либо все записи
// зафиксированы, либо ни одной. Убирает гонку, при которой параллельная
// доставка могла увидеть репозиторий без его pull request
type Store interface {
	InTransaction(ctx context.Context, fn func(repos Repositories) error) error
}
