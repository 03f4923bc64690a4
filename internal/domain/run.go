package domain

import "time"

type RunStatus string

const (
	StatusQueued RunStatus = "queued"
)

// Run - неизменяемая после создания запись о поставленной в очередь работе.
// Дальнейшие переходы статуса принадлежат внешнему исполнителю.
type Run struct {
	ID             string
	RepoID         string
	PullRequestID  string
	InstallationID string
	TriggerEvent   string
	HeadSHA        string
	Status         RunStatus
	StartedAt      time.Time
	Context        RunContext
}

// RunContext - диагностический контекст доставки, хранится как JSONB
// и нигде в ядре не интерпретируется
type RunContext struct {
	Delivery   *string `json:"delivery"`
	Event      *string `json:"event"`
	Action     string  `json:"action"`
	ReceivedAt string  `json:"receivedAt"`
}
