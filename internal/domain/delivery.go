package domain

import "time"

// Delivery - одна входящая доставка вебхука: сырое тело и заголовки.
// Body обязан быть байтами запроса как есть, без пересериализации,
// иначе проверка подписи не имеет смысла
type Delivery struct {
	Body       []byte
	Signature  string
	Event      string
	DeliveryID string
	ReceivedAt time.Time
}

type IngestOutcome string

const (
	OutcomeAccepted IngestOutcome = "ACCEPTED"
	OutcomeIgnored  IngestOutcome = "IGNORED"
	OutcomeRejected IngestOutcome = "REJECTED"
)

// IngestResult - единственный терминальный исход обработки одной доставки
type IngestResult struct {
	Outcome IngestOutcome

	// Accepted
	Run *Run

	// Ignored: причина и буквальное значение события/действия (nil = null)
	IgnoreReason  string
	IgnoredEvent  *string
	IgnoredAction *string

	// Rejected
	Rejection *DomainError
}

func Accepted(run *Run) *IngestResult {
	return &IngestResult{Outcome: OutcomeAccepted, Run: run}
}

func Rejected(err *DomainError) *IngestResult {
	return &IngestResult{Outcome: OutcomeRejected, Rejection: err}
}
