package service

import (
	"context"
	"log"
	"time"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
	"github.com/bagdasarian/webhook-ingest/internal/repository"
	"github.com/bagdasarian/webhook-ingest/internal/webhook"
	"github.com/google/uuid"
)

type ingestService struct {
	store  repository.Store
	secret []byte
}

// NewIngestService создает новый экземпляр IngestService.
// Секрет передается явно при конструировании, внутри обработки запросов
// никаких обращений к окружению нет
func NewIngestService(store repository.Store, webhookSecret string) IngestService {
	return &ingestService{
		store:  store,
		secret: []byte(webhookSecret),
	}
}

// ProcessDelivery прогоняет одну доставку через весь конвейер:
// подпись → разбор JSON → классификация → извлечение полей → запись.
// Любой отказ шага сразу даёт терминальный исход, повторов внутри
// конвейера нет. Ошибка возвращается только при сбое хранилища
func (s *ingestService) ProcessDelivery(ctx context.Context, delivery *domain.Delivery) (*domain.IngestResult, error) {
	if len(s.secret) == 0 {
		return domain.Rejected(domain.ErrMissingSecret), nil
	}

	if len(delivery.Body) == 0 {
		return domain.Rejected(domain.ErrMissingRawBody), nil
	}

	if !webhook.VerifySignature(delivery.Body, delivery.Signature, s.secret) {
		return domain.Rejected(domain.ErrInvalidSignature), nil
	}

	event, err := webhook.ParseEvent(delivery.Body)
	if err != nil {
		return domain.Rejected(domain.ErrInvalidPayload), nil
	}

	if c := webhook.Classify(delivery.Event, event.Action); !c.Accepted {
		return &domain.IngestResult{
			Outcome:       domain.OutcomeIgnored,
			IgnoreReason:  c.Reason,
			IgnoredEvent:  c.Event,
			IgnoredAction: c.Action,
		}, nil
	}

	fields, missingErr := webhook.Extract(event)
	if missingErr != nil {
		log.Printf("delivery %q rejected: %v", delivery.DeliveryID, missingErr)
		return domain.Rejected(domain.ErrMissingFields), nil
	}

	run := newRun(fields, event.Action, delivery)

	// Три upsert и вставка run в одной транзакции, порядок фиксированный:
	// repos ссылается на installations, pull_requests на repos
	err = s.store.InTransaction(ctx, func(repos repository.Repositories) error {
		if err := repos.Installations.Upsert(ctx, fields.Installation()); err != nil {
			return err
		}
		if err := repos.Repos.Upsert(ctx, fields.Repo()); err != nil {
			return err
		}
		if err := repos.PullRequests.Upsert(ctx, fields.PullRequest()); err != nil {
			return err
		}
		return repos.Runs.Create(ctx, run)
	})
	if err != nil {
		return nil, err
	}

	return domain.Accepted(run), nil
}

func newRun(fields *webhook.ExtractedFields, action string, delivery *domain.Delivery) *domain.Run {
	return &domain.Run{
		ID:             uuid.NewString(),
		RepoID:         fields.RepoID,
		PullRequestID:  fields.PullRequestID,
		InstallationID: fields.InstallationID,
		TriggerEvent:   "pull_request." + action,
		HeadSHA:        fields.HeadSHA,
		Status:         domain.StatusQueued,
		StartedAt:      time.Now(),
		Context: domain.RunContext{
			Delivery:   optional(delivery.DeliveryID),
			Event:      optional(delivery.Event),
			Action:     action,
			ReceivedAt: delivery.ReceivedAt.Format(time.RFC3339),
		},
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
