package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
	"github.com/bagdasarian/webhook-ingest/internal/repository"
	"github.com/bagdasarian/webhook-ingest/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret"

type ingestMocks struct {
	installations *MockInstallationRepository
	repos         *MockRepoRepository
	pullRequests  *MockPullRequestRepository
	runs          *MockRunRepository
	store         *fakeStore
}

func newIngestMocks() *ingestMocks {
	m := &ingestMocks{
		installations: new(MockInstallationRepository),
		repos:         new(MockRepoRepository),
		pullRequests:  new(MockPullRequestRepository),
		runs:          new(MockRunRepository),
	}
	m.store = &fakeStore{repos: repository.Repositories{
		Installations: m.installations,
		Repos:         m.repos,
		PullRequests:  m.pullRequests,
		Runs:          m.runs,
	}}
	return m
}

func (m *ingestMocks) assertNoWrites(t *testing.T) {
	assert.Zero(t, m.store.called, "транзакция не должна была начинаться")
	m.installations.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	m.repos.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	m.pullRequests.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	m.runs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func validBody(t *testing.T, action string) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"action": action,
		"installation": map[string]any{
			"id":      55443322,
			"account": map[string]any{"login": "acme", "type": "Organization"},
		},
		"repository": map[string]any{
			"id":        987654321,
			"name":      "widgets",
			"full_name": "acme/widgets",
			"owner":     map[string]any{"login": "acme"},
		},
		"pull_request": map[string]any{
			"id":       112233445566,
			"number":   42,
			"title":    "Add widget cache",
			"body":     "Some description",
			"state":    "open",
			"html_url": "https://github.com/acme/widgets/pull/42",
			"user":     map[string]any{"login": "dev-a"},
			"head":     map[string]any{"sha": "aaa111bbb222"},
			"base":     map[string]any{"sha": "ccc333ddd444"},
		},
	})
	require.NoError(t, err)
	return body
}

func signedDelivery(body []byte, event string) *domain.Delivery {
	return &domain.Delivery{
		Body:       body,
		Signature:  webhook.Sign(body, []byte(testSecret)),
		Event:      event,
		DeliveryID: "delivery-123",
		ReceivedAt: time.Now(),
	}
}

func TestIngestService_ProcessDelivery(t *testing.T) {
	t.Run("успешная доставка: три upsert, один run, исход accepted", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		m.installations.On("Upsert", mock.Anything, mock.MatchedBy(func(i *domain.Installation) bool {
			return i.ID == "55443322" && i.AccountLogin != nil && *i.AccountLogin == "acme"
		})).Return(nil).Once()
		m.repos.On("Upsert", mock.Anything, mock.MatchedBy(func(r *domain.Repo) bool {
			return r.ID == "987654321" && r.InstallationID == "55443322" && r.FullName == "acme/widgets"
		})).Return(nil).Once()
		m.pullRequests.On("Upsert", mock.Anything, mock.MatchedBy(func(pr *domain.PullRequest) bool {
			return pr.ID == "112233445566" && pr.RepoID == "987654321" && pr.Number == 42
		})).Return(nil).Once()
		m.runs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Run")).Return(nil).Once()

		result, err := svc.ProcessDelivery(context.Background(), signedDelivery(validBody(t, "opened"), "pull_request"))

		require.NoError(t, err)
		require.Equal(t, domain.OutcomeAccepted, result.Outcome)
		require.NotNil(t, result.Run)
		assert.NotEmpty(t, result.Run.ID)
		assert.Equal(t, domain.StatusQueued, result.Run.Status)
		assert.Equal(t, "pull_request.opened", result.Run.TriggerEvent)
		assert.Equal(t, "aaa111bbb222", result.Run.HeadSHA)
		assert.Equal(t, "987654321", result.Run.RepoID)
		assert.Equal(t, "112233445566", result.Run.PullRequestID)
		require.NotNil(t, result.Run.Context.Delivery)
		assert.Equal(t, "delivery-123", *result.Run.Context.Delivery)
		assert.Equal(t, "opened", result.Run.Context.Action)
		assert.Equal(t, 1, m.store.called)
		m.installations.AssertExpectations(t)
		m.repos.AssertExpectations(t)
		m.pullRequests.AssertExpectations(t)
		m.runs.AssertExpectations(t)
	})

	t.Run("пустой секрет: отказ без проверки подписи и без записей", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, "")

		result, err := svc.ProcessDelivery(context.Background(), signedDelivery(validBody(t, "opened"), "pull_request"))

		require.NoError(t, err)
		require.Equal(t, domain.OutcomeRejected, result.Outcome)
		assert.True(t, errors.Is(result.Rejection, domain.ErrMissingSecret))
		m.assertNoWrites(t)
	})

	t.Run("пустое тело: отказ rawBody missing", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		result, err := svc.ProcessDelivery(context.Background(), &domain.Delivery{Body: nil})

		require.NoError(t, err)
		require.Equal(t, domain.OutcomeRejected, result.Outcome)
		assert.True(t, errors.Is(result.Rejection, domain.ErrMissingRawBody))
		m.assertNoWrites(t)
	})

	t.Run("отсутствующая подпись: invalid signature", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		delivery := signedDelivery(validBody(t, "opened"), "pull_request")
		delivery.Signature = ""

		result, err := svc.ProcessDelivery(context.Background(), delivery)

		require.NoError(t, err)
		require.Equal(t, domain.OutcomeRejected, result.Outcome)
		assert.True(t, errors.Is(result.Rejection, domain.ErrInvalidSignature))
		m.assertNoWrites(t)
	})

	t.Run("неверная подпись при любом содержимом: invalid signature", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		body := validBody(t, "opened")
		delivery := signedDelivery(body, "pull_request")
		delivery.Signature = webhook.Sign(body, []byte("wrong-secret"))

		result, err := svc.ProcessDelivery(context.Background(), delivery)

		require.NoError(t, err)
		require.Equal(t, domain.OutcomeRejected, result.Outcome)
		assert.True(t, errors.Is(result.Rejection, domain.ErrInvalidSignature))
		m.assertNoWrites(t)
	})

	t.Run("подписанный, но невалидный JSON: invalid JSON payload", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		body := []byte(`{"action": `)
		result, err := svc.ProcessDelivery(context.Background(), signedDelivery(body, "pull_request"))

		require.NoError(t, err)
		require.Equal(t, domain.OutcomeRejected, result.Outcome)
		assert.True(t, errors.Is(result.Rejection, domain.ErrInvalidPayload))
		m.assertNoWrites(t)
	})

	t.Run("чужое событие: ignored без записей", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		result, err := svc.ProcessDelivery(context.Background(), signedDelivery(validBody(t, "opened"), "issues"))

		require.NoError(t, err)
		require.Equal(t, domain.OutcomeIgnored, result.Outcome)
		assert.Equal(t, webhook.ReasonUnsupportedEvent, result.IgnoreReason)
		require.NotNil(t, result.IgnoredEvent)
		assert.Equal(t, "issues", *result.IgnoredEvent)
		m.assertNoWrites(t)
	})

	t.Run("чужое действие: ignored без записей", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		result, err := svc.ProcessDelivery(context.Background(), signedDelivery(validBody(t, "closed"), "pull_request"))

		require.NoError(t, err)
		require.Equal(t, domain.OutcomeIgnored, result.Outcome)
		assert.Equal(t, webhook.ReasonUnsupportedAction, result.IgnoreReason)
		require.NotNil(t, result.IgnoredAction)
		assert.Equal(t, "closed", *result.IgnoredAction)
		m.assertNoWrites(t)
	})

	t.Run("number строкой: missing required fields без записей", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(validBody(t, "opened"), &payload))
		payload["pull_request"].(map[string]any)["number"] = "42"
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		result, procErr := svc.ProcessDelivery(context.Background(), signedDelivery(body, "pull_request"))

		require.NoError(t, procErr)
		require.Equal(t, domain.OutcomeRejected, result.Outcome)
		assert.True(t, errors.Is(result.Rejection, domain.ErrMissingFields))
		m.assertNoWrites(t)
	})

	t.Run("сбой хранилища пробрасывается наружу, run не создается частично", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		m.installations.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()
		m.repos.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

		result, err := svc.ProcessDelivery(context.Background(), signedDelivery(validBody(t, "opened"), "pull_request"))

		require.Error(t, err)
		assert.Nil(t, result)
		m.pullRequests.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		m.runs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("повторная доставка создает второй run", func(t *testing.T) {
		m := newIngestMocks()
		svc := NewIngestService(m.store, testSecret)

		m.installations.On("Upsert", mock.Anything, mock.Anything).Return(nil).Twice()
		m.repos.On("Upsert", mock.Anything, mock.Anything).Return(nil).Twice()
		m.pullRequests.On("Upsert", mock.Anything, mock.Anything).Return(nil).Twice()
		m.runs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Run")).Return(nil).Twice()

		delivery := signedDelivery(validBody(t, "synchronize"), "pull_request")
		first, err := svc.ProcessDelivery(context.Background(), delivery)
		require.NoError(t, err)
		second, err := svc.ProcessDelivery(context.Background(), delivery)
		require.NoError(t, err)

		assert.NotEqual(t, first.Run.ID, second.Run.ID, "каждая принятая доставка дает новый run")
		m.runs.AssertExpectations(t)
	})
}
