package handler

import (
	"github.com/bagdasarian/webhook-ingest/internal/domain"
	"github.com/bagdasarian/webhook-ingest/internal/webhook"
)

func resultToHTTP(result *domain.IngestResult) any {
	switch result.Outcome {
	case domain.OutcomeAccepted:
		return WebhookAcceptedResponse{
			OK: true,
			Run: RunResponse{
				ID:           result.Run.ID,
				Status:       string(result.Run.Status),
				TriggerEvent: result.Run.TriggerEvent,
			},
		}
	case domain.OutcomeIgnored:
		if result.IgnoreReason == webhook.ReasonUnsupportedEvent {
			return WebhookIgnoredEventResponse{
				OK:      true,
				Ignored: true,
				Reason:  result.IgnoreReason,
				Event:   result.IgnoredEvent,
			}
		}
		return WebhookIgnoredActionResponse{
			OK:      true,
			Ignored: true,
			Reason:  result.IgnoreReason,
			Action:  result.IgnoredAction,
		}
	default:
		return WebhookRejectedResponse{
			OK:    false,
			Error: result.Rejection.Message,
		}
	}
}
