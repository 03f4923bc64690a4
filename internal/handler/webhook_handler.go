package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

// HandleGitHubWebhook принимает доставку вебхука. Тело читается как есть и
// передаётся дальше немодифицированным: подпись считается по сырым байтам.
// Исход конвейера всегда кодируется в теле ответа со статусом 200,
// кроме сбоев хранилища (500)
func (h *Handler) HandleGitHubWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusOK, WebhookRejectedResponse{
			OK:    false,
			Error: domain.ErrMissingRawBody.Message,
		})
		return
	}

	delivery := &domain.Delivery{
		Body:       body,
		Signature:  r.Header.Get("X-Hub-Signature-256"),
		Event:      r.Header.Get("X-GitHub-Event"),
		DeliveryID: r.Header.Get("X-GitHub-Delivery"),
		ReceivedAt: time.Now(),
	}

	result, err := h.ingestService.ProcessDelivery(r.Context(), delivery)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resultToHTTP(result))
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
