package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RunResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	TriggerEvent string `json:"triggerEvent"`
}

type WebhookAcceptedResponse struct {
	OK  bool        `json:"ok"`
	Run RunResponse `json:"run"`
}

// В игнорирующих ответах ключ event/action присутствует всегда,
// даже когда значение null — отправитель видит, что именно мы прочитали
type WebhookIgnoredEventResponse struct {
	OK      bool    `json:"ok"`
	Ignored bool    `json:"ignored"`
	Reason  string  `json:"reason"`
	Event   *string `json:"event"`
}

type WebhookIgnoredActionResponse struct {
	OK      bool    `json:"ok"`
	Ignored bool    `json:"ignored"`
	Reason  string  `json:"reason"`
	Action  *string `json:"action"`
}

type WebhookRejectedResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
