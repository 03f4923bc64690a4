package domain

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

// Message каждой ошибки — дословный текст поля error в теле ответа вебхука
var (
	// ErrMissingSecret - секрет вебхука не сконфигурирован
	ErrMissingSecret = &DomainError{
		Code:    "MISSING_SECRET",
		Message: "missing webhook secret",
	}

	// ErrMissingRawBody - сырое тело запроса недоступно
	ErrMissingRawBody = &DomainError{
		Code:    "MISSING_RAW_BODY",
		Message: "rawBody missing",
	}

	// ErrInvalidSignature - подпись не совпала или отсутствует
	ErrInvalidSignature = &DomainError{
		Code:    "INVALID_SIGNATURE",
		Message: "invalid signature",
	}

	// ErrInvalidPayload - тело не является валидным JSON
	ErrInvalidPayload = &DomainError{
		Code:    "INVALID_PAYLOAD",
		Message: "invalid JSON payload",
	}

	// ErrMissingFields - отсутствуют обязательные поля события
	ErrMissingFields = &DomainError{
		Code:    "MISSING_FIELDS",
		Message: "missing required fields",
	}
)
