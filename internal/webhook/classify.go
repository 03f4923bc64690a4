package webhook

const eventPullRequest = "pull_request"

const (
	ReasonUnsupportedEvent  = "unsupported event"
	ReasonUnsupportedAction = "unsupported action"
)

var acceptedActions = map[string]struct{}{
	"opened":      {},
	"synchronize": {},
	"reopened":    {},
}

// Classification - решение: обрабатываем событие или подтверждаем и игнорируем.
// Для игнорируемых хранит буквальное значение события/действия (nil = null в ответе)
type Classification struct {
	Accepted bool
	Reason   string
	Event    *string
	Action   *string
}

// Classify никогда не ошибается: всё, что не pull_request с действием
// opened/synchronize/reopened, уходит в ветку игнорирования
func Classify(event, action string) Classification {
	if event != eventPullRequest {
		return Classification{
			Reason: ReasonUnsupportedEvent,
			Event:  optional(event),
		}
	}

	if _, ok := acceptedActions[action]; !ok {
		return Classification{
			Reason: ReasonUnsupportedAction,
			Action: optional(action),
		}
	}

	return Classification{Accepted: true}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
