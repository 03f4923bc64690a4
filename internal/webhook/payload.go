package webhook

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/bagdasarian/webhook-ingest/internal/domain"
)

// PullRequestEvent - типизированное представление интересующей нас части
// тела события. Поля идентификаторов объявлены как any: провайдер шлёт их
// то числом, то строкой, нормализация происходит при извлечении
type PullRequestEvent struct {
	Action       string               `json:"action"`
	Installation *installationPayload `json:"installation"`
	Repository   *repositoryPayload   `json:"repository"`
	PullRequest  *pullRequestPayload  `json:"pull_request"`
}

type installationPayload struct {
	ID      any             `json:"id"`
	Account *accountPayload `json:"account"`
}

type accountPayload struct {
	Login string `json:"login"`
	Type  string `json:"type"`
}

type repositoryPayload struct {
	ID       any           `json:"id"`
	Name     string        `json:"name"`
	FullName string        `json:"full_name"`
	Owner    *ownerPayload `json:"owner"`
}

type ownerPayload struct {
	Login string `json:"login"`
}

type pullRequestPayload struct {
	ID      any            `json:"id"`
	Number  any            `json:"number"`
	Title   string         `json:"title"`
	Body    *string        `json:"body"`
	State   string         `json:"state"`
	HTMLURL string         `json:"html_url"`
	User    *ownerPayload  `json:"user"`
	Head    *commitPayload `json:"head"`
	Base    *commitPayload `json:"base"`
}

type commitPayload struct {
	SHA string `json:"sha"`
}

// ParseEvent разбирает сырое тело события. UseNumber нужен, чтобы числовые
// идентификаторы не теряли точность через float64
func ParseEvent(raw []byte) (*PullRequestEvent, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var ev PullRequestEvent
	if err := dec.Decode(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// ExtractedFields - полный набор проверенных полей одного события.
// Все идентификаторы уже нормализованы к каноническим строкам
type ExtractedFields struct {
	InstallationID string
	AccountLogin   *string
	AccountType    *string

	RepoID       string
	RepoOwner    string
	RepoName     string
	RepoFullName string

	PullRequestID string
	Number        int
	HeadSHA       string
	BaseSHA       string
	Title         string
	Body          *string
	AuthorLogin   *string
	URL           string
	State         string
}

// MissingFieldsError - агрегированный список всех отсутствующих или
// неправильно типизированных обязательных полей
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Extract валидирует все обязательные поля за один проход и либо возвращает
// полный набор, либо одну агрегированную ошибку. Частичного результата не
// бывает: запись в хранилище начинается только после успешной валидации
func Extract(ev *PullRequestEvent) (*ExtractedFields, *MissingFieldsError) {
	var missing []string

	f := &ExtractedFields{}

	if ev.Installation == nil {
		missing = append(missing, "installation.id")
	} else {
		f.InstallationID = requireID(&missing, "installation.id", ev.Installation.ID)
		if ev.Installation.Account != nil {
			f.AccountLogin = optional(ev.Installation.Account.Login)
			f.AccountType = optional(ev.Installation.Account.Type)
		}
	}

	if ev.Repository == nil {
		missing = append(missing, "repository.id", "repository.owner.login", "repository.name", "repository.full_name")
	} else {
		f.RepoID = requireID(&missing, "repository.id", ev.Repository.ID)
		f.RepoName = requireString(&missing, "repository.name", ev.Repository.Name)
		f.RepoFullName = requireString(&missing, "repository.full_name", ev.Repository.FullName)
		if ev.Repository.Owner == nil {
			missing = append(missing, "repository.owner.login")
		} else {
			f.RepoOwner = requireString(&missing, "repository.owner.login", ev.Repository.Owner.Login)
		}
	}

	if ev.PullRequest == nil {
		missing = append(missing, "pull_request.id", "pull_request.number", "pull_request.head.sha",
			"pull_request.base.sha", "pull_request.title", "pull_request.html_url", "pull_request.state")
	} else {
		pr := ev.PullRequest
		f.PullRequestID = requireID(&missing, "pull_request.id", pr.ID)
		f.Number = requireNumber(&missing, "pull_request.number", pr.Number)
		f.Title = requireString(&missing, "pull_request.title", pr.Title)
		f.URL = requireString(&missing, "pull_request.html_url", pr.HTMLURL)
		f.State = requireString(&missing, "pull_request.state", pr.State)
		f.Body = pr.Body
		if pr.User != nil {
			f.AuthorLogin = optional(pr.User.Login)
		}
		if pr.Head == nil {
			missing = append(missing, "pull_request.head.sha")
		} else {
			f.HeadSHA = requireString(&missing, "pull_request.head.sha", pr.Head.SHA)
		}
		if pr.Base == nil {
			missing = append(missing, "pull_request.base.sha")
		} else {
			f.BaseSHA = requireString(&missing, "pull_request.base.sha", pr.Base.SHA)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}
	return f, nil
}

// normalizeID приводит внешний идентификатор к канонической строке
func normalizeID(v any) string {
	switch id := v.(type) {
	case json.Number:
		return id.String()
	case string:
		return id
	default:
		return ""
	}
}

func requireID(missing *[]string, name string, v any) string {
	id := normalizeID(v)
	if id == "" {
		*missing = append(*missing, name)
	}
	return id
}

func requireString(missing *[]string, name, v string) string {
	if v == "" {
		*missing = append(*missing, name)
	}
	return v
}

// requireNumber принимает только числовое значение: строка "42" здесь
// считается ошибкой типа, как и в исходном контракте
func requireNumber(missing *[]string, name string, v any) int {
	n, ok := v.(json.Number)
	if !ok {
		*missing = append(*missing, name)
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		*missing = append(*missing, name)
		return 0
	}
	return int(i)
}

// Installation собирает доменную сущность установки из извлечённых полей
func (f *ExtractedFields) Installation() *domain.Installation {
	return &domain.Installation{
		ID:           f.InstallationID,
		AccountLogin: f.AccountLogin,
		AccountType:  f.AccountType,
	}
}

func (f *ExtractedFields) Repo() *domain.Repo {
	return &domain.Repo{
		ID:             f.RepoID,
		Owner:          f.RepoOwner,
		Name:           f.RepoName,
		FullName:       f.RepoFullName,
		InstallationID: f.InstallationID,
	}
}

func (f *ExtractedFields) PullRequest() *domain.PullRequest {
	return &domain.PullRequest{
		ID:          f.PullRequestID,
		RepoID:      f.RepoID,
		Number:      f.Number,
		HeadSHA:     f.HeadSHA,
		BaseSHA:     f.BaseSHA,
		Title:       f.Title,
		Body:        f.Body,
		AuthorLogin: f.AuthorLogin,
		URL:         f.URL,
		State:       f.State,
	}
}
