package domain

type Repo struct {
	ID             string
	Owner          string
	Name           string
	FullName       string
	InstallationID string
}
