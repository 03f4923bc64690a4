package domain

type PullRequest struct {
	ID          string
	RepoID      string
	Number      int
	HeadSHA     string
	BaseSHA     string
	Title       string
	Body        *string
	AuthorLogin *string
	URL         string
	State       string
}
