package domain

type Installation struct {
	ID           string
	AccountLogin *string
	AccountType  *string
}
