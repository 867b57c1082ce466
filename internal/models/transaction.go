package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeReceita TransactionType = "receita"
	TransactionTypeDespesa TransactionType = "despesa"
)

// Transaction represents a financial transaction in the system.
// Amount is a decimal string with two fractional digits holding the
// non-negative magnitude; the sign is implied by Type.
type Transaction struct {
	ID            int             `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        string          `json:"amount"`
	CategoryID    int             `json:"categoryId"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionPatch holds the fields of a partial transaction update.
// Nil fields are left untouched by the merge; ID and CreatedAt are
// never patchable.
type TransactionPatch struct {
	Type          *TransactionType
	Amount        *string
	CategoryID    *int
	Description   *string
	PaymentMethod *string
	Date          *time.Time
}
