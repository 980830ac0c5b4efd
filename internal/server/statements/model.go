package statements

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationType is the kind of a recorded monetary operation.
type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// Valid reports whether t is one of the known operation types.
func (t OperationType) Valid() bool {
	return t == OperationDeposit || t == OperationWithdraw
}

// Statement is a single recorded monetary operation against a user's
// account. Rows are append-only and immutable after creation.
type Statement struct {
	ID            string
	UserID        string
	OperationType OperationType
	Amount        decimal.Decimal
	Description   string
	CreatedAt     time.Time
}

// Balance is the result of the balance query: the user's statements in
// chronological order together with the derived balance.
type Balance struct {
	Statements []*Statement
	Balance    decimal.Decimal
}
