package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus mirrors domain.LoanStatus at the storage layer.
type LoanStatus string

const (
	LoanActive LoanStatus = "ACTIVE"
	LoanClosed LoanStatus = "CLOSED"
)

// Loan is a row in the loans table.
type Loan struct {
	LoanID          string          `db:"loan_id"`
	CustomerID      string          `db:"customer_id"`
	TotalDebtAmount decimal.Decimal `db:"total_debt_amount"`
	CurrentBalance  decimal.Decimal `db:"current_balance"`
	TermMonths      int             `db:"term_months"`
	NextDueDate     time.Time       `db:"next_due_date"`
	Status          LoanStatus      `db:"status"`
	AuditFields
}

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Service TransactionType = "SERVICE"
	Payment TransactionType = "PAYMENT"
	Fee     TransactionType = "FEE"
)

// LoanTransaction is a row in the loan_transactions table. Rows are append-only.
type LoanTransaction struct {
	TransactionID        string          `db:"transaction_id"`
	LoanID               string          `db:"loan_id"`
	TransactionType      TransactionType `db:"transaction_type"`
	Amount               decimal.Decimal `db:"amount"`
	TransactionTimestamp time.Time       `db:"transaction_timestamp"`
	PaymentMethod        string          `db:"payment_method"` // Nullable
	Remark               string          `db:"remark"`         // Nullable
	AuditFields
}
