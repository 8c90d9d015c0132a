package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a financial event on a loan.
type TransactionType string

const (
	// Service is the debit created when a loan is granted; it increases debt.
	Service TransactionType = "SERVICE"
	// Payment is a credit that decreases debt.
	Payment TransactionType = "PAYMENT"
	// Fee is a debit charged on top of the original debt.
	Fee TransactionType = "FEE"
)

// IsDebit reports whether the transaction type increases debt.
func (t TransactionType) IsDebit() bool {
	return t == Service || t == Fee
}

// LoanTransaction is an immutable financial event. Amount and type are never
// edited after creation; corrections are made via offsetting transactions.
type LoanTransaction struct {
	TransactionID        string          `json:"transactionID"` // Primary Key (UUID)
	LoanID               string          `json:"loanID"`        // FK -> loans.loan_id
	TransactionType      TransactionType `json:"transactionType"`
	Amount               decimal.Decimal `json:"amount"` // Non-negative
	TransactionTimestamp time.Time       `json:"transactionTimestamp"`
	PaymentMethod        string          `json:"paymentMethod"` // Optional
	Remark               string          `json:"remark"`        // Optional
	AuditFields
}
