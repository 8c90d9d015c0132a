package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus indicates the state of a loan.
type LoanStatus string

const (
	LoanActive LoanStatus = "ACTIVE"
	LoanClosed LoanStatus = "CLOSED"
)

// Loan is a debt instrument issued to a Customer.
//
// CurrentBalance must never be negative and must equal TotalDebtAmount minus
// the sum of all PAYMENT transactions posted against the loan, unless adjusted
// by a recorded FEE. Balance changes follow from new transactions, never from
// direct edits.
//
// NextDueDate is the repayment schedule's start date, fixed at grant. It is
// not advanced by payments; the per-installment due dates are the source of
// truth for what is due when.
type Loan struct {
	LoanID          string          `json:"loanID"`     // Primary Key (UUID)
	CustomerID      string          `json:"customerID"` // FK -> customers.customer_id
	TotalDebtAmount decimal.Decimal `json:"totalDebtAmount"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	TermMonths      int             `json:"termMonths"`
	NextDueDate     time.Time       `json:"nextDueDate"`
	Status          LoanStatus      `json:"status"`
	AuditFields
}
