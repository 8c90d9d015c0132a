package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is a row in the installments table.
// (installment_number is unique per loan_transaction_id, 1-based, contiguous.)
type Installment struct {
	InstallmentID     string          `db:"installment_id"`
	LoanTransactionID string          `db:"loan_transaction_id"`
	InstallmentNumber int             `db:"installment_number"`
	DueDate           time.Time       `db:"due_date"`
	Amount            decimal.Decimal `db:"amount"`
	Status            string          `db:"status"`
	AmountPaid        decimal.Decimal `db:"amount_paid"`
	PaymentMethod     string          `db:"payment_method"` // Nullable
	AuditFields
}
