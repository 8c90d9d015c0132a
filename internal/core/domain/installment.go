package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus is the payment-status lifecycle of one installment.
//
// pending -> {partial, paid, skipped, overdue}
// overdue -> {partial, paid, skipped}
// partial -> paid
// paid and skipped are terminal.
//
// overdue is derived on read (due date passed while still pending), never a
// stored transition.
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentPartial InstallmentStatus = "partial"
	InstallmentSkipped InstallmentStatus = "skipped"
	InstallmentOverdue InstallmentStatus = "overdue"
)

// IsTerminal reports whether no further status transition is allowed.
func (s InstallmentStatus) IsTerminal() bool {
	return s == InstallmentPaid || s == InstallmentSkipped
}

// CanReceivePayment reports whether MarkPaid may act on this stored status.
func (s InstallmentStatus) CanReceivePayment() bool {
	return s == InstallmentPending || s == InstallmentPartial || s == InstallmentOverdue
}

// Installment is one scheduled portion of a SERVICE transaction's repayment plan.
//
// Amount semantics depend on status: for paid rows the reconciler aligns it with
// AmountPaid, for skipped rows with zero; pending/partial/overdue rows keep the
// originally scheduled value.
type Installment struct {
	InstallmentID     string            `json:"installmentID"`     // Primary Key (UUID)
	LoanTransactionID string            `json:"loanTransactionID"` // FK -> loan_transactions.transaction_id
	InstallmentNumber int               `json:"installmentNumber"` // 1-based, contiguous per transaction
	DueDate           time.Time         `json:"dueDate"`
	Amount            decimal.Decimal   `json:"amount"`
	Status            InstallmentStatus `json:"status"`
	AmountPaid        decimal.Decimal   `json:"amountPaid"`
	PaymentMethod     string            `json:"paymentMethod"` // Optional, set on payment
	AuditFields
}

// EffectiveStatus returns the status as presented to callers: a pending
// installment whose due date has passed reads as overdue. The stored status is
// left untouched.
func (i Installment) EffectiveStatus(now time.Time) InstallmentStatus {
	if i.Status == InstallmentPending && i.DueDate.Before(now) {
		return InstallmentOverdue
	}
	return i.Status
}
