package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// ListInstallmentsParams defines query parameters for listing a plan.
type ListInstallmentsParams struct {
	TransactionID string `form:"transactionId" binding:"required"`
}

// InstallmentResponse defines the data returned for one installment. Status is
// the effective status (overdue derived on read).
type InstallmentResponse struct {
	InstallmentID     string          `json:"id"`
	LoanTransactionID string          `json:"loan_transaction_id"`
	InstallmentNumber int             `json:"installment_number"`
	DueDate           time.Time       `json:"due_date"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
}

// ListInstallmentsResponse wraps a transaction's plan. Installments is an empty
// array (never null) when no plan exists.
type ListInstallmentsResponse struct {
	Installments []InstallmentResponse `json:"installments"`
}

// ToInstallmentResponse converts a domain.Installment to InstallmentResponse,
// presenting the effective status as of now.
func ToInstallmentResponse(inst *domain.Installment, now time.Time) InstallmentResponse {
	return InstallmentResponse{
		InstallmentID:     inst.InstallmentID,
		LoanTransactionID: inst.LoanTransactionID,
		InstallmentNumber: inst.InstallmentNumber,
		DueDate:           inst.DueDate,
		Amount:            inst.Amount,
		Status:            string(inst.EffectiveStatus(now)),
		AmountPaid:        inst.AmountPaid,
		PaymentMethod:     inst.PaymentMethod,
	}
}

// InstallmentEditRequest is one row of a bulk plan edit.
type InstallmentEditRequest struct {
	ID      string          `json:"id" binding:"required"`
	DueDate time.Time       `json:"due_date" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

// BulkUpdateInstallmentsRequest defines the body of POST /installments/update.
type BulkUpdateInstallmentsRequest struct {
	TransactionID string                   `json:"transactionId" binding:"required"`
	Installments  []InstallmentEditRequest `json:"installments" binding:"required,min=1,dive"`
}

// BulkUpdateInstallmentsResponse reports per-row outcomes of a best-effort
// batch edit: there is no rollback across rows.
type BulkUpdateInstallmentsResponse struct {
	Success bool              `json:"success"`
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed,omitempty"`
}

// MarkPaidRequest defines the body for marking one installment paid.
type MarkPaidRequest struct {
	AmountPaid    decimal.Decimal `json:"amountPaid" binding:"required"`
	PaymentMethod string          `json:"paymentMethod"`
}

// GenerateScheduleRequest defines the body for (re-)seeding a repayment plan,
// used by operators after a wipe. Normal plans are created when the loan is
// granted.
type GenerateScheduleRequest struct {
	TransactionID string          `json:"transactionId" binding:"required"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	TermMonths    int             `json:"termMonths" binding:"required,gte=1"`
	FirstDueDate  time.Time       `json:"firstDueDate" binding:"required"`
}

// WipeInstallmentsParams defines query parameters for the operator wipe.
type WipeInstallmentsParams struct {
	TransactionID string `form:"transactionId" binding:"required"`
}
