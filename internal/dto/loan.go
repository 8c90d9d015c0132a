package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// GrantLoanRequest defines the data needed to issue a new loan. The customer is
// resolved by CNIC; name/phone/email are used only when the customer is new.
type GrantLoanRequest struct {
	CustomerName string          `json:"customerName" binding:"required"`
	CNIC         string          `json:"cnic" binding:"required"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	TermMonths   int             `json:"termMonths" binding:"required,gte=1"`
	FirstDueDate time.Time       `json:"firstDueDate" binding:"required"`
	Remark       string          `json:"remark"`
}

// RecordPaymentRequest defines the data needed to post a payment against a loan.
type RecordPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod"`
	Remark        string          `json:"remark"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID          string          `json:"loanID"`
	CustomerID      string          `json:"customerID"`
	TotalDebtAmount decimal.Decimal `json:"totalDebtAmount"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	TermMonths      int             `json:"termMonths"`
	NextDueDate     time.Time       `json:"nextDueDate"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:          l.LoanID,
		CustomerID:      l.CustomerID,
		TotalDebtAmount: l.TotalDebtAmount,
		CurrentBalance:  l.CurrentBalance,
		TermMonths:      l.TermMonths,
		NextDueDate:     l.NextDueDate,
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt,
	}
}

// TransactionResponse defines the data returned for a loan transaction.
type TransactionResponse struct {
	TransactionID        string          `json:"transactionID"`
	LoanID               string          `json:"loanID"`
	TransactionType      string          `json:"transactionType"`
	Amount               decimal.Decimal `json:"amount"`
	TransactionTimestamp time.Time       `json:"transactionTimestamp"`
	PaymentMethod        string          `json:"paymentMethod,omitempty"`
	Remark               string          `json:"remark,omitempty"`
}

// ToTransactionResponse converts a domain.LoanTransaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.LoanTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		LoanID:               t.LoanID,
		TransactionType:      string(t.TransactionType),
		Amount:               t.Amount,
		TransactionTimestamp: t.TransactionTimestamp,
		PaymentMethod:        t.PaymentMethod,
		Remark:               t.Remark,
	}
}
