package services

import (
	"context"

	"github.com/sitara-travels/lms-backend/internal/core/domain"
	"github.com/sitara-travels/lms-backend/internal/dto"
)

// LoanSvcFacade owns the loan lifecycle write paths: granting a loan (which
// creates the customer on first contact, the opening SERVICE transaction and
// the repayment schedule) and posting payments against it.
type LoanSvcFacade interface {
	// GrantLoan issues a new loan. The customer is resolved by CNIC and created
	// if not seen before.
	GrantLoan(ctx context.Context, req dto.GrantLoanRequest, actorID string) (*domain.Loan, error)

	// RecordPayment appends a PAYMENT transaction and decrements the loan
	// balance, closing the loan at zero. The balance never goes negative.
	RecordPayment(ctx context.Context, loanID string, req dto.RecordPaymentRequest, actorID string) (*domain.LoanTransaction, error)

	// GetLoanByID retrieves one loan.
	GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoansByCustomer retrieves all loans for one customer, oldest first.
	ListLoansByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error)
}
