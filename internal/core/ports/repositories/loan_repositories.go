package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// LoanReader defines read operations for loan data.
type LoanReader interface {
	// FindLoanByID retrieves a loan by its unique identifier.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// FindLoansByCustomerID retrieves all loans for a customer, oldest first.
	FindLoansByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error)
}

// LoanWriter defines write operations for loan data.
type LoanWriter interface {
	// SaveLoanWithTransaction persists a new loan together with its opening
	// SERVICE transaction inside one database transaction.
	SaveLoanWithTransaction(ctx context.Context, loan domain.Loan, txn domain.LoanTransaction) error

	// ApplyPayment atomically decrements the loan balance by amount, closing
	// the loan when the balance reaches zero. The update is conditional on
	// current_balance >= amount; a zero-row update reports apperrors.ErrConflict
	// so callers can reject payments that would drive the balance negative.
	ApplyPayment(ctx context.Context, loanID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) (*domain.Loan, error)
}

// LoanTransactionReader defines read operations for loan transaction data.
type LoanTransactionReader interface {
	// FindTransactionByID retrieves a single transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.LoanTransaction, error)

	// FindTransactionsByLoanIDs retrieves all PAYMENT and FEE transactions
	// posted against the given loans, oldest first.
	FindTransactionsByLoanIDs(ctx context.Context, loanIDs []string) ([]domain.LoanTransaction, error)
}

// LoanTransactionWriter defines write operations for loan transaction data.
// Transactions are append-only; there is no update or delete.
type LoanTransactionWriter interface {
	// SaveTransaction appends one immutable financial event.
	SaveTransaction(ctx context.Context, txn domain.LoanTransaction) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
	LoanTransactionReader
	LoanTransactionWriter
}
