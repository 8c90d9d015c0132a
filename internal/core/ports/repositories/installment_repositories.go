package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// InstallmentReader defines read operations for installment data.
type InstallmentReader interface {
	// FindInstallmentByID retrieves one installment.
	FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error)

	// FindInstallmentsByTransactionID retrieves a transaction's full plan
	// ordered by installment number. No installments is not an error; an empty
	// slice is returned.
	FindInstallmentsByTransactionID(ctx context.Context, transactionID string) ([]domain.Installment, error)

	// ListAllInstallments retrieves every installment regardless of loan or
	// customer, for maintenance batches.
	ListAllInstallments(ctx context.Context) ([]domain.Installment, error)
}

// InstallmentWriter defines write operations for installment data.
type InstallmentWriter interface {
	// SaveInstallments inserts a freshly generated plan.
	SaveInstallments(ctx context.Context, installments []domain.Installment) error

	// UpdateSchedule changes due date and scheduled amount of one installment.
	UpdateSchedule(ctx context.Context, installmentID string, dueDate time.Time, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error

	// MarkPaid transitions one installment to paid or partial, conditional on
	// the row still carrying the status AND amount_paid observed at read time
	// (optimistic concurrency). Status alone is not enough: two partial
	// payments leave the status at partial, so only the amount_paid guard
	// separates them. A zero-row update reports apperrors.ErrConflict: another
	// caller won the race.
	MarkPaid(ctx context.Context, installmentID string, fromStatus, toStatus domain.InstallmentStatus, fromAmountPaid, amountPaid decimal.Decimal, paymentMethod string, updatedBy string, updatedAt time.Time) error

	// UpdateAmount overwrites the denormalized amount field. Used only by the
	// reconciler.
	UpdateAmount(ctx context.Context, installmentID string, amount decimal.Decimal, updatedBy string, updatedAt time.Time) error

	// DeleteInstallmentsByTransactionID removes a transaction's whole plan and
	// returns the number of rows deleted. Operator-invoked reset only.
	DeleteInstallmentsByTransactionID(ctx context.Context, transactionID string) (int64, error)
}

// InstallmentRepositoryFacade combines all installment repository interfaces.
type InstallmentRepositoryFacade interface {
	InstallmentReader
	InstallmentWriter
}
