package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	"github.com/sitara-travels/lms-backend/internal/dto"
)

// InstallmentSvcFacade owns the per-transaction installment plan: creation,
// due-date/amount edits, payment marking and the operator-only wipe.
type InstallmentSvcFacade interface {
	// GenerateSchedule creates termMonths installments numbered 1..N with due
	// dates one calendar month apart starting at firstDueDate. Amounts are
	// totalAmount/termMonths rounded to 2 decimal places, with the rounding
	// remainder absorbed by the final installment so the sum is exact.
	// Fails with apperrors.ErrAlreadyScheduled if a plan already exists.
	GenerateSchedule(ctx context.Context, transactionID string, totalAmount decimal.Decimal, termMonths int, firstDueDate time.Time, actorID string) ([]domain.Installment, error)

	// ListInstallments returns a transaction's plan with overdue derived on
	// read. No plan yields an empty slice, never an error.
	ListInstallments(ctx context.Context, transactionID string) ([]domain.Installment, error)

	// EditInstallments applies due-date/amount changes row by row, best-effort.
	// Fails with apperrors.ErrPlanLocked once any installment in the plan is
	// paid or partial.
	EditInstallments(ctx context.Context, transactionID string, edits []dto.InstallmentEditRequest, actorID string) (*domain.BulkEditResult, error)

	// MarkPaid records money received against one installment. Exactly one of
	// two concurrent calls succeeds; the loser gets apperrors.ErrConflict.
	MarkPaid(ctx context.Context, installmentID string, amountPaid decimal.Decimal, paymentMethod string, actorID string) (*domain.Installment, error)

	// WipeSchedule deletes all installments for a transaction unconditionally.
	// Operator-invoked reset before re-seeding, not part of the normal flow.
	WipeSchedule(ctx context.Context, transactionID string, actorID string) (int64, error)
}
