package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/apperrors"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
	portssvc "github.com/sitara-travels/lms-backend/internal/core/ports/services"
	"github.com/sitara-travels/lms-backend/internal/dto"
	"github.com/sitara-travels/lms-backend/internal/middleware"
)

// InstallmentService owns the per-transaction installment plan.
type InstallmentService struct {
	installmentRepo portsrepo.InstallmentRepositoryFacade
	auditSvc        portssvc.AuditSvcFacade
}

// NewInstallmentService creates a new InstallmentService.
func NewInstallmentService(installmentRepo portsrepo.InstallmentRepositoryFacade, auditSvc portssvc.AuditSvcFacade) *InstallmentService {
	return &InstallmentService{
		installmentRepo: installmentRepo,
		auditSvc:        auditSvc,
	}
}

// GenerateSchedule creates the repayment plan for one SERVICE transaction:
// termMonths installments numbered 1..N, due dates one calendar month apart
// starting at firstDueDate. Each installment gets totalAmount/termMonths
// rounded to 2 decimal places; the final installment absorbs the rounding
// remainder so the amounts sum exactly to totalAmount. Plans are created
// exactly once per transaction.
func (s *InstallmentService) GenerateSchedule(ctx context.Context, transactionID string, totalAmount decimal.Decimal, termMonths int, firstDueDate time.Time, actorID string) ([]domain.Installment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !totalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	}
	if termMonths < 1 {
		return nil, fmt.Errorf("%w: term must be at least one month", apperrors.ErrValidation)
	}

	existing, err := s.installmentRepo.FindInstallmentsByTransactionID(ctx, transactionID)
	if err != nil {
		logger.Error("Failed to check for existing schedule", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("%w: reading installments: %v", apperrors.ErrDataUnavailable, err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: transaction %s has %d installments", apperrors.ErrAlreadyScheduled, transactionID, len(existing))
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	perInstallment := totalAmount.DivRound(decimal.NewFromInt(int64(termMonths)), 2)
	installments := make([]domain.Installment, termMonths)
	for i := 0; i < termMonths; i++ {
		amount := perInstallment
		if i == termMonths-1 {
			// The final installment takes totalAmount minus everything already
			// scheduled, so rounding never leaks.
			amount = totalAmount.Sub(perInstallment.Mul(decimal.NewFromInt(int64(termMonths - 1))))
		}
		installments[i] = domain.Installment{
			InstallmentID:     uuid.NewString(),
			LoanTransactionID: transactionID,
			InstallmentNumber: i + 1,
			DueDate:           firstDueDate.AddDate(0, i, 0),
			Amount:            amount,
			Status:            domain.InstallmentPending,
			AmountPaid:        decimal.Zero,
			AuditFields:       audit,
		}
	}

	if err := s.installmentRepo.SaveInstallments(ctx, installments); err != nil {
		logger.Error("Failed to save generated schedule", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.recordAudit(ctx, actorID, "GENERATE_SCHEDULE", "loan_transaction", transactionID, map[string]any{
		"installments": termMonths,
		"totalAmount":  totalAmount.String(),
		"firstDueDate": firstDueDate.Format(time.RFC3339),
	})

	logger.Info("Repayment schedule generated", slog.String("transaction_id", transactionID), slog.Int("installments", termMonths))
	return installments, nil
}

// ListInstallments returns a transaction's plan ordered by installment number,
// with the overdue state derived against the current clock. A transaction with
// no plan returns an empty slice.
func (s *InstallmentService) ListInstallments(ctx context.Context, transactionID string) ([]domain.Installment, error) {
	installments, err := s.installmentRepo.FindInstallmentsByTransactionID(ctx, transactionID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list installments", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("%w: reading installments: %v", apperrors.ErrDataUnavailable, err)
	}
	now := time.Now()
	for i := range installments {
		installments[i].Status = installments[i].EffectiveStatus(now)
	}
	if installments == nil {
		return []domain.Installment{}, nil
	}
	return installments, nil
}

// EditInstallments applies due-date/amount edits to specific installments of
// one plan. The plan is locked the moment any money has moved: if any
// installment is paid or partial, every edit is refused with ErrPlanLocked,
// including edits to unpaid rows. Rows are updated independently; a failure on
// one row is reported and the rest of the batch proceeds.
func (s *InstallmentService) EditInstallments(ctx context.Context, transactionID string, edits []dto.InstallmentEditRequest, actorID string) (*domain.BulkEditResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	plan, err := s.installmentRepo.FindInstallmentsByTransactionID(ctx, transactionID)
	if err != nil {
		logger.Error("Failed to read plan for edit", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("%w: reading installments: %v", apperrors.ErrDataUnavailable, err)
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("%w: no installments for transaction %s", apperrors.ErrNotFound, transactionID)
	}

	// Lockedness is a computed predicate over the stored statuses, not a flag.
	planByID := make(map[string]domain.Installment, len(plan))
	for _, inst := range plan {
		if inst.Status == domain.InstallmentPaid || inst.Status == domain.InstallmentPartial {
			return nil, fmt.Errorf("%w: installment %d already received payment", apperrors.ErrPlanLocked, inst.InstallmentNumber)
		}
		planByID[inst.InstallmentID] = inst
	}

	// Reject malformed input before any write.
	for _, edit := range edits {
		if _, ok := planByID[edit.ID]; !ok {
			return nil, fmt.Errorf("%w: installment %s does not belong to transaction %s", apperrors.ErrValidation, edit.ID, transactionID)
		}
		if !edit.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: installment %s amount must be positive", apperrors.ErrValidation, edit.ID)
		}
	}

	now := time.Now()
	result := &domain.BulkEditResult{
		Updated: make([]string, 0, len(edits)),
		Failed:  map[string]string{},
	}
	for _, edit := range edits {
		if err := s.installmentRepo.UpdateSchedule(ctx, edit.ID, edit.DueDate, edit.Amount, actorID, now); err != nil {
			logger.Error("Installment edit failed, continuing batch", slog.String("error", err.Error()), slog.String("installment_id", edit.ID))
			result.Failed[edit.ID] = err.Error()
			continue
		}
		result.Updated = append(result.Updated, edit.ID)
	}

	s.recordAudit(ctx, actorID, "UPDATE_INSTALLMENTS", "loan_transaction", transactionID, map[string]any{
		"updated": len(result.Updated),
		"failed":  len(result.Failed),
	})

	return result, nil
}

// MarkPaid records money received against one installment. The stored amount
// paid accumulates across partial payments; the status becomes paid once the
// total collected covers the scheduled amount, partial otherwise. The update
// is conditional on the status and amount paid observed at read time, so of
// two concurrent calls exactly one succeeds and the other receives
// ErrConflict.
func (s *InstallmentService) MarkPaid(ctx context.Context, installmentID string, amountPaid decimal.Decimal, paymentMethod string, actorID string) (*domain.Installment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amountPaid.IsPositive() {
		return nil, fmt.Errorf("%w: amount paid must be positive", apperrors.ErrValidation)
	}

	inst, err := s.installmentRepo.FindInstallmentByID(ctx, installmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to read installment", slog.String("error", err.Error()), slog.String("installment_id", installmentID))
		return nil, fmt.Errorf("%w: reading installment: %v", apperrors.ErrDataUnavailable, err)
	}

	switch {
	case inst.Status == domain.InstallmentPaid:
		return nil, fmt.Errorf("%w: installment %s is already paid", apperrors.ErrConflict, installmentID)
	case inst.Status == domain.InstallmentSkipped:
		return nil, fmt.Errorf("%w: installment %s was skipped", apperrors.ErrValidation, installmentID)
	case !inst.Status.CanReceivePayment():
		return nil, fmt.Errorf("%w: installment %s cannot receive payment in status %s", apperrors.ErrValidation, installmentID, inst.Status)
	}

	totalPaid := inst.AmountPaid.Add(amountPaid)
	toStatus := domain.InstallmentPartial
	if totalPaid.GreaterThanOrEqual(inst.Amount) {
		toStatus = domain.InstallmentPaid
	}

	now := time.Now()
	if err := s.installmentRepo.MarkPaid(ctx, installmentID, inst.Status, toStatus, inst.AmountPaid, totalPaid, paymentMethod, actorID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Lost mark-paid race", slog.String("installment_id", installmentID))
		} else {
			logger.Error("Failed to mark installment paid", slog.String("error", err.Error()), slog.String("installment_id", installmentID))
		}
		return nil, err
	}

	s.recordAudit(ctx, actorID, "MARK_PAID", "installment", installmentID, map[string]any{
		"amountPaid": amountPaid.String(),
		"totalPaid":  totalPaid.String(),
		"status":     string(toStatus),
	})

	inst.Status = toStatus
	inst.AmountPaid = totalPaid
	inst.PaymentMethod = paymentMethod
	inst.LastUpdatedAt = now
	inst.LastUpdatedBy = actorID
	return inst, nil
}

// WipeSchedule deletes every installment of one transaction. This is an
// explicit operator reset used before re-seeding, never part of normal flow.
func (s *InstallmentService) WipeSchedule(ctx context.Context, transactionID string, actorID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	deleted, err := s.installmentRepo.DeleteInstallmentsByTransactionID(ctx, transactionID)
	if err != nil {
		logger.Error("Failed to wipe schedule", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return 0, err
	}

	s.recordAudit(ctx, actorID, "WIPE_INSTALLMENTS", "loan_transaction", transactionID, map[string]any{
		"deleted": deleted,
	})

	logger.Info("Schedule wiped", slog.String("transaction_id", transactionID), slog.Int64("deleted", deleted))
	return deleted, nil
}

func (s *InstallmentService) recordAudit(ctx context.Context, actorID, action, entityType, entityID string, changes map[string]any) {
	if err := s.auditSvc.Record(ctx, actorID, action, entityType, entityID, changes); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to record audit entry", slog.String("action", action), slog.String("entity_id", entityID), slog.String("error", err.Error()))
	}
}
