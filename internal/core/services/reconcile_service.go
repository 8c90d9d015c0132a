package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/apperrors"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
	portssvc "github.com/sitara-travels/lms-backend/internal/core/ports/services"
	"github.com/sitara-travels/lms-backend/internal/middleware"
)

// ReconcileService repairs the denormalized installment amount field so it
// reflects what was actually collected: paid rows get amount = amount_paid,
// skipped rows get amount = 0, everything else keeps its scheduled value.
//
// The batch is a maintenance operation best run without concurrent payment
// traffic; it is always safe to re-run afterwards to absorb any race.
type ReconcileService struct {
	installmentRepo portsrepo.InstallmentRepositoryFacade
	auditSvc        portssvc.AuditSvcFacade
}

// NewReconcileService creates a new ReconcileService.
func NewReconcileService(installmentRepo portsrepo.InstallmentRepositoryFacade, auditSvc portssvc.AuditSvcFacade) *ReconcileService {
	return &ReconcileService{
		installmentRepo: installmentRepo,
		auditSvc:        auditSvc,
	}
}

// ReconcileAmounts runs one idempotent batch over all installments. Rows are
// written only when the computed value differs from the stored one, so a
// second consecutive run performs zero writes. A write failure on one row is
// logged and counted; the batch continues with the next row, and the summary
// reflects the actual per-row outcomes.
func (s *ReconcileService) ReconcileAmounts(ctx context.Context, actorID string) (*domain.ReconcileSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	installments, err := s.installmentRepo.ListAllInstallments(ctx)
	if err != nil {
		logger.Error("Failed to list installments for reconciliation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: reading installments: %v", apperrors.ErrDataUnavailable, err)
	}

	now := time.Now()
	summary := &domain.ReconcileSummary{Total: len(installments)}

	for _, inst := range installments {
		var desired decimal.Decimal
		var outcome *int

		switch {
		case inst.Status == domain.InstallmentPaid && inst.AmountPaid.IsPositive():
			desired = inst.AmountPaid
			outcome = &summary.UpdatedPaid
		case inst.Status == domain.InstallmentSkipped:
			desired = decimal.Zero
			outcome = &summary.UpdatedSkipped
		default:
			summary.Skipped++
			continue
		}

		if inst.Amount.Equal(desired) {
			// Already aligned; writing would only add audit noise.
			summary.Skipped++
			continue
		}

		if err := s.installmentRepo.UpdateAmount(ctx, inst.InstallmentID, desired, actorID, now); err != nil {
			logger.Error("Reconcile write failed, continuing batch",
				slog.String("error", err.Error()),
				slog.String("installment_id", inst.InstallmentID),
				slog.String("desired_amount", desired.String()))
			summary.Failed++
			continue
		}
		*outcome++
	}

	if err := s.auditSvc.Record(ctx, actorID, "RECONCILE_AMOUNTS", "installment", "all", map[string]any{
		"total":          summary.Total,
		"updatedPaid":    summary.UpdatedPaid,
		"updatedSkipped": summary.UpdatedSkipped,
		"skipped":        summary.Skipped,
		"failed":         summary.Failed,
	}); err != nil {
		logger.Warn("Failed to record reconcile audit entry", slog.String("error", err.Error()))
	}

	logger.Info("Reconciliation batch finished",
		slog.Int("total", summary.Total),
		slog.Int("updated_paid", summary.UpdatedPaid),
		slog.Int("updated_skipped", summary.UpdatedSkipped),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed))
	return summary, nil
}
