package services

import (
	"context"

	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// ReconcileSvcFacade is the one-shot batch that repairs the denormalized
// installment amount field so it reflects what was actually collected.
type ReconcileSvcFacade interface {
	// ReconcileAmounts scans every installment: paid rows get amount set to
	// amount_paid, skipped rows get amount set to zero, all other rows are left
	// untouched. Writes happen only when the stored value differs, so a second
	// run with no intervening payment activity performs zero writes. Per-row
	// write failures are logged and counted; the batch continues.
	ReconcileAmounts(ctx context.Context, actorID string) (*domain.ReconcileSummary, error)
}
