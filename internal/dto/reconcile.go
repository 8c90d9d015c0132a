package dto

import (
	"fmt"

	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// ReconcileResponse summarizes one reconciliation batch.
type ReconcileResponse struct {
	Success        bool   `json:"success"`
	Total          int    `json:"total"`
	UpdatedPaid    int    `json:"updatedPaid"`
	UpdatedSkipped int    `json:"updatedSkipped"`
	Skipped        int    `json:"skipped"`
	Failed         int    `json:"failed,omitempty"`
	Message        string `json:"message"`
}

// ToReconcileResponse converts a domain.ReconcileSummary to ReconcileResponse DTO.
func ToReconcileResponse(s *domain.ReconcileSummary) ReconcileResponse {
	return ReconcileResponse{
		Success:        s.Failed == 0,
		Total:          s.Total,
		UpdatedPaid:    s.UpdatedPaid,
		UpdatedSkipped: s.UpdatedSkipped,
		Skipped:        s.Skipped,
		Failed:         s.Failed,
		Message: fmt.Sprintf("examined %d installments: %d aligned to amount paid, %d zeroed as skipped, %d unchanged, %d failed",
			s.Total, s.UpdatedPaid, s.UpdatedSkipped, s.Skipped, s.Failed),
	}
}
