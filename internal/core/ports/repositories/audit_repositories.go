package repositories

import (
	"context"

	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// AuditRepositoryFacade defines the append-only audit trail store.
type AuditRepositoryFacade interface {
	// SaveAuditLog appends one immutable entry.
	SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error

	// ListAuditLogsByEntity returns entries for one entity, newest first, with
	// the actor display name joined in.
	ListAuditLogsByEntity(ctx context.Context, entityID string, limit, offset int) ([]domain.AuditLogEntry, error)
}
