package services

import (
	"context"

	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// AuditSvcFacade records and queries the append-only audit trail.
type AuditSvcFacade interface {
	// Record appends one entry. The action verb is normalized to upper-case.
	Record(ctx context.Context, actorID, action, entityType, entityID string, changes map[string]any) error

	// Query returns entries for one entity, newest first, with the actor
	// display name joined in.
	Query(ctx context.Context, entityID string, limit, offset int) ([]domain.AuditLogEntry, error)
}
