package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitara-travels/lms-backend/internal/apperrors"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
	"github.com/sitara-travels/lms-backend/internal/middleware"
)

// AuditService records and queries the append-only audit trail. Entries are
// never mutated or deleted.
type AuditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends one entry. The action verb is normalized to upper-case.
func (s *AuditService) Record(ctx context.Context, actorID, action, entityType, entityID string, changes map[string]any) error {
	if actorID == "" || action == "" || entityID == "" {
		return fmt.Errorf("%w: actor, action and entity are required", apperrors.ErrValidation)
	}

	entry := domain.AuditLogEntry{
		AuditID:    uuid.NewString(),
		ActorID:    actorID,
		Action:     strings.ToUpper(action),
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    changes,
		CreatedAt:  time.Now(),
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to append audit entry", slog.String("error", err.Error()), slog.String("action", entry.Action))
		return err
	}
	return nil
}

// Query returns entries for one entity, newest first, with the actor display
// name joined in.
func (s *AuditService) Query(ctx context.Context, entityID string, limit, offset int) ([]domain.AuditLogEntry, error) {
	entries, err := s.auditRepo.ListAuditLogsByEntity(ctx, entityID, limit, offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to query audit trail", slog.String("error", err.Error()), slog.String("entity_id", entityID))
		return nil, fmt.Errorf("failed to query audit trail: %w", err)
	}
	if entries == nil {
		return []domain.AuditLogEntry{}, nil
	}
	return entries, nil
}
