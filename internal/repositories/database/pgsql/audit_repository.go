package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
	"github.com/sitara-travels/lms-backend/internal/models"
)

type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// newPgxAuditRepository creates a new repository for the audit trail.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{pool: pool}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// SaveAuditLog appends one immutable entry. Changes are stored as JSONB.
func (r *PgxAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	var changes []byte
	if entry.Changes != nil {
		b, err := json.Marshal(entry.Changes)
		if err != nil {
			return fmt.Errorf("failed to marshal audit changes: %w", err)
		}
		changes = b
	}

	query := `
		INSERT INTO audit_logs (audit_id, actor_id, action, entity_type, entity_id, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.AuditID,
		entry.ActorID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		changes,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit log %s: %w", entry.AuditID, err)
	}
	return nil
}

// ListAuditLogsByEntity returns entries for one entity, newest first. The actor
// display name is joined from employees; entries whose actor is gone keep the
// raw actor ID.
func (r *PgxAuditRepository) ListAuditLogsByEntity(ctx context.Context, entityID string, limit, offset int) ([]domain.AuditLogEntry, error) {
	query := `
		SELECT a.audit_id, a.actor_id, COALESCE(e.name, ''), a.action, a.entity_type, a.entity_id, a.changes, a.created_at
		FROM audit_logs a
		LEFT JOIN employees e ON e.employee_id = a.actor_id
		WHERE a.entity_id = $1
		ORDER BY a.created_at DESC, a.audit_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs for entity %s: %w", entityID, err)
	}
	defer rows.Close()

	entries := []domain.AuditLogEntry{}
	for rows.Next() {
		entry, err := scanAuditLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log rows: %w", err)
	}
	return entries, nil
}

func scanAuditLog(row pgx.Row) (*domain.AuditLogEntry, error) {
	var m models.AuditLog
	var actorName string
	var changes []byte
	err := row.Scan(
		&m.AuditID,
		&m.ActorID,
		&actorName,
		&m.Action,
		&m.EntityType,
		&m.EntityID,
		&changes,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry := domain.AuditLogEntry{
		AuditID:    m.AuditID,
		ActorID:    m.ActorID,
		ActorName:  actorName,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		CreatedAt:  m.CreatedAt,
	}
	if len(changes) > 0 {
		if err := json.Unmarshal(changes, &entry.Changes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit changes: %w", err)
		}
	}
	return &entry, nil
}
