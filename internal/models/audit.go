package models

import "time"

// AuditLog is a row in the audit_logs table. Append-only.
type AuditLog struct {
	AuditID    string    `db:"audit_id"`
	ActorID    string    `db:"actor_id"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	Changes    []byte    `db:"changes"` // JSONB payload
	CreatedAt  time.Time `db:"created_at"`
}
