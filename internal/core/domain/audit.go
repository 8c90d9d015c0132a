package domain

import "time"

// AuditLogEntry is an immutable record of one state-mutating call. Entries are
// never updated or deleted.
type AuditLogEntry struct {
	AuditID    string         `json:"auditID"`   // Primary Key (UUID)
	ActorID    string         `json:"actorID"`   // EmployeeID of the caller
	ActorName  string         `json:"actorName"` // Display name, joined on read
	Action     string         `json:"action"`    // Verb, upper-cased on write
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityID"`
	Changes    map[string]any `json:"changes"` // Free-form change payload
	CreatedAt  time.Time      `json:"createdAt"`
}
