package dto

import (
	"time"

	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// ListAuditLogsParams defines query parameters for the audit trail endpoint.
type ListAuditLogsParams struct {
	EntityID string `form:"entityId" binding:"required"`
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}

// AuditLogResponse defines the data returned for one audit entry.
type AuditLogResponse struct {
	AuditID    string         `json:"auditID"`
	ActorID    string         `json:"actorID"`
	ActorName  string         `json:"actorName"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityID"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ListAuditLogsResponse wraps the audit entries, newest first.
type ListAuditLogsResponse struct {
	Entries []AuditLogResponse `json:"entries"`
}

// ToAuditLogResponse converts a domain.AuditLogEntry to AuditLogResponse DTO.
func ToAuditLogResponse(e *domain.AuditLogEntry) AuditLogResponse {
	return AuditLogResponse{
		AuditID:    e.AuditID,
		ActorID:    e.ActorID,
		ActorName:  e.ActorName,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Changes:    e.Changes,
		CreatedAt:  e.CreatedAt,
	}
}
