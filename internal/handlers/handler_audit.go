package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/sitara-travels/lms-backend/internal/core/ports/services"
	"github.com/sitara-travels/lms-backend/internal/dto"
	"github.com/sitara-travels/lms-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// auditHandler handles HTTP requests for the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

// newAuditHandler creates a new auditHandler.
func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{
		auditService: as,
	}
}

// registerAuditRoutes registers the audit trail routes.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	audit := rg.Group("/audit")
	{
		audit.GET("", h.listAuditLogs)
	}
}

// listAuditLogs godoc
// @Summary List audit entries for an entity
// @Description Returns who-did-what-when entries for one entity, newest first, with the actor display name joined in
// @Tags audit
// @Produce  json
// @Param   entityId query string true "Entity ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 400 {object} map[string]string "Missing entityId"
// @Failure 500 {object} map[string]string "Failed to query audit trail"
// @Security BearerAuth
// @Router /audit [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entityId query parameter is required"})
		return
	}

	entries, err := h.auditService.Query(c.Request.Context(), params.EntityID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to query audit trail", slog.String("entity_id", params.EntityID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query audit trail"})
		return
	}

	resp := dto.ListAuditLogsResponse{Entries: make([]dto.AuditLogResponse, len(entries))}
	for i := range entries {
		resp.Entries[i] = dto.ToAuditLogResponse(&entries[i])
	}
	c.JSON(http.StatusOK, resp)
}
