package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sitara-travels/lms-backend/internal/apperrors"
	portssvc "github.com/sitara-travels/lms-backend/internal/core/ports/services"
	"github.com/sitara-travels/lms-backend/internal/dto"
	"github.com/sitara-travels/lms-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// installmentHandler handles HTTP requests for installment plans.
type installmentHandler struct {
	installmentService portssvc.InstallmentSvcFacade
	reconcileService   portssvc.ReconcileSvcFacade
}

// newInstallmentHandler creates a new installmentHandler.
func newInstallmentHandler(is portssvc.InstallmentSvcFacade, rs portssvc.ReconcileSvcFacade) *installmentHandler {
	return &installmentHandler{
		installmentService: is,
		reconcileService:   rs,
	}
}

// registerInstallmentRoutes registers all installment-related routes.
func registerInstallmentRoutes(rg *gin.RouterGroup, installmentService portssvc.InstallmentSvcFacade, reconcileService portssvc.ReconcileSvcFacade) {
	h := newInstallmentHandler(installmentService, reconcileService)

	installments := rg.Group("/installments")
	{
		installments.GET("", h.listInstallments)
		installments.POST("/update", h.bulkUpdateInstallments)
		installments.POST("/reconcile", h.reconcileInstallments)
		installments.POST("/generate", h.generateSchedule)
		installments.POST("/:installmentID/pay", h.markPaid)
		installments.DELETE("", h.wipeInstallments)
	}
}

// listInstallments godoc
// @Summary List a transaction's installment plan
// @Description Returns the plan ordered by installment number. Overdue status is derived on read. A transaction without a plan yields an empty array.
// @Tags installments
// @Produce  json
// @Param   transactionId query string true "Loan transaction ID"
// @Success 200 {object} dto.ListInstallmentsResponse
// @Failure 400 {object} map[string]string "Missing transactionId"
// @Failure 500 {object} map[string]string "Failed to list installments"
// @Security BearerAuth
// @Router /installments [get]
func (h *installmentHandler) listInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInstallmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transactionId query parameter is required"})
		return
	}

	installments, err := h.installmentService.ListInstallments(c.Request.Context(), params.TransactionID)
	if err != nil {
		logger.Error("Failed to list installments", slog.String("transaction_id", params.TransactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list installments"})
		return
	}

	now := time.Now()
	resp := dto.ListInstallmentsResponse{Installments: make([]dto.InstallmentResponse, len(installments))}
	for i := range installments {
		resp.Installments[i] = dto.ToInstallmentResponse(&installments[i], now)
	}
	c.JSON(http.StatusOK, resp)
}

// bulkUpdateInstallments godoc
// @Summary Edit due dates and amounts of a plan
// @Description Applies row-by-row edits to pending installments. The whole plan is rejected once any installment in it is paid or partial. Rows are applied best-effort; per-row failures are reported without rolling back the rest.
// @Tags installments
// @Accept  json
// @Produce  json
// @Param   edits body dto.BulkUpdateInstallmentsRequest true "Plan edits"
// @Success 200 {object} dto.BulkUpdateInstallmentsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Plan not found"
// @Failure 423 {object} map[string]string "Plan locked by received payments"
// @Failure 500 {object} map[string]string "Failed to update installments"
// @Security BearerAuth
// @Router /installments/update [post]
func (h *installmentHandler) bulkUpdateInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkUpdateInstallmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for bulk update request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("actor_id", actorID), slog.String("transaction_id", req.TransactionID))
	logger.Info("Received request to edit installment plan", slog.Int("rows", len(req.Installments)))

	result, err := h.installmentService.EditInstallments(c.Request.Context(), req.TransactionID, req.Installments, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No plan found to edit")
			c.JSON(http.StatusNotFound, gin.H{"error": "No installment plan for this transaction"})
		} else if errors.Is(err, apperrors.ErrPlanLocked) {
			logger.Warn("Plan locked by received payments")
			c.JSON(http.StatusLocked, gin.H{"error": "Plan has received payments and can no longer be edited"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Plan edit failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to edit installment plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update installments"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BulkUpdateInstallmentsResponse{
		Success: len(result.Failed) == 0,
		Updated: result.Updated,
		Failed:  result.Failed,
	})
}

// reconcileInstallments godoc
// @Summary Reconcile denormalized installment amounts
// @Description Aligns the amount field of paid installments with the amount actually collected and zeroes skipped ones. Idempotent: rerunning with no new payment activity writes nothing.
// @Tags installments
// @Produce  json
// @Success 200 {object} dto.ReconcileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to reconcile"
// @Security BearerAuth
// @Router /installments/reconcile [post]
func (h *installmentHandler) reconcileInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to reconcile installment amounts", slog.String("actor_id", actorID))

	summary, err := h.reconcileService.ReconcileAmounts(c.Request.Context(), actorID)
	if err != nil {
		logger.Error("Failed to reconcile installment amounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile installments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReconcileResponse(summary))
}

// generateSchedule godoc
// @Summary Seed an installment plan for a transaction
// @Description Operator endpoint to (re-)create a repayment plan after a wipe. Plans for new loans are created automatically when the loan is granted.
// @Tags installments
// @Accept  json
// @Produce  json
// @Param   plan body dto.GenerateScheduleRequest true "Plan parameters"
// @Success 201 {object} dto.ListInstallmentsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Plan already exists"
// @Failure 500 {object} map[string]string "Failed to generate plan"
// @Security BearerAuth
// @Router /installments/generate [post]
func (h *installmentHandler) generateSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for generate schedule request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("actor_id", actorID), slog.String("transaction_id", req.TransactionID))
	logger.Info("Received request to generate installment plan", slog.Int("term_months", req.TermMonths))

	installments, err := h.installmentService.GenerateSchedule(c.Request.Context(), req.TransactionID, req.TotalAmount, req.TermMonths, req.FirstDueDate, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyScheduled) {
			logger.Warn("Plan already exists for transaction")
			c.JSON(http.StatusConflict, gin.H{"error": "An installment plan already exists for this transaction"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Generate schedule failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate installment plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate installment plan"})
		}
		return
	}

	now := time.Now()
	resp := dto.ListInstallmentsResponse{Installments: make([]dto.InstallmentResponse, len(installments))}
	for i := range installments {
		resp.Installments[i] = dto.ToInstallmentResponse(&installments[i], now)
	}
	c.JSON(http.StatusCreated, resp)
}

// markPaid godoc
// @Summary Mark an installment paid
// @Description Records money received against one installment. Full payment marks it paid, anything less marks it partial. Of two concurrent calls exactly one succeeds.
// @Tags installments
// @Accept  json
// @Produce  json
// @Param   installmentID path string true "Installment ID"
// @Param   payment body dto.MarkPaidRequest true "Payment details"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 400 {object} map[string]string "Invalid input or skipped installment"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Installment not found"
// @Failure 409 {object} map[string]string "Already paid or concurrent update"
// @Failure 500 {object} map[string]string "Failed to mark paid"
// @Security BearerAuth
// @Router /installments/{installmentID}/pay [post]
func (h *installmentHandler) markPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	installmentID := c.Param("installmentID")

	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for mark paid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("actor_id", actorID), slog.String("installment_id", installmentID))
	logger.Info("Received request to mark installment paid", slog.String("amount_paid", req.AmountPaid.String()))

	inst, err := h.installmentService.MarkPaid(c.Request.Context(), installmentID, req.AmountPaid, req.PaymentMethod, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Installment not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Installment not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Mark paid failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Mark paid conflicted with installment state", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to mark installment paid", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark installment paid"})
		}
		return
	}

	logger.Info("Installment payment recorded", slog.String("status", string(inst.Status)))
	c.JSON(http.StatusOK, dto.ToInstallmentResponse(inst, time.Now()))
}

// wipeInstallments godoc
// @Summary Delete a transaction's whole plan
// @Description Operator reset before re-seeding. Removes every installment of the transaction unconditionally.
// @Tags installments
// @Produce  json
// @Param   transactionId query string true "Loan transaction ID"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string "Missing transactionId"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to wipe plan"
// @Security BearerAuth
// @Router /installments [delete]
func (h *installmentHandler) wipeInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.WipeInstallmentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transactionId query parameter is required"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("actor_id", actorID), slog.String("transaction_id", params.TransactionID))
	logger.Info("Received request to wipe installment plan")

	deleted, err := h.installmentService.WipeSchedule(c.Request.Context(), params.TransactionID, actorID)
	if err != nil {
		logger.Error("Failed to wipe installment plan", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to wipe installment plan"})
		return
	}

	logger.Info("Installment plan wiped", slog.Int64("deleted", deleted))
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
