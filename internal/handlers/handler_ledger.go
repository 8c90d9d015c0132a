package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sitara-travels/lms-backend/internal/apperrors"
	portssvc "github.com/sitara-travels/lms-backend/internal/core/ports/services"
	"github.com/sitara-travels/lms-backend/internal/dto"
	"github.com/sitara-travels/lms-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the customer ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers the ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.getLedger)
	}
}

// getLedger godoc
// @Summary Get a customer's merged ledger
// @Description Returns the customer's loans and payment/fee transactions merged into one chronological statement with a running balance
// @Tags ledger
// @Produce  json
// @Param   customerId query string true "Customer ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Missing customerId"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 503 {object} map[string]string "Ledger data unavailable"
// @Security BearerAuth
// @Router /ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.GetLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for ledger request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId query parameter is required"})
		return
	}

	logger = logger.With(slog.String("customer_id", params.CustomerID))

	ledger, err := h.ledgerService.GetCustomerLedger(c.Request.Context(), params.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Customer not found for ledger request")
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		} else if errors.Is(err, apperrors.ErrDataUnavailable) {
			logger.Error("Ledger data unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ledger data unavailable"})
		} else {
			logger.Error("Failed to build ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ledger"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}
