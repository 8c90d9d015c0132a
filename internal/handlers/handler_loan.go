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

// loanHandler handles HTTP requests for loan issuance and payments.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// newLoanHandler creates a new loanHandler.
func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{
		loanService: ls,
	}
}

// registerLoanRoutes registers all loan-related routes.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.grantLoan)
		loans.GET("", h.listLoans)
		loans.GET("/:loanID", h.getLoan)
		loans.POST("/:loanID/payments", h.recordPayment)
	}
}

// grantLoan godoc
// @Summary Grant a new loan
// @Description Issues a loan: resolves the customer by CNIC (creating them on first contact), opens the loan with its SERVICE transaction and seeds the repayment schedule
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.GrantLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to grant loan"
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) grantLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GrantLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for grant loan request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("actor_id", actorID), slog.String("cnic", req.CNIC))
	logger.Info("Received request to grant loan", slog.String("amount", req.Amount.String()))

	loan, err := h.loanService.GrantLoan(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Grant loan request failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate entity while granting loan", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to grant loan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant loan"})
		}
		return
	}

	logger.Info("Loan granted successfully", slog.String("loan_id", loan.LoanID))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// getLoan godoc
// @Summary Get a loan by ID
// @Tags loans
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to retrieve loan"
// @Security BearerAuth
// @Router /loans/{loanID} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("loanID")

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Loan not found", slog.String("loan_id", loanID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		} else {
			logger.Error("Failed to get loan", slog.String("loan_id", loanID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve loan"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List a customer's loans
// @Description Returns all loans for one customer, oldest first
// @Tags loans
// @Produce  json
// @Param   customerId query string true "Customer ID"
// @Success 200 {array} dto.LoanResponse
// @Failure 400 {object} map[string]string "Missing customerId"
// @Failure 500 {object} map[string]string "Failed to list loans"
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customerID := c.Query("customerId")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId query parameter is required"})
		return
	}

	loans, err := h.loanService.ListLoansByCustomer(c.Request.Context(), customerID)
	if err != nil {
		logger.Error("Failed to list loans", slog.String("customer_id", customerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list loans"})
		return
	}

	resp := make([]dto.LoanResponse, len(loans))
	for i := range loans {
		resp[i] = dto.ToLoanResponse(&loans[i])
	}
	c.JSON(http.StatusOK, resp)
}

// recordPayment godoc
// @Summary Record a payment against a loan
// @Description Appends a PAYMENT transaction and decrements the loan balance, closing the loan when the balance reaches zero
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 409 {object} map[string]string "Loan closed or concurrent payment"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /loans/{loanID}/payments [post]
func (h *loanHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("loanID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for record payment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("actor_id", actorID), slog.String("loan_id", loanID))
	logger.Info("Received request to record payment", slog.String("amount", req.Amount.String()))

	txn, err := h.loanService.RecordPayment(c.Request.Context(), loanID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Loan not found for payment")
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Payment request failed validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Payment conflicted with loan state", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	logger.Info("Payment recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
