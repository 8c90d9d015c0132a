package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sitara-travels/lms-backend/internal/apperrors"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
	portssvc "github.com/sitara-travels/lms-backend/internal/core/ports/services"
	"github.com/sitara-travels/lms-backend/internal/dto"
	"github.com/sitara-travels/lms-backend/internal/middleware"
)

// LoanService owns the loan lifecycle write paths. Balance changes always flow
// through new transactions, never direct edits.
type LoanService struct {
	customerRepo   portsrepo.CustomerRepositoryFacade
	loanRepo       portsrepo.LoanRepositoryFacade
	installmentSvc portssvc.InstallmentSvcFacade
	auditSvc       portssvc.AuditSvcFacade
}

// NewLoanService creates a new LoanService.
func NewLoanService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	loanRepo portsrepo.LoanRepositoryFacade,
	installmentSvc portssvc.InstallmentSvcFacade,
	auditSvc portssvc.AuditSvcFacade,
) *LoanService {
	return &LoanService{
		customerRepo:   customerRepo,
		loanRepo:       loanRepo,
		installmentSvc: installmentSvc,
		auditSvc:       auditSvc,
	}
}

// GrantLoan issues a new loan: the customer is resolved by CNIC (created on
// first loan), the loan and its opening SERVICE transaction are persisted
// together, and the repayment schedule is generated against the transaction.
func (s *LoanService) GrantLoan(ctx context.Context, req dto.GrantLoanRequest, actorID string) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: loan amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	customer, err := s.customerRepo.FindCustomerByCNIC(ctx, req.CNIC)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to look up customer by CNIC", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: reading customer: %v", apperrors.ErrDataUnavailable, err)
		}
		newCustomer := domain.Customer{
			CustomerID:  uuid.NewString(),
			Name:        req.CustomerName,
			CNIC:        req.CNIC,
			Phone:       req.Phone,
			Email:       req.Email,
			AuditFields: audit,
		}
		if err := s.customerRepo.SaveCustomer(ctx, newCustomer); err != nil {
			logger.Error("Failed to create customer", slog.String("error", err.Error()))
			return nil, err
		}
		logger.Info("Customer created on first loan", slog.String("customer_id", newCustomer.CustomerID))
		customer = &newCustomer
	}

	loan := domain.Loan{
		LoanID:          uuid.NewString(),
		CustomerID:      customer.CustomerID,
		TotalDebtAmount: req.Amount,
		CurrentBalance:  req.Amount,
		TermMonths:      req.TermMonths,
		NextDueDate:     req.FirstDueDate, // schedule start, fixed at grant
		Status:          domain.LoanActive,
		AuditFields:     audit,
	}
	txn := domain.LoanTransaction{
		TransactionID:        uuid.NewString(),
		LoanID:               loan.LoanID,
		TransactionType:      domain.Service,
		Amount:               req.Amount,
		TransactionTimestamp: now,
		Remark:               req.Remark,
		AuditFields:          audit,
	}

	if err := s.loanRepo.SaveLoanWithTransaction(ctx, loan, txn); err != nil {
		logger.Error("Failed to save loan", slog.String("error", err.Error()), slog.String("loan_id", loan.LoanID))
		return nil, err
	}

	if _, err := s.installmentSvc.GenerateSchedule(ctx, txn.TransactionID, req.Amount, req.TermMonths, req.FirstDueDate, actorID); err != nil {
		// The loan row already exists; there is no multi-entity rollback here.
		// Surface the failure so the operator can re-seed the plan.
		logger.Error("Failed to generate repayment schedule for new loan", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("loan %s created but schedule generation failed: %w", loan.LoanID, err)
	}

	s.recordAudit(ctx, actorID, "GRANT_LOAN", "loan", loan.LoanID, map[string]any{
		"customerID": customer.CustomerID,
		"amount":     req.Amount.String(),
		"termMonths": req.TermMonths,
	})

	logger.Info("Loan granted", slog.String("loan_id", loan.LoanID), slog.String("customer_id", customer.CustomerID))
	return &loan, nil
}

// RecordPayment appends a PAYMENT transaction against an active loan and
// decrements the balance. Payments exceeding the current balance are rejected
// so the balance can never go negative; the loan closes when it reaches zero.
func (s *LoanService) RecordPayment(ctx context.Context, loanID string, req dto.RecordPaymentRequest, actorID string) (*domain.LoanTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to read loan for payment", slog.String("error", err.Error()), slog.String("loan_id", loanID))
		return nil, fmt.Errorf("%w: reading loan: %v", apperrors.ErrDataUnavailable, err)
	}
	if loan.Status != domain.LoanActive {
		return nil, fmt.Errorf("%w: loan %s is not active", apperrors.ErrValidation, loanID)
	}
	if req.Amount.GreaterThan(loan.CurrentBalance) {
		return nil, fmt.Errorf("%w: payment %s exceeds current balance %s", apperrors.ErrValidation, req.Amount, loan.CurrentBalance)
	}

	now := time.Now()
	updatedLoan, err := s.loanRepo.ApplyPayment(ctx, loanID, req.Amount, actorID, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// A concurrent payment moved the balance below the amount between
			// our read and the conditional update.
			return nil, err
		}
		logger.Error("Failed to apply payment to loan", slog.String("error", err.Error()), slog.String("loan_id", loanID))
		return nil, err
	}

	txn := domain.LoanTransaction{
		TransactionID:        uuid.NewString(),
		LoanID:               loanID,
		TransactionType:      domain.Payment,
		Amount:               req.Amount,
		TransactionTimestamp: now,
		PaymentMethod:        req.PaymentMethod,
		Remark:               req.Remark,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := s.loanRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save payment transaction", slog.String("error", err.Error()), slog.String("loan_id", loanID))
		return nil, err
	}

	s.recordAudit(ctx, actorID, "RECORD_PAYMENT", "loan", loanID, map[string]any{
		"transactionID": txn.TransactionID,
		"amount":        req.Amount.String(),
		"balanceAfter":  updatedLoan.CurrentBalance.String(),
		"status":        string(updatedLoan.Status),
	})

	logger.Info("Payment recorded", slog.String("loan_id", loanID), slog.String("amount", req.Amount.String()), slog.String("balance", updatedLoan.CurrentBalance.String()))
	return &txn, nil
}

// GetLoanByID retrieves one loan.
func (s *LoanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find loan by ID", slog.String("error", err.Error()), slog.String("loan_id", loanID))
		}
		return nil, err
	}
	return loan, nil
}

// ListLoansByCustomer retrieves all loans for one customer, oldest first.
func (s *LoanService) ListLoansByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error) {
	loans, err := s.loanRepo.FindLoansByCustomerID(ctx, customerID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list loans", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

// recordAudit appends an audit entry for a completed mutation. Audit failures
// are logged but never fail the operation that already committed.
func (s *LoanService) recordAudit(ctx context.Context, actorID, action, entityType, entityID string, changes map[string]any) {
	if err := s.auditSvc.Record(ctx, actorID, action, entityType, entityID, changes); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to record audit entry", slog.String("action", action), slog.String("entity_id", entityID), slog.String("error", err.Error()))
	}
}
