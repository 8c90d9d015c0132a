package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/apperrors"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
	portsrepo "github.com/sitara-travels/lms-backend/internal/core/ports/repositories"
	"github.com/sitara-travels/lms-backend/internal/middleware"
)

// LedgerService merges loan-granted and payment/fee events for one customer
// into a single chronologically ordered ledger with a running balance. It is
// read-only over its inputs and recomputes from source on every call.
type LedgerService struct {
	customerRepo portsrepo.CustomerReader
	loanRepo     portsrepo.LoanRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(customerRepo portsrepo.CustomerReader, loanRepo portsrepo.LoanRepositoryFacade) *LedgerService {
	return &LedgerService{
		customerRepo: customerRepo,
		loanRepo:     loanRepo,
	}
}

// GetCustomerLedger builds the merged ledger for one customer. Entries are
// sorted by timestamp ascending; on equal timestamps loans (SERVICE entries)
// sort before transactions, and input order is preserved within each kind, so
// the output is deterministic for a fixed input set.
func (s *LedgerService) GetCustomerLedger(ctx context.Context, customerID string) (*domain.CustomerLedger, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to read customer for ledger", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("%w: reading customer: %v", apperrors.ErrDataUnavailable, err)
	}

	loans, err := s.loanRepo.FindLoansByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("Failed to read loans for ledger", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("%w: reading loans: %v", apperrors.ErrDataUnavailable, err)
	}

	// A customer with zero loans has an empty ledger, not an error.
	if len(loans) == 0 {
		return &domain.CustomerLedger{
			Customer: *customer,
			Entries:  []domain.LedgerEntry{},
			Balance:  decimal.Zero,
		}, nil
	}

	loanIDs := make([]string, len(loans))
	for i, loan := range loans {
		loanIDs[i] = loan.LoanID
	}

	txns, err := s.loanRepo.FindTransactionsByLoanIDs(ctx, loanIDs)
	if err != nil {
		logger.Error("Failed to read transactions for ledger", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("%w: reading transactions: %v", apperrors.ErrDataUnavailable, err)
	}

	// Loans first, transactions after: the stable sort keeps this order for
	// entries with equal timestamps.
	entries := make([]domain.LedgerEntry, 0, len(loans)+len(txns))
	for _, loan := range loans {
		entries = append(entries, domain.LedgerEntry{
			EntryID:     loan.LoanID,
			Date:        loan.CreatedAt,
			Type:        domain.LedgerService,
			Description: fmt.Sprintf("Loan granted over %d months", loan.TermMonths),
			Amount:      loan.TotalDebtAmount,
			IsDebit:     true,
		})
	}
	for _, txn := range txns {
		entries = append(entries, toLedgerEntry(txn))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	// Debits add to the debt balance, credits subtract. Each entry carries the
	// balance after applying it.
	balance := decimal.Zero
	for i := range entries {
		if entries[i].IsDebit {
			balance = balance.Add(entries[i].Amount)
		} else {
			balance = balance.Sub(entries[i].Amount)
		}
		entries[i].Balance = balance
	}

	logger.Debug("Ledger computed", slog.String("customer_id", customerID), slog.Int("entries", len(entries)), slog.String("balance", balance.String()))

	return &domain.CustomerLedger{
		Customer: *customer,
		Entries:  entries,
		Balance:  balance,
	}, nil
}

// toLedgerEntry maps a transaction to its ledger presentation. Fees are kept
// as debit entries so the loan balance invariant (total debt minus payments,
// adjusted by fees) holds through the running balance.
func toLedgerEntry(txn domain.LoanTransaction) domain.LedgerEntry {
	entry := domain.LedgerEntry{
		EntryID: txn.TransactionID,
		Date:    txn.TransactionTimestamp,
		Amount:  txn.Amount,
		IsDebit: txn.TransactionType.IsDebit(),
	}
	switch txn.TransactionType {
	case domain.Fee:
		entry.Type = domain.LedgerFee
		entry.Description = "Fee charged"
	default:
		entry.Type = domain.LedgerPayment
		entry.Description = "Payment received"
	}
	// A remark replaces the generic wording; the payment method is appended
	// either way.
	if txn.Remark != "" {
		entry.Description = txn.Remark
	}
	if txn.PaymentMethod != "" {
		entry.Description = fmt.Sprintf("%s via %s", entry.Description, txn.PaymentMethod)
	}
	return entry
}
