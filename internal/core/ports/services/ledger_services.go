package services

import (
	"context"

	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// LedgerSvcFacade merges a customer's loans and transactions into one ordered
// ledger with a running balance. Read-only and safe to call concurrently.
type LedgerSvcFacade interface {
	// GetCustomerLedger returns the merged ledger for one customer.
	// A customer with zero loans yields an empty ledger and balance 0.
	GetCustomerLedger(ctx context.Context, customerID string) (*domain.CustomerLedger, error)
}
