package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitara-travels/lms-backend/internal/core/domain"
)

// GetLedgerParams defines query parameters for the ledger endpoint.
type GetLedgerParams struct {
	CustomerID string `form:"customerId" binding:"required"`
}

// LedgerEntryResponse is one row of the merged ledger. Balance is the running
// total after applying this entry.
type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IsDebit     bool            `json:"isDebit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerResponse wraps the customer, the ordered entries and the final balance.
type LedgerResponse struct {
	Customer CustomerResponse      `json:"customer"`
	Ledger   []LedgerEntryResponse `json:"ledger"`
	Balance  decimal.Decimal       `json:"balance"`
}

// ToLedgerResponse converts a domain.CustomerLedger to LedgerResponse DTO.
func ToLedgerResponse(l *domain.CustomerLedger) LedgerResponse {
	entries := make([]LedgerEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = LedgerEntryResponse{
			ID:          e.EntryID,
			Date:        e.Date,
			Type:        string(e.Type),
			Description: e.Description,
			Amount:      e.Amount,
			IsDebit:     e.IsDebit,
			Balance:     e.Balance,
		}
	}
	return LedgerResponse{
		Customer: ToCustomerResponse(&l.Customer),
		Ledger:   entries,
		Balance:  l.Balance,
	}
}
