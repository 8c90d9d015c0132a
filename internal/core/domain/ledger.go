package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryType classifies an entry in a customer's merged ledger.
type LedgerEntryType string

const (
	LedgerService LedgerEntryType = "SERVICE"
	LedgerPayment LedgerEntryType = "PAYMENT"
	LedgerFee     LedgerEntryType = "FEE"
)

// LedgerEntry is one row of the merged, chronologically ordered view of
// debt-increasing and debt-decreasing events for one customer. Balance is the
// running total after applying this entry.
type LedgerEntry struct {
	EntryID     string          `json:"id"`
	Date        time.Time       `json:"date"`
	Type        LedgerEntryType `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IsDebit     bool            `json:"isDebit"`
	Balance     decimal.Decimal `json:"balance"`
}

// CustomerLedger is the full ledger for one customer with its final balance.
type CustomerLedger struct {
	Customer Customer        `json:"customer"`
	Entries  []LedgerEntry   `json:"ledger"`
	Balance  decimal.Decimal `json:"balance"`
}

// ReconcileSummary reports the per-row outcomes of one reconciliation batch.
// Failed rows are counted separately so the summary reflects actual outcomes.
type ReconcileSummary struct {
	Total          int `json:"total"`
	UpdatedPaid    int `json:"updatedPaid"`
	UpdatedSkipped int `json:"updatedSkipped"`
	Skipped        int `json:"skipped"` // examined and left unchanged
	Failed         int `json:"failed"`
}

// BulkEditResult reports which installment rows were updated and which failed
// during a best-effort batch edit. There is no rollback across rows.
type BulkEditResult struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed"` // installmentID -> reason
}
