package domain

import (
	"errors"
	"time"
)

// ErrNoDrift indicates a repair request for an account whose cache
// already matches the ledger.
var ErrNoDrift = errors.New("no balance drift")

// DriftReport is the outcome of reconciling one account.
type DriftReport struct {
	AccountID   int64       `json:"account_id"`
	OwnerID     int64       `json:"owner_id"`
	Type        AccountType `json:"type"`
	Cached      string      `json:"cached"`
	Recomputed  string      `json:"recomputed"`
	Drift       string      `json:"drift"`
	LastEntryID int64       `json:"last_entry_id"`
	CheckedAt   time.Time   `json:"checked_at"`
}

// HasDrift reports whether the cached and recomputed balances differ.
func (r DriftReport) HasDrift() bool {
	return r.Drift != "0"
}

// RepairResult is the committed outcome of an explicit drift repair.
// The adjustment entry makes the correction itself audit-visible.
type RepairResult struct {
	Report     DriftReport `json:"report"`
	Adjustment LedgerEntry `json:"adjustment"`
	Account    Account     `json:"account"`
}
