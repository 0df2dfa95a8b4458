// Package driftevents publishes reconciliation outcomes for operator alerting.
package driftevents

import (
	"time"

	"github.com/muhindakevin/backend-sub002/internal/domain"
)

// BalanceDriftDetected is emitted when reconciliation finds a cached
// balance that no longer matches the ledger fold. It is surfaced to
// operators and never auto-silenced.
type BalanceDriftDetected struct {
	AccountID   int64              `json:"account_id"`
	OwnerID     int64              `json:"owner_id"`
	AccountType domain.AccountType `json:"account_type"`
	Cached      string             `json:"cached"`
	Recomputed  string             `json:"recomputed"`
	Drift       string             `json:"drift"`
	CheckedAt   time.Time          `json:"checked_at"`
}

// BalanceRepaired is emitted after an operator-authorized repair
// committed its compensating adjustment entry.
type BalanceRepaired struct {
	AccountID         int64     `json:"account_id"`
	Drift             string    `json:"drift"`
	AdjustmentEntryID int64     `json:"adjustment_entry_id"`
	OperationKey      string    `json:"operation_key"`
	RepairedAt        time.Time `json:"repaired_at"`
}
