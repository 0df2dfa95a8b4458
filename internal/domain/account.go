// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrLockTimeout indicates that the per-account lock was not acquired in time.
	ErrLockTimeout = errors.New("account lock timeout")
	// ErrStaleProjection indicates that the balance cache already includes the given entry.
	ErrStaleProjection = errors.New("stale balance projection")
	// ErrUnsupportedAccountType indicates an unknown account type.
	ErrUnsupportedAccountType = errors.New("unsupported account type")
)

// AccountType discriminates the ledger accounts kept per owner.
type AccountType string

// Account types. Savings and fine accounts belong to members, the pool
// account belongs to a group, the loan account tracks a member's
// outstanding principal separately from savings.
const (
	AccountSavings AccountType = "savings"
	AccountPool    AccountType = "pool"
	AccountLoan    AccountType = "loan"
	AccountFine    AccountType = "fine"
)

// IsValidAccountType reports whether t is a known account type.
func IsValidAccountType(t AccountType) bool {
	switch t {
	case AccountSavings, AccountPool, AccountLoan, AccountFine:
		return true
	}

	return false
}

// Account is the derived balance cache for one owner and account type.
//
// Balance must always equal the sum of ledger entry amounts for this
// account up to and including LastEntryID. Deviation is a bug signal
// surfaced by reconciliation, never silently overwritten.
type Account struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Type        AccountType `json:"type"`
	Balance     string      `json:"balance"`
	LastEntryID int64       `json:"last_entry_id"`
	CreatedAt   time.Time   `json:"created_at"`
}
