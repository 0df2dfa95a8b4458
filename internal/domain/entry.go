package domain

import (
	"errors"
	"time"
)

var (
	// ErrEntryNotFound indicates that the ledger entry is not found.
	ErrEntryNotFound = errors.New("ledger entry not found")
	// ErrDuplicateOperation indicates that the operation key has already been committed.
	ErrDuplicateOperation = errors.New("duplicate operation")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNonPositiveAmount indicates a zero or negative amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrAlreadyReversed indicates that the entry has already been reversed.
	ErrAlreadyReversed = errors.New("entry already reversed")
	// ErrMissingOperationKey indicates a posting without an idempotency key.
	ErrMissingOperationKey = errors.New("operation key is required")
)

// EntryKind classifies a ledger entry.
type EntryKind string

// Entry kinds.
const (
	KindContribution     EntryKind = "contribution"
	KindLoanDisbursement EntryKind = "loan_disbursement"
	KindLoanPayment      EntryKind = "loan_payment"
	KindFineIssuance     EntryKind = "fine_issuance"
	KindFinePayment      EntryKind = "fine_payment"
	KindFineWaiver       EntryKind = "fine_waiver"
	KindReversal         EntryKind = "reversal"
)

// Reference types linking entries to their originating business objects.
const (
	ReferenceContribution   = "contribution"
	ReferenceFine           = "fine"
	ReferenceLoan           = "loan"
	ReferenceReconciliation = "reconciliation"
)

// LedgerEntry is an immutable monetary fact. Credits are positive,
// debits are negative. Corrections are new entries with SupersedesID
// set, never updates.
type LedgerEntry struct {
	ID            int64     `json:"id"`
	AccountID     int64     `json:"account_id"`
	Kind          EntryKind `json:"kind"`
	Amount        string    `json:"amount"`
	OperationKey  string    `json:"operation_key"`
	ReferenceType string    `json:"reference_type"`
	ReferenceID   int64     `json:"reference_id"`
	SupersedesID  *int64    `json:"supersedes_id,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// CreateEntryParams is the input data to append a ledger entry.
type CreateEntryParams struct {
	AccountID     int64
	Kind          EntryKind
	Amount        string
	OperationKey  string
	ReferenceType string
	ReferenceID   int64
	SupersedesID  *int64
}
