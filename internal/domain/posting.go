package domain

// PostingLeg describes one entry a posting transaction must append.
// The account is addressed by owner and type and is created on first
// reference.
type PostingLeg struct {
	OwnerID      int64       `json:"owner_id"`
	AccountType  AccountType `json:"account_type"`
	Kind         EntryKind   `json:"kind"`
	Amount       string      `json:"amount"`
	SupersedesID *int64      `json:"supersedes_id,omitempty"`
}

// PostingTxParams is the input data for one atomic posting transaction.
type PostingTxParams struct {
	OperationKey  string       `json:"operation_key"`
	ReferenceType string       `json:"reference_type"`
	ReferenceID   int64        `json:"reference_id"`
	Legs          []PostingLeg `json:"legs"`
}

// PostingTxResult is the committed outcome of a posting transaction.
// Entries and Accounts are index-aligned with the requested legs.
// Replayed is true when the operation key had been committed before and
// the prior result is returned instead of new writes.
type PostingTxResult struct {
	OperationKey string        `json:"operation_key"`
	Entries      []LedgerEntry `json:"entries"`
	Accounts     []Account     `json:"accounts"`
	Replayed     bool          `json:"replayed"`
}

// ContributionParams is the input data to post a member contribution.
type ContributionParams struct {
	MemberID       int64  `json:"member_id"`
	GroupID        int64  `json:"group_id"`
	ContributionID int64  `json:"contribution_id"`
	Amount         string `json:"amount"`
	OperationKey   string `json:"operation_key"`
}

// FineIssuanceParams is the input data to post a fine against a member.
type FineIssuanceParams struct {
	MemberID     int64  `json:"member_id"`
	FineID       int64  `json:"fine_id"`
	Amount       string `json:"amount"`
	OperationKey string `json:"operation_key"`
}

// FinePaymentParams is the input data to post a fine payment.
type FinePaymentParams struct {
	MemberID     int64  `json:"member_id"`
	GroupID      int64  `json:"group_id"`
	FineID       int64  `json:"fine_id"`
	Amount       string `json:"amount"`
	OperationKey string `json:"operation_key"`
}

// FineWaiverParams is the input data to waive a previously issued fine.
// IssuanceKey is the operation key the issuance was posted under.
type FineWaiverParams struct {
	MemberID     int64  `json:"member_id"`
	FineID       int64  `json:"fine_id"`
	IssuanceKey  string `json:"issuance_key"`
	OperationKey string `json:"operation_key"`
}

// LoanDisbursementParams is the input data to post a loan disbursement.
type LoanDisbursementParams struct {
	MemberID     int64  `json:"member_id"`
	GroupID      int64  `json:"group_id"`
	LoanID       int64  `json:"loan_id"`
	Amount       string `json:"amount"`
	OperationKey string `json:"operation_key"`
}

// LoanPaymentParams is the input data to post a loan payment.
type LoanPaymentParams struct {
	MemberID     int64  `json:"member_id"`
	GroupID      int64  `json:"group_id"`
	LoanID       int64  `json:"loan_id"`
	Amount       string `json:"amount"`
	OperationKey string `json:"operation_key"`
}

// ReversalParams is the input data to reverse a committed entry.
type ReversalParams struct {
	EntryID      int64  `json:"entry_id"`
	OperationKey string `json:"operation_key"`
}
