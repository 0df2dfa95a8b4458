package domain

import "time"

// Credit score bands.
const (
	CreditBandPoor      = "poor"
	CreditBandFair      = "fair"
	CreditBandGood      = "good"
	CreditBandExcellent = "excellent"
)

// CreditScore is a rule-based risk score derived from a member's ledger
// history. Scores range from 300 to 850.
type CreditScore struct {
	MemberID          int64     `json:"member_id"`
	Score             int       `json:"score"`
	Band              string    `json:"band"`
	SavingsBalance    string    `json:"savings_balance"`
	OutstandingLoan   string    `json:"outstanding_loan"`
	OutstandingFines  string    `json:"outstanding_fines"`
	ContributionCount int64     `json:"contribution_count"`
	ReversalCount     int64     `json:"reversal_count"`
	ComputedAt        time.Time `json:"computed_at"`
}
