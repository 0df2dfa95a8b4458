// Package creditservice derives a member credit score from ledger history.
//
// The score is rule based: consistent saving raises it, outstanding
// debt and reversed postings lower it. It feeds loan approval screens
// in the main backend.
package creditservice

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/muhindakevin/backend-sub002/internal/domain"
)

// Score bounds and weights.
const (
	minScore  = 300
	maxScore  = 850
	baseScore = 500
)

// AccountRepo provides account read access needed by the credit service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package creditservice
type AccountRepo interface {
	GetByOwner(ctx context.Context, ownerID int64, accountType domain.AccountType) (domain.Account, error)
}

// LedgerRepo provides ledger aggregates needed by the credit service layer.
type LedgerRepo interface {
	CountForAccountKind(ctx context.Context, accountID int64, kind domain.EntryKind) (int64, error)
}

// Service facilitates credit score service layer logic.
type Service struct {
	accounts AccountRepo
	ledger   LedgerRepo
}

// New returns credit service struct to manage credit score bussines logic.
func New(ar AccountRepo, lr LedgerRepo) *Service {
	return &Service{
		accounts: ar,
		ledger:   lr,
	}
}

// Score computes the member's current credit score from committed
// ledger state only. Members without any ledger history score the base.
func (s *Service) Score(ctx context.Context, memberID int64) (domain.CreditScore, error) {
	l := zerolog.Ctx(ctx)

	savings, savingsID, err := s.balanceFor(ctx, memberID, domain.AccountSavings)
	if err != nil {
		return domain.CreditScore{}, err
	}

	loan, _, err := s.balanceFor(ctx, memberID, domain.AccountLoan)
	if err != nil {
		return domain.CreditScore{}, err
	}

	fines, fineID, err := s.balanceFor(ctx, memberID, domain.AccountFine)
	if err != nil {
		return domain.CreditScore{}, err
	}

	var contributions, reversals int64

	if savingsID != 0 {
		contributions, err = s.ledger.CountForAccountKind(ctx, savingsID, domain.KindContribution)
		if err != nil {
			return domain.CreditScore{}, err
		}

		reversals, err = s.ledger.CountForAccountKind(ctx, savingsID, domain.KindReversal)
		if err != nil {
			return domain.CreditScore{}, err
		}
	}

	if fineID != 0 {
		issued, err := s.ledger.CountForAccountKind(ctx, fineID, domain.KindFineIssuance)
		if err != nil {
			return domain.CreditScore{}, err
		}

		reversals += issued
	}

	score := baseScore

	score += capInt(int(savings.Div(decimal.NewFromInt(1_000)).IntPart())*10, 150)
	score += capInt(int(contributions)*5, 100)
	score -= capInt(int(fines.Div(decimal.NewFromInt(100)).IntPart())*5, 100)
	score -= capInt(int(reversals)*10, 50)
	score -= loanBurden(loan, savings)

	if score < minScore {
		score = minScore
	}

	if score > maxScore {
		score = maxScore
	}

	result := domain.CreditScore{
		MemberID:          memberID,
		Score:             score,
		Band:              band(score),
		SavingsBalance:    savings.String(),
		OutstandingLoan:   loan.String(),
		OutstandingFines:  fines.String(),
		ContributionCount: contributions,
		ReversalCount:     reversals,
		ComputedAt:        time.Now().UTC(),
	}

	l.Info().Int64("member_id", memberID).Int("score", score).Str("band", result.Band).Send()

	return result, nil
}

func (s *Service) balanceFor(ctx context.Context, ownerID int64, accountType domain.AccountType) (decimal.Decimal, int64, error) {
	account, err := s.accounts.GetByOwner(ctx, ownerID, accountType)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return decimal.Zero, 0, nil
		}

		return decimal.Zero, 0, err
	}

	balance, err := decimal.NewFromString(account.Balance)
	if err != nil {
		return decimal.Zero, 0, err
	}

	return balance, account.ID, nil
}

// loanBurden penalizes outstanding principal relative to savings.
func loanBurden(loan, savings decimal.Decimal) int {
	if loan.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	if savings.LessThanOrEqual(decimal.Zero) || loan.GreaterThan(savings) {
		return 100
	}

	ratio := loan.Div(savings)

	return int(ratio.Mul(decimal.NewFromInt(50)).IntPart())
}

func band(score int) string {
	switch {
	case score < 500:
		return domain.CreditBandPoor
	case score < 620:
		return domain.CreditBandFair
	case score < 740:
		return domain.CreditBandGood
	default:
		return domain.CreditBandExcellent
	}
}

func capInt(v, max int) int {
	if v > max {
		return max
	}

	return v
}
