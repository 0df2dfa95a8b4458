// Package postingservice manages business logic layer of ledger postings.
//
// It is the only component permitted to create ledger entries. Every
// operation validates its input, builds the entry legs the event
// requires and delegates to a single atomic posting transaction.
package postingservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/muhindakevin/backend-sub002/internal/domain"
)

// Repo provides data access layer interface needed by posting service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package postingservice
type Repo interface {
	ExecutePosting(ctx context.Context, arg domain.PostingTxParams) (domain.PostingTxResult, error)
	ListEntriesForOperation(ctx context.Context, operationKey string) ([]domain.LedgerEntry, error)
	GetEntry(ctx context.Context, id int64) (domain.LedgerEntry, error)
	GetAccount(ctx context.Context, id int64) (domain.Account, error)
}

// Service facilitates posting service layer logic.
type Service struct {
	repo Repo
}

// New returns posting service struct to manage posting bussines logic.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// PostContribution credits a member's savings account and the group
// pool with the contributed amount.
func (s *Service) PostContribution(ctx context.Context, arg domain.ContributionParams) (domain.PostingTxResult, error) {
	amount, err := s.validAmount(ctx, arg.Amount, arg.OperationKey)
	if err != nil {
		return domain.PostingTxResult{}, err
	}

	return s.repo.ExecutePosting(ctx, domain.PostingTxParams{
		OperationKey:  arg.OperationKey,
		ReferenceType: domain.ReferenceContribution,
		ReferenceID:   arg.ContributionID,
		Legs: []domain.PostingLeg{
			{
				OwnerID:     arg.MemberID,
				AccountType: domain.AccountSavings,
				Kind:        domain.KindContribution,
				Amount:      amount.String(),
			},
			{
				OwnerID:     arg.GroupID,
				AccountType: domain.AccountPool,
				Kind:        domain.KindContribution,
				Amount:      amount.String(),
			},
		},
	})
}

// PostFineIssuance records an outstanding fine on the member's fine
// account. Savings are not touched; the fine is a debit against the
// member's net position, tracked on its own account.
func (s *Service) PostFineIssuance(ctx context.Context, arg domain.FineIssuanceParams) (domain.PostingTxResult, error) {
	amount, err := s.validAmount(ctx, arg.Amount, arg.OperationKey)
	if err != nil {
		return domain.PostingTxResult{}, err
	}

	return s.repo.ExecutePosting(ctx, domain.PostingTxParams{
		OperationKey:  arg.OperationKey,
		ReferenceType: domain.ReferenceFine,
		ReferenceID:   arg.FineID,
		Legs: []domain.PostingLeg{
			{
				OwnerID:     arg.MemberID,
				AccountType: domain.AccountFine,
				Kind:        domain.KindFineIssuance,
				Amount:      amount.String(),
			},
		},
	})
}

// PostFinePayment settles part of an outstanding fine and credits the
// group pool with the collected amount.
func (s *Service) PostFinePayment(ctx context.Context, arg domain.FinePaymentParams) (domain.PostingTxResult, error) {
	amount, err := s.validAmount(ctx, arg.Amount, arg.OperationKey)
	if err != nil {
		return domain.PostingTxResult{}, err
	}

	return s.repo.ExecutePosting(ctx, domain.PostingTxParams{
		OperationKey:  arg.OperationKey,
		ReferenceType: domain.ReferenceFine,
		ReferenceID:   arg.FineID,
		Legs: []domain.PostingLeg{
			{
				OwnerID:     arg.MemberID,
				AccountType: domain.AccountFine,
				Kind:        domain.KindFinePayment,
				Amount:      amount.Neg().String(),
			},
			{
				OwnerID:     arg.GroupID,
				AccountType: domain.AccountPool,
				Kind:        domain.KindFinePayment,
				Amount:      amount.String(),
			},
		},
	})
}

// PostFineWaiver reverses a previously issued fine. The waiver is a new
// entry superseding the issuance; the issuance itself stays in the
// ledger unmodified, and the business-object status lives outside it.
func (s *Service) PostFineWaiver(ctx context.Context, arg domain.FineWaiverParams) (domain.PostingTxResult, error) {
	l := zerolog.Ctx(ctx)

	if arg.OperationKey == "" {
		return domain.PostingTxResult{}, domain.ErrMissingOperationKey
	}

	issued, err := s.repo.ListEntriesForOperation(ctx, arg.IssuanceKey)
	if err != nil {
		return domain.PostingTxResult{}, err
	}

	var issuance *domain.LedgerEntry

	for i := range issued {
		if issued[i].Kind == domain.KindFineIssuance {
			issuance = &issued[i]
			break
		}
	}

	if issuance == nil {
		l.Info().Str("issuance_key", arg.IssuanceKey).Msg("fine issuance not found")
		return domain.PostingTxResult{}, domain.ErrEntryNotFound
	}

	amount, err := decimal.NewFromString(issuance.Amount)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.PostingTxResult{}, err
	}

	return s.repo.ExecutePosting(ctx, domain.PostingTxParams{
		OperationKey:  arg.OperationKey,
		ReferenceType: domain.ReferenceFine,
		ReferenceID:   arg.FineID,
		Legs: []domain.PostingLeg{
			{
				OwnerID:      arg.MemberID,
				AccountType:  domain.AccountFine,
				Kind:         domain.KindFineWaiver,
				Amount:       amount.Neg().String(),
				SupersedesID: &issuance.ID,
			},
		},
	})
}

// PostLoanDisbursement debits the group pool and opens the disbursed
// amount as outstanding principal on the member's loan account. The
// member's savings balance is not involved.
func (s *Service) PostLoanDisbursement(ctx context.Context, arg domain.LoanDisbursementParams) (domain.PostingTxResult, error) {
	amount, err := s.validAmount(ctx, arg.Amount, arg.OperationKey)
	if err != nil {
		return domain.PostingTxResult{}, err
	}

	return s.repo.ExecutePosting(ctx, domain.PostingTxParams{
		OperationKey:  arg.OperationKey,
		ReferenceType: domain.ReferenceLoan,
		ReferenceID:   arg.LoanID,
		Legs: []domain.PostingLeg{
			{
				OwnerID:     arg.GroupID,
				AccountType: domain.AccountPool,
				Kind:        domain.KindLoanDisbursement,
				Amount:      amount.Neg().String(),
			},
			{
				OwnerID:     arg.MemberID,
				AccountType: domain.AccountLoan,
				Kind:        domain.KindLoanDisbursement,
				Amount:      amount.String(),
			},
		},
	})
}

// PostLoanPayment reduces the member's outstanding principal and
// returns the paid amount to the group pool.
func (s *Service) PostLoanPayment(ctx context.Context, arg domain.LoanPaymentParams) (domain.PostingTxResult, error) {
	amount, err := s.validAmount(ctx, arg.Amount, arg.OperationKey)
	if err != nil {
		return domain.PostingTxResult{}, err
	}

	return s.repo.ExecutePosting(ctx, domain.PostingTxParams{
		OperationKey:  arg.OperationKey,
		ReferenceType: domain.ReferenceLoan,
		ReferenceID:   arg.LoanID,
		Legs: []domain.PostingLeg{
			{
				OwnerID:     arg.MemberID,
				AccountType: domain.AccountLoan,
				Kind:        domain.KindLoanPayment,
				Amount:      amount.Neg().String(),
			},
			{
				OwnerID:     arg.GroupID,
				AccountType: domain.AccountPool,
				Kind:        domain.KindLoanPayment,
				Amount:      amount.String(),
			},
		},
	})
}

// Reverse appends a reversal entry for a committed entry. The original
// entry stays present and unmodified; the reversal restores the balance
// that preceded it.
func (s *Service) Reverse(ctx context.Context, arg domain.ReversalParams) (domain.PostingTxResult, error) {
	l := zerolog.Ctx(ctx)

	if arg.OperationKey == "" {
		return domain.PostingTxResult{}, domain.ErrMissingOperationKey
	}

	entry, err := s.repo.GetEntry(ctx, arg.EntryID)
	if err != nil {
		return domain.PostingTxResult{}, err
	}

	account, err := s.repo.GetAccount(ctx, entry.AccountID)
	if err != nil {
		return domain.PostingTxResult{}, err
	}

	amount, err := decimal.NewFromString(entry.Amount)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.PostingTxResult{}, err
	}

	return s.repo.ExecutePosting(ctx, domain.PostingTxParams{
		OperationKey:  arg.OperationKey,
		ReferenceType: entry.ReferenceType,
		ReferenceID:   entry.ReferenceID,
		Legs: []domain.PostingLeg{
			{
				OwnerID:      account.OwnerID,
				AccountType:  account.Type,
				Kind:         domain.KindReversal,
				Amount:       amount.Neg().String(),
				SupersedesID: &entry.ID,
			},
		},
	})
}

func (s *Service) validAmount(ctx context.Context, amount, operationKey string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	if operationKey == "" {
		return decimal.Zero, domain.ErrMissingOperationKey
	}

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return decimal.Zero, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		l.Info().Str("amount", amount).Msg("non-positive amount rejected")
		return decimal.Zero, domain.ErrNonPositiveAmount
	}

	return amountDecimal, nil
}
