// Package projector maintains the derived balance cache of accounts.
package projector

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/muhindakevin/backend-sub002/internal/domain"
)

// LedgerRepo provides the ledger read access needed by the projector.
type LedgerRepo interface {
	SumForAccount(ctx context.Context, accountID int64) (string, error)
}

// AccountRepo provides the cache write access needed by the projector.
type AccountRepo interface {
	AdvanceProjection(ctx context.Context, id int64, delta string, entryID int64) (domain.Account, error)
}

// Projector folds ledger entries into Account.Balance.
//
// Apply has no transaction boundary of its own: it must be constructed
// over the same transaction that appended the entry, so the ledger and
// the cache commit or roll back together.
type Projector struct {
	ledger   LedgerRepo
	accounts AccountRepo
}

// New returns a Projector over the given repositories.
func New(lr LedgerRepo, ar AccountRepo) *Projector {
	return &Projector{
		ledger:   lr,
		accounts: ar,
	}
}

// Apply incrementally adds the entry amount to the cached balance and
// advances the watermark to the entry id.
func (p *Projector) Apply(ctx context.Context, entry domain.LedgerEntry) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := p.accounts.AdvanceProjection(ctx, entry.AccountID, entry.Amount, entry.ID)
	if err != nil {
		l.Error().Err(err).Int64("entry_id", entry.ID).Send()
		return account, err
	}

	return account, nil
}

// Recompute folds the full ledger for the account and returns the
// authoritative balance. It is the audit path used by reconciliation;
// normal reads serve the cached balance.
func (p *Projector) Recompute(ctx context.Context, accountID int64) (string, error) {
	l := zerolog.Ctx(ctx)

	sum, err := p.ledger.SumForAccount(ctx, accountID)
	if err != nil {
		return "", err
	}

	recomputed, err := decimal.NewFromString(sum)
	if err != nil {
		l.Error().Err(err).Send()
		return "", err
	}

	return recomputed.String(), nil
}
