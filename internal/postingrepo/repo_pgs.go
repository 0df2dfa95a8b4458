// Package postingrepo manages the posting transaction over the ledger
// and the balance cache.
package postingrepo

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/muhindakevin/backend-sub002/internal/accountrepo"
	"github.com/muhindakevin/backend-sub002/internal/domain"
	"github.com/muhindakevin/backend-sub002/internal/ledgerrepo"
	"github.com/muhindakevin/backend-sub002/internal/projector"
	"github.com/muhindakevin/backend-sub002/pkg/errorspkg"
)

// RepoPGS executes posting and repair transactions.
type RepoPGS struct {
	conn        *sql.DB
	lockTimeout time.Duration
}

// NewRepoPGS returns posting RepoPGS with a connection to start
// transactions and the bounded wait applied to account row locks.
func NewRepoPGS(conn *sql.DB, lockTimeout time.Duration) *RepoPGS {
	return &RepoPGS{
		conn:        conn,
		lockTimeout: lockTimeout,
	}
}

// ExecutePosting appends all legs of one logical operation and projects
// the affected balances within a single transaction.
//
// The entries and the balance updates commit or roll back together: no
// partial ledger state is ever visible. A previously committed
// operation key short-circuits into a replay of the prior result.
func (r *RepoPGS) ExecutePosting(ctx context.Context, arg domain.PostingTxParams) (domain.PostingTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.PostingTxResult

	replay, found, err := r.findReplay(ctx, arg.OperationKey)
	if err != nil {
		return result, err
	}

	if found {
		return replay, nil
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	ledgerRepo := ledgerrepo.NewRepoPGS(tx)
	accountRepo := accountrepo.NewRepoPGS(tx)
	proj := projector.New(ledgerRepo, accountRepo)

	accountIDs, err := r.resolveAccounts(ctx, accountRepo, arg.Legs)
	if err != nil {
		return result, err
	}

	// Lock rows in ascending id order to avoid deadlocks between
	// concurrent postings that touch the same accounts.
	if err := r.lockAccounts(ctx, accountRepo, accountIDs); err != nil {
		return result, err
	}

	result.OperationKey = arg.OperationKey
	result.Entries = make([]domain.LedgerEntry, 0, len(arg.Legs))
	result.Accounts = make([]domain.Account, len(arg.Legs))

	updated := make(map[int64]domain.Account, len(accountIDs))

	for i, leg := range arg.Legs {
		entry, err := ledgerRepo.Append(ctx, domain.CreateEntryParams{
			AccountID:     accountIDs[i],
			Kind:          leg.Kind,
			Amount:        leg.Amount,
			OperationKey:  arg.OperationKey,
			ReferenceType: arg.ReferenceType,
			ReferenceID:   arg.ReferenceID,
			SupersedesID:  leg.SupersedesID,
		})

		if err != nil {
			if errors.Is(err, domain.ErrDuplicateOperation) {
				// Lost the race to a concurrent submission of the
				// same operation. Roll back and serve its result.
				_ = tx.Rollback()
				return r.replayCommitted(ctx, arg.OperationKey)
			}

			return result, err
		}

		result.Entries = append(result.Entries, entry)

		account, err := proj.Apply(ctx, entry)
		if err != nil {
			return result, err
		}

		updated[account.ID] = account
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.PostingTxResult{}, errorspkg.ErrInternal
	}

	for i := range arg.Legs {
		result.Accounts[i] = updated[accountIDs[i]]
	}

	return result, nil
}

// Repair reconciles the cached balance of a drifted account back to
// consistency with the ledger by appending a compensating reversal
// entry and rebuilding the projection from the full fold. The observed
// balance is preserved and the correction is itself a ledger fact.
func (r *RepoPGS) Repair(ctx context.Context, accountID int64, operationKey string) (domain.RepairResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.RepairResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	ledgerRepo := ledgerrepo.NewRepoPGS(tx)
	accountRepo := accountrepo.NewRepoPGS(tx)
	proj := projector.New(ledgerRepo, accountRepo)

	account, err := accountRepo.GetForUpdate(ctx, accountID, r.lockTimeout)
	if err != nil {
		return result, err
	}

	recomputedStr, err := proj.Recompute(ctx, accountID)
	if err != nil {
		return result, err
	}

	cached, err := decimal.NewFromString(account.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	recomputed, err := decimal.NewFromString(recomputedStr)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	drift := cached.Sub(recomputed)

	result.Report = domain.DriftReport{
		AccountID:   account.ID,
		OwnerID:     account.OwnerID,
		Type:        account.Type,
		Cached:      cached.String(),
		Recomputed:  recomputed.String(),
		Drift:       drift.String(),
		LastEntryID: account.LastEntryID,
		CheckedAt:   time.Now().UTC(),
	}

	if drift.IsZero() {
		return result, domain.ErrNoDrift
	}

	adjustment, err := ledgerRepo.Append(ctx, domain.CreateEntryParams{
		AccountID:     accountID,
		Kind:          domain.KindReversal,
		Amount:        drift.String(),
		OperationKey:  operationKey,
		ReferenceType: domain.ReferenceReconciliation,
		ReferenceID:   accountID,
	})
	if err != nil {
		return result, err
	}

	// After the adjustment the full fold equals the previously cached
	// value, so the rebuilt projection preserves the observed balance.
	rebuilt := recomputed.Add(drift)

	repaired, err := accountRepo.SetProjection(ctx, accountID, rebuilt.String(), adjustment.ID)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.RepairResult{}, errorspkg.ErrInternal
	}

	result.Adjustment = adjustment
	result.Account = repaired

	return result, nil
}

// ListEntriesForOperation returns the entries committed under the
// operation key, used to resolve waiver and reversal targets.
func (r *RepoPGS) ListEntriesForOperation(ctx context.Context, operationKey string) ([]domain.LedgerEntry, error) {
	return ledgerrepo.NewRepoPGS(r.conn).ListForOperation(ctx, operationKey)
}

// GetEntry returns the ledger entry with the given id.
func (r *RepoPGS) GetEntry(ctx context.Context, id int64) (domain.LedgerEntry, error) {
	return ledgerrepo.NewRepoPGS(r.conn).Get(ctx, id)
}

// GetAccount returns the account with the given id.
func (r *RepoPGS) GetAccount(ctx context.Context, id int64) (domain.Account, error) {
	return accountrepo.NewRepoPGS(r.conn).Get(ctx, id)
}

func (r *RepoPGS) findReplay(ctx context.Context, operationKey string) (domain.PostingTxResult, bool, error) {
	var result domain.PostingTxResult

	entries, err := ledgerrepo.NewRepoPGS(r.conn).ListForOperation(ctx, operationKey)
	if err != nil {
		return result, false, err
	}

	if len(entries) == 0 {
		return result, false, nil
	}

	accountRepo := accountrepo.NewRepoPGS(r.conn)

	result.OperationKey = operationKey
	result.Entries = entries
	result.Accounts = make([]domain.Account, 0, len(entries))
	result.Replayed = true

	for _, e := range entries {
		account, err := accountRepo.Get(ctx, e.AccountID)
		if err != nil {
			return domain.PostingTxResult{}, false, err
		}

		result.Accounts = append(result.Accounts, account)
	}

	return result, true, nil
}

func (r *RepoPGS) replayCommitted(ctx context.Context, operationKey string) (domain.PostingTxResult, error) {
	replay, found, err := r.findReplay(ctx, operationKey)
	if err != nil {
		return domain.PostingTxResult{}, err
	}

	if !found {
		return domain.PostingTxResult{}, errorspkg.ErrInternal
	}

	return replay, nil
}

func (r *RepoPGS) resolveAccounts(ctx context.Context, accountRepo *accountrepo.RepoPGS, legs []domain.PostingLeg) ([]int64, error) {
	ids := make([]int64, len(legs))

	for i, leg := range legs {
		if err := accountRepo.CreateIfAbsent(ctx, leg.OwnerID, leg.AccountType); err != nil {
			return nil, err
		}

		account, err := accountRepo.GetByOwner(ctx, leg.OwnerID, leg.AccountType)
		if err != nil {
			return nil, err
		}

		ids[i] = account.ID
	}

	return ids, nil
}

func (r *RepoPGS) lockAccounts(ctx context.Context, accountRepo *accountrepo.RepoPGS, ids []int64) error {
	ordered := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))

	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			ordered = append(ordered, id)
		}
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	for _, id := range ordered {
		if _, err := accountRepo.GetForUpdate(ctx, id, r.lockTimeout); err != nil {
			return err
		}
	}

	return nil
}
