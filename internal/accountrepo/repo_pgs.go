// Package accountrepo manages repository layer of balance cache accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/muhindakevin/backend-sub002/internal/domain"
	"github.com/muhindakevin/backend-sub002/pkg/dbpkg"
	"github.com/muhindakevin/backend-sub002/pkg/errorspkg"
)

// lockNotAvailable is the SQLSTATE raised when lock_timeout expires.
const lockNotAvailable = "55P03"

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createIfAbsentQuery = `
INSERT INTO
    accounts (owner_id, account_type)
VALUES
    ($1, $2)
ON CONFLICT (owner_id, account_type) DO NOTHING
`

// CreateIfAbsent creates the account row for the given owner and type
// on first reference. It is a no-op when the row already exists.
func (r *RepoPGS) CreateIfAbsent(ctx context.Context, ownerID int64, accountType domain.AccountType) error {
	l := zerolog.Ctx(ctx)

	if !domain.IsValidAccountType(accountType) {
		return domain.ErrUnsupportedAccountType
	}

	_, err := r.db.ExecContext(ctx, createIfAbsentQuery, ownerID, accountType)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const getQuery = `
SELECT id, owner_id, account_type, balance, last_entry_id, created_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByOwnerQuery = `
SELECT id, owner_id, account_type, balance, last_entry_id, created_at
FROM accounts
WHERE owner_id = $1 AND account_type = $2
`

// GetByOwner returns the account of the given type for the given owner.
func (r *RepoPGS) GetByOwner(ctx context.Context, ownerID int64, accountType domain.AccountType) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByOwnerQuery, ownerID, accountType)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listByOwnerQuery = `
SELECT id, owner_id, account_type, balance, last_entry_id, created_at
FROM accounts
WHERE owner_id = $1
ORDER BY id
`

// ListByOwner returns all accounts of the given owner.
func (r *RepoPGS) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByOwnerQuery, ownerID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Type, &a.Balance, &a.LastEntryID, &a.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const listIDsQuery = `
SELECT id FROM accounts ORDER BY id
`

// ListIDs returns the ids of all accounts, for reconciliation sweeps.
func (r *RepoPGS) ListIDs(ctx context.Context) ([]int64, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listIDsQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	ids := []int64{}

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return ids, nil
}

const getForUpdateQuery = `
SELECT id, owner_id, account_type, balance, last_entry_id, created_at
FROM accounts
WHERE id = $1
FOR UPDATE
`

// GetForUpdate locks the account row for the rest of the caller's
// transaction and returns it. The wait for the row lock is bounded by
// lockTimeout; on expiry the caller receives domain.ErrLockTimeout and
// may retry with backoff.
//
// Must run inside a transaction: SET LOCAL is scoped to it.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id int64, lockTimeout time.Duration) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	setTimeout := "SET LOCAL lock_timeout = " + pq.QuoteLiteral(lockTimeout.String())
	if _, err := r.db.ExecContext(ctx, setTimeout); err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	row := r.db.QueryRowContext(ctx, getForUpdateQuery, id)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == lockNotAvailable {
			l.Warn().Int64("account_id", id).Msg("account lock timeout")
			return a, domain.ErrLockTimeout
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const advanceProjectionQuery = `
UPDATE accounts
SET balance = balance + $1, last_entry_id = $2
WHERE id = $3 AND last_entry_id < $2
RETURNING id, owner_id, account_type, balance, last_entry_id, created_at
`

// AdvanceProjection adds delta to the cached balance and moves the
// watermark to entryID. The watermark only moves forward; applying an
// entry at or below it returns domain.ErrStaleProjection.
func (r *RepoPGS) AdvanceProjection(ctx context.Context, id int64, delta string, entryID int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, advanceProjectionQuery, delta, entryID, id)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrStaleProjection
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const setProjectionQuery = `
UPDATE accounts
SET balance = $1, last_entry_id = $2
WHERE id = $3
RETURNING id, owner_id, account_type, balance, last_entry_id, created_at
`

// SetProjection rebuilds the cached balance from a full ledger fold.
// Only the repair path may call it, under the account row lock.
func (r *RepoPGS) SetProjection(ctx context.Context, id int64, balance string, entryID int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setProjectionQuery, balance, entryID, id)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Type,
		&a.Balance,
		&a.LastEntryID,
		&a.CreatedAt,
	)

	return a, err
}
