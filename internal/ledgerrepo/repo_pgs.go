// Package ledgerrepo manages the append-only repository layer of ledger entries.
//
// Entries are immutable facts. The package exposes no update or delete
// operations; corrections are appended as new reversal entries.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/muhindakevin/backend-sub002/internal/domain"
	"github.com/muhindakevin/backend-sub002/pkg/dbpkg"
	"github.com/muhindakevin/backend-sub002/pkg/errorspkg"
)

// RepoPGS facilitates ledger entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns ledger entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const appendQuery = `
INSERT INTO
    ledger_entries (account_id, kind, amount, operation_key, reference_type, reference_id, supersedes_id)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, account_id, kind, amount, operation_key, reference_type, reference_id, supersedes_id, recorded_at
`

// Append appends the entry and then returns it.
func (r *RepoPGS) Append(ctx context.Context, arg domain.CreateEntryParams) (domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, appendQuery,
		arg.AccountID,
		arg.Kind,
		arg.Amount,
		arg.OperationKey,
		arg.ReferenceType,
		arg.ReferenceID,
		arg.SupersedesID,
	)

	var e domain.LedgerEntry

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Kind,
		&e.Amount,
		&e.OperationKey,
		&e.ReferenceType,
		&e.ReferenceID,
		&e.SupersedesID,
		&e.RecordedAt,
	)

	if err != nil {
		l.Error().Err(err).Msgf("Append(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "ledger_entries_operation_key_account_id_key":
				return e, domain.ErrDuplicateOperation
			case "ledger_entries_supersedes_id_key":
				return e, domain.ErrAlreadyReversed
			case "ledger_entries_account_id_fkey":
				return e, domain.ErrAccountNotFound
			}
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const getQuery = `
SELECT id, account_id, kind, amount, operation_key, reference_type, reference_id, supersedes_id, recorded_at
FROM ledger_entries
WHERE id = $1 LIMIT 1
`

// Get returns the entry with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	e, err := scanEntry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listForAccountQuery = `
SELECT id, account_id, kind, amount, operation_key, reference_type, reference_id, supersedes_id, recorded_at
FROM ledger_entries
WHERE account_id = $1 AND id > $2
ORDER BY id
LIMIT $3
`

// ListForAccount returns up to limit entries for the given account with
// id greater than afterID, in monotonic id order.
func (r *RepoPGS) ListForAccount(ctx context.Context, accountID, afterID int64, limit int32) ([]domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listForAccountQuery, accountID, afterID, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	return collectEntries(l, rows)
}

const listForOperationQuery = `
SELECT id, account_id, kind, amount, operation_key, reference_type, reference_id, supersedes_id, recorded_at
FROM ledger_entries
WHERE operation_key = $1
ORDER BY id
`

// ListForOperation returns all entries committed under the given
// operation key, in monotonic id order.
func (r *RepoPGS) ListForOperation(ctx context.Context, operationKey string) ([]domain.LedgerEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listForOperationQuery, operationKey)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	return collectEntries(l, rows)
}

const sumForAccountQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM ledger_entries
WHERE account_id = $1
`

// SumForAccount folds the full ledger for the account and returns the
// authoritative balance.
func (r *RepoPGS) SumForAccount(ctx context.Context, accountID int64) (string, error) {
	l := zerolog.Ctx(ctx)

	var sum string

	err := r.db.QueryRowContext(ctx, sumForAccountQuery, accountID).Scan(&sum)
	if err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return sum, nil
}

const countForAccountKindQuery = `
SELECT COUNT(*)
FROM ledger_entries
WHERE account_id = $1 AND kind = $2
`

// CountForAccountKind returns the number of entries of the given kind
// for the account.
func (r *RepoPGS) CountForAccountKind(ctx context.Context, accountID int64, kind domain.EntryKind) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	err := r.db.QueryRowContext(ctx, countForAccountKindQuery, accountID, kind).Scan(&count)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

func scanEntry(row *sql.Row) (domain.LedgerEntry, error) {
	var e domain.LedgerEntry

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Kind,
		&e.Amount,
		&e.OperationKey,
		&e.ReferenceType,
		&e.ReferenceID,
		&e.SupersedesID,
		&e.RecordedAt,
	)

	return e, err
}

func collectEntries(l *zerolog.Logger, rows *sql.Rows) ([]domain.LedgerEntry, error) {
	items := []domain.LedgerEntry{}

	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(
			&e.ID,
			&e.AccountID,
			&e.Kind,
			&e.Amount,
			&e.OperationKey,
			&e.ReferenceType,
			&e.ReferenceID,
			&e.SupersedesID,
			&e.RecordedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
