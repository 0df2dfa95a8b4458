// Package helpers provides seeding and fixture helpers used in tests.
package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/muhindakevin/backend-sub002/internal/accountrepo"
	"github.com/muhindakevin/backend-sub002/internal/domain"
	"github.com/muhindakevin/backend-sub002/internal/ledgerrepo"
	"github.com/muhindakevin/backend-sub002/pkg/dbpkg"
	"github.com/muhindakevin/backend-sub002/pkg/randompkg"
)

// RandomAccount returns an account fixture for mock based tests.
func RandomAccount(ownerID int64, accountType domain.AccountType) domain.Account {
	return domain.Account{
		ID:        randompkg.Int64Between(1, 1_000_000),
		OwnerID:   ownerID,
		Type:      accountType,
		Balance:   "0",
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomEntry returns a ledger entry fixture for mock based tests.
func RandomEntry(accountID int64, kind domain.EntryKind, amount string) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:            randompkg.Int64Between(1, 1_000_000),
		AccountID:     accountID,
		Kind:          kind,
		Amount:        amount,
		OperationKey:  randompkg.OperationKey(),
		ReferenceType: domain.ReferenceContribution,
		ReferenceID:   randompkg.Int64Between(1, 1_000_000),
		RecordedAt:    time.Now().Truncate(time.Second).UTC(),
	}
}

// SeedAccount creates the account row for the given owner and type and
// returns it.
func SeedAccount(t *testing.T, db dbpkg.SQLInterface, ownerID int64, accountType domain.AccountType) domain.Account {
	t.Helper()

	repo := accountrepo.NewRepoPGS(db)

	if err := repo.CreateIfAbsent(context.Background(), ownerID, accountType); err != nil {
		t.Fatalf("accountRepo.CreateIfAbsent(ctx, %v, %v) returned error: %v", ownerID, accountType, err)
	}

	account, err := repo.GetByOwner(context.Background(), ownerID, accountType)
	if err != nil {
		t.Fatalf("accountRepo.GetByOwner(ctx, %v, %v) returned error: %v", ownerID, accountType, err)
	}

	return account
}

// SeedEntry appends a ledger entry for the given account and returns it.
// The balance cache is left untouched.
func SeedEntry(t *testing.T, db dbpkg.SQLInterface, accountID int64, kind domain.EntryKind, amount string) domain.LedgerEntry {
	t.Helper()

	repo := ledgerrepo.NewRepoPGS(db)

	arg := domain.CreateEntryParams{
		AccountID:     accountID,
		Kind:          kind,
		Amount:        amount,
		OperationKey:  randompkg.OperationKey(),
		ReferenceType: domain.ReferenceContribution,
		ReferenceID:   randompkg.Int64Between(1, 1_000_000),
	}

	entry, err := repo.Append(context.Background(), arg)
	if err != nil {
		t.Fatalf("ledgerRepo.Append(ctx, %+v) returned error: %v", arg, err)
	}

	return entry
}
