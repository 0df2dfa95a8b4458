// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/muhindakevin/backend-sub002/internal/domain"
)

// AccountRepo provides data access layer interface needed by account service layer.
type AccountRepo interface {
	Get(ctx context.Context, id int64) (domain.Account, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Account, error)
}

// LedgerRepo provides entry read access needed by account service layer.
type LedgerRepo interface {
	ListForAccount(ctx context.Context, accountID, afterID int64, limit int32) ([]domain.LedgerEntry, error)
}

// Service facilitates account service layer logic.
type Service struct {
	accounts AccountRepo
	ledger   LedgerRepo
}

// New returns account service struct to manage account bussines logic.
func New(ar AccountRepo, lr LedgerRepo) *Service {
	return &Service{
		accounts: ar,
		ledger:   lr,
	}
}

// Get returns the account for the given account ID. Reads serve the
// cached balance; the ledger fold is the audit path, not this one.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	return s.accounts.Get(ctx, id)
}

// ListByOwner returns all accounts owned by the given member or group.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Account, error) {
	return s.accounts.ListByOwner(ctx, ownerID)
}

// ListEntries returns the transaction history of the account in
// monotonic id order, starting after afterID.
func (s *Service) ListEntries(ctx context.Context, accountID, afterID int64, limit int32) ([]domain.LedgerEntry, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}

	return s.ledger.ListForAccount(ctx, accountID, afterID, limit)
}
