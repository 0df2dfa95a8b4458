// Package reconcileservice detects and reports drift between cached
// balances and the ledger-derived truth.
package reconcileservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/muhindakevin/backend-sub002/internal/domain"
	"github.com/muhindakevin/backend-sub002/internal/driftevents"
	"github.com/muhindakevin/backend-sub002/pkg/errorspkg"
)

// AccountRepo provides account read access needed by the reconcile service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reconcileservice
type AccountRepo interface {
	Get(ctx context.Context, id int64) (domain.Account, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

// Recomputer provides the authoritative ledger fold.
type Recomputer interface {
	Recompute(ctx context.Context, accountID int64) (string, error)
}

// RepairRepo executes the locked repair transaction.
type RepairRepo interface {
	Repair(ctx context.Context, accountID int64, operationKey string) (domain.RepairResult, error)
}

// Publisher surfaces reconciliation events to operators.
type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// Service facilitates reconciliation service layer logic.
type Service struct {
	accounts  AccountRepo
	projector Recomputer
	postings  RepairRepo
	publisher Publisher
}

// New returns reconcile service struct to manage reconciliation bussines logic.
func New(ar AccountRepo, rc Recomputer, rr RepairRepo, pub Publisher) *Service {
	return &Service{
		accounts:  ar,
		projector: rc,
		postings:  rr,
		publisher: pub,
	}
}

// Reconcile computes the cached and recomputed balances of the account
// and reports the drift. Detected drift is published for operator
// alerting; nothing is corrected here. Correction is a separate,
// explicitly authorized Repair.
func (s *Service) Reconcile(ctx context.Context, accountID int64) (domain.DriftReport, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return domain.DriftReport{}, err
	}

	recomputedStr, err := s.projector.Recompute(ctx, accountID)
	if err != nil {
		return domain.DriftReport{}, err
	}

	cached, err := decimal.NewFromString(account.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.DriftReport{}, errorspkg.ErrInternal
	}

	recomputed, err := decimal.NewFromString(recomputedStr)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.DriftReport{}, errorspkg.ErrInternal
	}

	drift := cached.Sub(recomputed)

	report := domain.DriftReport{
		AccountID:   account.ID,
		OwnerID:     account.OwnerID,
		Type:        account.Type,
		Cached:      cached.String(),
		Recomputed:  recomputed.String(),
		Drift:       drift.String(),
		LastEntryID: account.LastEntryID,
		CheckedAt:   time.Now().UTC(),
	}

	if !drift.IsZero() {
		l.Warn().
			Int64("account_id", account.ID).
			Str("cached", report.Cached).
			Str("recomputed", report.Recomputed).
			Msg("balance drift detected")

		event := driftevents.BalanceDriftDetected{
			AccountID:   report.AccountID,
			OwnerID:     report.OwnerID,
			AccountType: report.Type,
			Cached:      report.Cached,
			Recomputed:  report.Recomputed,
			Drift:       report.Drift,
			CheckedAt:   report.CheckedAt,
		}

		if err := s.publisher.Publish(ctx, event); err != nil {
			l.Error().Err(err).Msg("cannot publish drift event")
		}
	}

	return report, nil
}

// ReconcileAll sweeps every account. Accounts that fail to reconcile
// are logged and skipped; the sweep itself never retries.
func (s *Service) ReconcileAll(ctx context.Context) ([]domain.DriftReport, error) {
	l := zerolog.Ctx(ctx)

	ids, err := s.accounts.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.DriftReport, 0, len(ids))

	for _, id := range ids {
		report, err := s.Reconcile(ctx, id)
		if err != nil {
			l.Error().Err(err).Int64("account_id", id).Msg("cannot reconcile account")
			continue
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// Repair corrects a drifted account through the locked repair
// transaction and publishes the committed correction.
func (s *Service) Repair(ctx context.Context, accountID int64) (domain.RepairResult, error) {
	l := zerolog.Ctx(ctx)

	operationKey := fmt.Sprintf("%s:%d:repair:%s", domain.ReferenceReconciliation, accountID, uuid.NewString())

	result, err := s.postings.Repair(ctx, accountID, operationKey)
	if err != nil {
		return result, err
	}

	event := driftevents.BalanceRepaired{
		AccountID:         result.Account.ID,
		Drift:             result.Report.Drift,
		AdjustmentEntryID: result.Adjustment.ID,
		OperationKey:      operationKey,
		RepairedAt:        time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		l.Error().Err(err).Msg("cannot publish repair event")
	}

	return result, nil
}
