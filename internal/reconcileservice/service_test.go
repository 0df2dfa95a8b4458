package reconcileservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/muhindakevin/backend-sub002/internal/domain"
	"github.com/muhindakevin/backend-sub002/internal/driftevents"
	"github.com/muhindakevin/backend-sub002/pkg/errorspkg"
)

func TestReconcile(t *testing.T) {
	account := domain.Account{
		ID:          1,
		OwnerID:     7,
		Type:        domain.AccountSavings,
		Balance:     "5000",
		LastEntryID: 10,
	}

	testCases := []struct {
		name          string
		buildStubs    func(ar *MockAccountRepo, rc *MockRecomputer, pub *MockPublisher)
		checkResponse func(report domain.DriftReport, err error)
	}{
		{
			name: "NoDrift",
			buildStubs: func(ar *MockAccountRepo, rc *MockRecomputer, pub *MockPublisher) {
				ar.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
				rc.EXPECT().Recompute(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return("5000", nil)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(report domain.DriftReport, err error) {
				require.NoError(t, err)
				require.False(t, report.HasDrift())
				require.Equal(t, "0", report.Drift)
				require.Equal(t, account.LastEntryID, report.LastEntryID)
			},
		},
		{
			name: "DriftDetectedAndPublished",
			buildStubs: func(ar *MockAccountRepo, rc *MockRecomputer, pub *MockPublisher) {
				ar.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
				rc.EXPECT().Recompute(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return("4500", nil)
				pub.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(driftevents.BalanceDriftDetected{})).
					Times(1).
					Return(nil)
			},
			checkResponse: func(report domain.DriftReport, err error) {
				require.NoError(t, err)
				require.True(t, report.HasDrift())
				require.Equal(t, "500", report.Drift)
				require.Equal(t, "5000", report.Cached)
				require.Equal(t, "4500", report.Recomputed)
			},
		},
		{
			name: "PublishFailureDoesNotFailReconcile",
			buildStubs: func(ar *MockAccountRepo, rc *MockRecomputer, pub *MockPublisher) {
				ar.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
				rc.EXPECT().Recompute(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return("4500", nil)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Times(1).
					Return(errorspkg.ErrInternal)
			},
			checkResponse: func(report domain.DriftReport, err error) {
				require.NoError(t, err)
				require.True(t, report.HasDrift())
			},
		},
		{
			name: "AccountNotFound",
			buildStubs: func(ar *MockAccountRepo, rc *MockRecomputer, pub *MockPublisher) {
				ar.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
				rc.EXPECT().Recompute(gomock.Any(), gomock.Any()).Times(0)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(report domain.DriftReport, err error) {
				require.Empty(t, report)
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
			},
		},
		{
			name: "RecomputeError",
			buildStubs: func(ar *MockAccountRepo, rc *MockRecomputer, pub *MockPublisher) {
				ar.EXPECT().Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
				rc.EXPECT().Recompute(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return("", errorspkg.ErrInternal)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(report domain.DriftReport, err error) {
				require.Empty(t, report)
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := NewMockAccountRepo(ctrl)
			recomputer := NewMockRecomputer(ctrl)
			repairRepo := NewMockRepairRepo(ctrl)
			publisher := NewMockPublisher(ctrl)
			service := New(accountRepo, recomputer, repairRepo, publisher)

			tc.buildStubs(accountRepo, recomputer, publisher)

			tc.checkResponse(service.Reconcile(context.Background(), account.ID))
		})
	}
}

func TestReconcileAll(t *testing.T) {
	account1 := domain.Account{ID: 1, OwnerID: 7, Type: domain.AccountSavings, Balance: "5000"}
	account3 := domain.Account{ID: 3, OwnerID: 42, Type: domain.AccountPool, Balance: "7000"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := NewMockAccountRepo(ctrl)
	recomputer := NewMockRecomputer(ctrl)
	repairRepo := NewMockRepairRepo(ctrl)
	publisher := NewMockPublisher(ctrl)
	service := New(accountRepo, recomputer, repairRepo, publisher)

	accountRepo.EXPECT().ListIDs(gomock.Any()).
		Times(1).
		Return([]int64{1, 2, 3}, nil)

	accountRepo.EXPECT().Get(gomock.Any(), gomock.Eq(int64(1))).
		Times(1).
		Return(account1, nil)
	recomputer.EXPECT().Recompute(gomock.Any(), gomock.Eq(int64(1))).
		Times(1).
		Return("5000", nil)

	// account 2 fails and is skipped
	accountRepo.EXPECT().Get(gomock.Any(), gomock.Eq(int64(2))).
		Times(1).
		Return(domain.Account{}, errorspkg.ErrInternal)

	accountRepo.EXPECT().Get(gomock.Any(), gomock.Eq(int64(3))).
		Times(1).
		Return(account3, nil)
	recomputer.EXPECT().Recompute(gomock.Any(), gomock.Eq(int64(3))).
		Times(1).
		Return("7000", nil)

	reports, err := service.ReconcileAll(context.Background())

	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, int64(1), reports[0].AccountID)
	require.Equal(t, int64(3), reports[1].AccountID)
}

func TestRepair(t *testing.T) {
	accountID := int64(1)

	repairResult := domain.RepairResult{
		Report: domain.DriftReport{
			AccountID:  accountID,
			Cached:     "5000",
			Recomputed: "4500",
			Drift:      "500",
		},
		Adjustment: domain.LedgerEntry{
			ID:        11,
			AccountID: accountID,
			Kind:      domain.KindReversal,
			Amount:    "500",
		},
		Account: domain.Account{
			ID:          accountID,
			Balance:     "5000",
			LastEntryID: 11,
		},
	}

	testCases := []struct {
		name          string
		buildStubs    func(rr *MockRepairRepo, pub *MockPublisher)
		checkResponse func(res domain.RepairResult, err error)
	}{
		{
			name: "OK",
			buildStubs: func(rr *MockRepairRepo, pub *MockPublisher) {
				rr.EXPECT().Repair(gomock.Any(), gomock.Eq(accountID), gomock.Any()).
					Times(1).
					Return(repairResult, nil)
				pub.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(driftevents.BalanceRepaired{})).
					Times(1).
					Return(nil)
			},
			checkResponse: func(res domain.RepairResult, err error) {
				require.NoError(t, err)
				require.Equal(t, repairResult, res)
			},
		},
		{
			name: "NoDrift",
			buildStubs: func(rr *MockRepairRepo, pub *MockPublisher) {
				rr.EXPECT().Repair(gomock.Any(), gomock.Eq(accountID), gomock.Any()).
					Times(1).
					Return(domain.RepairResult{}, domain.ErrNoDrift)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.RepairResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrNoDrift)
			},
		},
		{
			name: "LockTimeout",
			buildStubs: func(rr *MockRepairRepo, pub *MockPublisher) {
				rr.EXPECT().Repair(gomock.Any(), gomock.Eq(accountID), gomock.Any()).
					Times(1).
					Return(domain.RepairResult{}, domain.ErrLockTimeout)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.RepairResult, err error) {
				require.ErrorIs(t, err, domain.ErrLockTimeout)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := NewMockAccountRepo(ctrl)
			recomputer := NewMockRecomputer(ctrl)
			repairRepo := NewMockRepairRepo(ctrl)
			publisher := NewMockPublisher(ctrl)
			service := New(accountRepo, recomputer, repairRepo, publisher)

			tc.buildStubs(repairRepo, publisher)

			tc.checkResponse(service.Repair(context.Background(), accountID))
		})
	}
}
