package creditservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/muhindakevin/backend-sub002/internal/domain"
	"github.com/muhindakevin/backend-sub002/pkg/errorspkg"
)

func TestScore(t *testing.T) {
	memberID := int64(7)

	savingsAccount := func(balance string) domain.Account {
		return domain.Account{ID: 100, OwnerID: memberID, Type: domain.AccountSavings, Balance: balance}
	}
	loanAccount := func(balance string) domain.Account {
		return domain.Account{ID: 200, OwnerID: memberID, Type: domain.AccountLoan, Balance: balance}
	}
	fineAccount := func(balance string) domain.Account {
		return domain.Account{ID: 300, OwnerID: memberID, Type: domain.AccountFine, Balance: balance}
	}

	testCases := []struct {
		name          string
		buildStubs    func(ar *MockAccountRepo, lr *MockLedgerRepo)
		checkResponse func(res domain.CreditScore, err error)
	}{
		{
			name: "NoHistoryScoresBase",
			buildStubs: func(ar *MockAccountRepo, lr *MockLedgerRepo) {
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountSavings)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountLoan)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountFine)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.CreditScore, err error) {
				require.NoError(t, err)
				require.Equal(t, 500, res.Score)
				require.Equal(t, domain.CreditBandFair, res.Band)
			},
		},
		{
			name: "StrongSaver",
			buildStubs: func(ar *MockAccountRepo, lr *MockLedgerRepo) {
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountSavings)).
					Times(1).
					Return(savingsAccount("20000"), nil)
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountLoan)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountFine)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Eq(int64(100)), gomock.Eq(domain.KindContribution)).
					Times(1).
					Return(int64(20), nil)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Eq(int64(100)), gomock.Eq(domain.KindReversal)).
					Times(1).
					Return(int64(0), nil)
			},
			checkResponse: func(res domain.CreditScore, err error) {
				require.NoError(t, err)
				require.Equal(t, 750, res.Score)
				require.Equal(t, domain.CreditBandExcellent, res.Band)
				require.Equal(t, int64(20), res.ContributionCount)
			},
		},
		{
			name: "IndebtedAndFined",
			buildStubs: func(ar *MockAccountRepo, lr *MockLedgerRepo) {
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountSavings)).
					Times(1).
					Return(savingsAccount("1000"), nil)
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountLoan)).
					Times(1).
					Return(loanAccount("5000"), nil)
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountFine)).
					Times(1).
					Return(fineAccount("2000"), nil)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Eq(int64(100)), gomock.Eq(domain.KindContribution)).
					Times(1).
					Return(int64(2), nil)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Eq(int64(100)), gomock.Eq(domain.KindReversal)).
					Times(1).
					Return(int64(0), nil)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Eq(int64(300)), gomock.Eq(domain.KindFineIssuance)).
					Times(1).
					Return(int64(1), nil)
			},
			checkResponse: func(res domain.CreditScore, err error) {
				require.NoError(t, err)
				require.Equal(t, 310, res.Score)
				require.Equal(t, domain.CreditBandPoor, res.Band)
				require.Equal(t, "5000", res.OutstandingLoan)
				require.Equal(t, "2000", res.OutstandingFines)
			},
		},
		{
			name: "ScoreNeverBelowFloor",
			buildStubs: func(ar *MockAccountRepo, lr *MockLedgerRepo) {
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountSavings)).
					Times(1).
					Return(savingsAccount("0"), nil)
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountLoan)).
					Times(1).
					Return(loanAccount("50000"), nil)
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountFine)).
					Times(1).
					Return(fineAccount("10000"), nil)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Eq(int64(100)), gomock.Eq(domain.KindContribution)).
					Times(1).
					Return(int64(0), nil)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Eq(int64(100)), gomock.Eq(domain.KindReversal)).
					Times(1).
					Return(int64(10), nil)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Eq(int64(300)), gomock.Eq(domain.KindFineIssuance)).
					Times(1).
					Return(int64(5), nil)
			},
			checkResponse: func(res domain.CreditScore, err error) {
				require.NoError(t, err)
				require.Equal(t, 300, res.Score)
				require.Equal(t, domain.CreditBandPoor, res.Band)
			},
		},
		{
			name: "AccountRepoError",
			buildStubs: func(ar *MockAccountRepo, lr *MockLedgerRepo) {
				ar.EXPECT().GetByOwner(gomock.Any(), gomock.Eq(memberID), gomock.Eq(domain.AccountSavings)).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
				lr.EXPECT().CountForAccountKind(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.CreditScore, err error) {
				require.Empty(t, res)
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
			ledgerRepo := NewMockLedgerRepo(ctrl)
			service := New(accountRepo, ledgerRepo)

			tc.buildStubs(accountRepo, ledgerRepo)

			tc.checkResponse(service.Score(context.Background(), memberID))
		})
	}
}
