package reconciledelivery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/muhindakevin/backend-sub002/internal/domain"
	"github.com/muhindakevin/backend-sub002/internal/middleware"
	"github.com/muhindakevin/backend-sub002/pkg/errorspkg"
	"github.com/muhindakevin/backend-sub002/pkg/randompkg"
	"github.com/muhindakevin/backend-sub002/pkg/tokenpkg"
	"github.com/muhindakevin/backend-sub002/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTokenMaker(t *testing.T) tokenpkg.Maker {
	t.Helper()

	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	return tokenMaker
}

func TestReconcile(t *testing.T) {
	tokenMaker := newTokenMaker(t)
	authType := middleware.AuthTypeBearer
	duration := time.Minute

	report := domain.DriftReport{
		AccountID:   1,
		OwnerID:     7,
		Type:        domain.AccountSavings,
		Cached:      "5000",
		Recomputed:  "4500",
		Drift:       "500",
		LastEntryID: 10,
		CheckedAt:   time.Now().Truncate(time.Second).UTC(),
	}

	testCases := []struct {
		name           string
		accountID      int64
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:      "OK",
			accountID: report.AccountID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Reconcile(gomock.Any(), gomock.Eq(report.AccountID)).
					Times(1).
					Return(report, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Report domain.DriftReport `json:"report"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareCheckedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(report, got.Report, compareCheckedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:      "InvalidID",
			accountID: -1,
			buildStubs: func(service *MockService) {
				service.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID field must be greater or equal to 1",
		},
		{
			name:      "ErrAccountNotFound",
			accountID: report.AccountID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Reconcile(gomock.Any(), gomock.Eq(report.AccountID)).
					Times(1).
					Return(domain.DriftReport{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:      "InternalServerError",
			accountID: report.AccountID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Reconcile(gomock.Any(), gomock.Eq(report.AccountID)).
					Times(1).
					Return(domain.DriftReport{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/accounts/:id/reconciliations", handler.Reconcile)

			tc.buildStubs(service)

			url := fmt.Sprintf("/accounts/%d/reconciliations", tc.accountID)

			req, err := http.NewRequest(http.MethodPost, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = middleware.AddAuthorization(req, tokenMaker, authType, "auditor", duration); err != nil {
				t.Fatalf("middleware.AddAuthorization(...) returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Report domain.DriftReport `json:"report"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestRepair(t *testing.T) {
	tokenMaker := newTokenMaker(t)
	authType := middleware.AuthTypeBearer
	duration := time.Minute
	accountID := int64(1)

	result := domain.RepairResult{
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
		name           string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Repair(gomock.Any(), gomock.Eq(accountID)).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ErrNoDrift",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Repair(gomock.Any(), gomock.Eq(accountID)).
					Times(1).
					Return(domain.RepairResult{}, domain.ErrNoDrift)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrNoDrift.Error(),
		},
		{
			name: "ErrLockTimeout",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Repair(gomock.Any(), gomock.Eq(accountID)).
					Times(1).
					Return(domain.RepairResult{}, domain.ErrLockTimeout)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrLockTimeout.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.POST("/accounts/:id/repairs", handler.Repair)

			tc.buildStubs(service)

			url := fmt.Sprintf("/accounts/%d/repairs", accountID)

			req, err := http.NewRequest(http.MethodPost, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = middleware.AddAuthorization(req, tokenMaker, authType, "auditor", duration); err != nil {
				t.Fatalf("middleware.AddAuthorization(...) returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode != http.StatusOK {
				res := web.Response{}
				if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
					t.Errorf("Decoding response body error: %v", err)
				}

				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}
			}
		})
	}
}
