package creditdelivery

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

func TestGet(t *testing.T) {
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	score := domain.CreditScore{
		MemberID:          7,
		Score:             680,
		Band:              domain.CreditBandGood,
		SavingsBalance:    "12000",
		OutstandingLoan:   "0",
		OutstandingFines:  "0",
		ContributionCount: 12,
		ComputedAt:        time.Now().Truncate(time.Second).UTC(),
	}

	testCases := []struct {
		name           string
		memberID       int64
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:     "OK",
			memberID: score.MemberID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, "treasurer", duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Score(gomock.Any(), gomock.Eq(score.MemberID)).
					Times(1).
					Return(score, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					CreditScore domain.CreditScore `json:"credit_score"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				compareComputedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(score, got.CreditScore, compareComputedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:     "NoAuthorization",
			memberID: score.MemberID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Score(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:     "InvalidID",
			memberID: -1,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, "treasurer", duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Score(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "MemberID field must be greater or equal to 1",
		},
		{
			name:     "InternalServerError",
			memberID: score.MemberID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, "treasurer", duration)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Score(gomock.Any(), gomock.Eq(score.MemberID)).
					Times(1).
					Return(domain.CreditScore{}, errorspkg.ErrInternal)
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
			server.GET("/members/:id/credit-score", handler.Get)

			tc.buildStubs(service)

			url := fmt.Sprintf("/members/%d/credit-score", tc.memberID)

			req, err := http.NewRequest(http.MethodGet, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					CreditScore domain.CreditScore `json:"credit_score"`
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
