// Package postingdelivery manages delivery layer of ledger postings.
package postingdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/muhindakevin/backend-sub002/internal/domain"
	"github.com/muhindakevin/backend-sub002/pkg/errorspkg"
	"github.com/muhindakevin/backend-sub002/pkg/web"
)

// Service provides service layer interface needed by posting delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package postingdelivery
type Service interface {
	PostContribution(ctx context.Context, arg domain.ContributionParams) (domain.PostingTxResult, error)
	PostFineIssuance(ctx context.Context, arg domain.FineIssuanceParams) (domain.PostingTxResult, error)
	PostFinePayment(ctx context.Context, arg domain.FinePaymentParams) (domain.PostingTxResult, error)
	PostFineWaiver(ctx context.Context, arg domain.FineWaiverParams) (domain.PostingTxResult, error)
	PostLoanDisbursement(ctx context.Context, arg domain.LoanDisbursementParams) (domain.PostingTxResult, error)
	PostLoanPayment(ctx context.Context, arg domain.LoanPaymentParams) (domain.PostingTxResult, error)
	Reverse(ctx context.Context, arg domain.ReversalParams) (domain.PostingTxResult, error)
}

// Handler facilitates posting delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns posting handler.
func NewHandler(ps Service) Handler {
	return Handler{service: ps}
}

type data struct {
	Posting domain.PostingTxResult `json:"posting"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type contributionRequest struct {
	MemberID       int64  `json:"member_id" binding:"required,min=1"`
	GroupID        int64  `json:"group_id" binding:"required,min=1"`
	ContributionID int64  `json:"contribution_id" binding:"required,min=1"`
	Amount         string `json:"amount" binding:"required"`
	OperationKey   string `json:"operation_key" binding:"required"`
}

// CreateContribution handles http request to post a contribution.
func (h *Handler) CreateContribution(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req contributionRequest
	if !bindJSON(gctx, &req) {
		return
	}

	result, err := h.service.PostContribution(ctx, domain.ContributionParams{
		MemberID:       req.MemberID,
		GroupID:        req.GroupID,
		ContributionID: req.ContributionID,
		Amount:         req.Amount,
		OperationKey:   req.OperationKey,
	})
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

type fineIssuanceRequest struct {
	MemberID     int64  `json:"member_id" binding:"required,min=1"`
	FineID       int64  `json:"fine_id" binding:"required,min=1"`
	Amount       string `json:"amount" binding:"required"`
	OperationKey string `json:"operation_key" binding:"required"`
}

// CreateFineIssuance handles http request to post a fine issuance.
func (h *Handler) CreateFineIssuance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req fineIssuanceRequest
	if !bindJSON(gctx, &req) {
		return
	}

	result, err := h.service.PostFineIssuance(ctx, domain.FineIssuanceParams{
		MemberID:     req.MemberID,
		FineID:       req.FineID,
		Amount:       req.Amount,
		OperationKey: req.OperationKey,
	})
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

type finePaymentRequest struct {
	MemberID     int64  `json:"member_id" binding:"required,min=1"`
	GroupID      int64  `json:"group_id" binding:"required,min=1"`
	FineID       int64  `json:"fine_id" binding:"required,min=1"`
	Amount       string `json:"amount" binding:"required"`
	OperationKey string `json:"operation_key" binding:"required"`
}

// CreateFinePayment handles http request to post a fine payment.
func (h *Handler) CreateFinePayment(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req finePaymentRequest
	if !bindJSON(gctx, &req) {
		return
	}

	result, err := h.service.PostFinePayment(ctx, domain.FinePaymentParams{
		MemberID:     req.MemberID,
		GroupID:      req.GroupID,
		FineID:       req.FineID,
		Amount:       req.Amount,
		OperationKey: req.OperationKey,
	})
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

type fineWaiverRequest struct {
	MemberID     int64  `json:"member_id" binding:"required,min=1"`
	FineID       int64  `json:"fine_id" binding:"required,min=1"`
	IssuanceKey  string `json:"issuance_key" binding:"required"`
	OperationKey string `json:"operation_key" binding:"required"`
}

// CreateFineWaiver handles http request to waive an issued fine.
func (h *Handler) CreateFineWaiver(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req fineWaiverRequest
	if !bindJSON(gctx, &req) {
		return
	}

	result, err := h.service.PostFineWaiver(ctx, domain.FineWaiverParams{
		MemberID:     req.MemberID,
		FineID:       req.FineID,
		IssuanceKey:  req.IssuanceKey,
		OperationKey: req.OperationKey,
	})
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

type loanDisbursementRequest struct {
	MemberID     int64  `json:"member_id" binding:"required,min=1"`
	GroupID      int64  `json:"group_id" binding:"required,min=1"`
	LoanID       int64  `json:"loan_id" binding:"required,min=1"`
	Amount       string `json:"amount" binding:"required"`
	OperationKey string `json:"operation_key" binding:"required"`
}

// CreateLoanDisbursement handles http request to post a loan disbursement.
func (h *Handler) CreateLoanDisbursement(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req loanDisbursementRequest
	if !bindJSON(gctx, &req) {
		return
	}

	result, err := h.service.PostLoanDisbursement(ctx, domain.LoanDisbursementParams{
		MemberID:     req.MemberID,
		GroupID:      req.GroupID,
		LoanID:       req.LoanID,
		Amount:       req.Amount,
		OperationKey: req.OperationKey,
	})
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

type loanPaymentRequest struct {
	MemberID     int64  `json:"member_id" binding:"required,min=1"`
	GroupID      int64  `json:"group_id" binding:"required,min=1"`
	LoanID       int64  `json:"loan_id" binding:"required,min=1"`
	Amount       string `json:"amount" binding:"required"`
	OperationKey string `json:"operation_key" binding:"required"`
}

// CreateLoanPayment handles http request to post a loan payment.
func (h *Handler) CreateLoanPayment(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req loanPaymentRequest
	if !bindJSON(gctx, &req) {
		return
	}

	result, err := h.service.PostLoanPayment(ctx, domain.LoanPaymentParams{
		MemberID:     req.MemberID,
		GroupID:      req.GroupID,
		LoanID:       req.LoanID,
		Amount:       req.Amount,
		OperationKey: req.OperationKey,
	})
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

type reversalRequest struct {
	EntryID      int64  `json:"entry_id" binding:"required,min=1"`
	OperationKey string `json:"operation_key" binding:"required"`
}

// CreateReversal handles http request to reverse a committed entry.
func (h *Handler) CreateReversal(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req reversalRequest
	if !bindJSON(gctx, &req) {
		return
	}

	result, err := h.service.Reverse(ctx, domain.ReversalParams{
		EntryID:      req.EntryID,
		OperationKey: req.OperationKey,
	})
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

func bindJSON(gctx *gin.Context, req any) bool {
	l := zerolog.Ctx(gctx)

	if err := gctx.ShouldBindJSON(req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		} else {
			errMsg = err.Error()
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return false
	}

	return true
}

func abortWithError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrMissingOperationKey):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrAlreadyReversed),
		errors.Is(err, domain.ErrLockTimeout):
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
