// Package reconciledelivery manages delivery layer of reconciliations.
package reconciledelivery

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

// Service provides service layer interface needed by reconcile delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package reconciledelivery
type Service interface {
	Reconcile(ctx context.Context, accountID int64) (domain.DriftReport, error)
	ReconcileAll(ctx context.Context) ([]domain.DriftReport, error)
	Repair(ctx context.Context, accountID int64) (domain.RepairResult, error)
}

// Handler facilitates reconcile delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns reconcile handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

type accountURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type dataReport struct {
	Report domain.DriftReport `json:"report"`
}

type responseReport struct {
	Data dataReport `json:"data,omitempty"`
}

// Reconcile handles http request to reconcile one account.
func (h *Handler) Reconcile(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri accountURI
	if !bindURI(gctx, &uri) {
		return
	}

	report, err := h.service.Reconcile(ctx, uri.ID)
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseReport{Data: dataReport{report}})
}

type dataReports struct {
	Reports []domain.DriftReport `json:"reports"`
}

type responseReports struct {
	Data dataReports `json:"data,omitempty"`
}

// ReconcileAll handles http request to sweep all accounts.
func (h *Handler) ReconcileAll(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	reports, err := h.service.ReconcileAll(ctx)
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseReports{Data: dataReports{reports}})
}

type dataRepair struct {
	Repair domain.RepairResult `json:"repair"`
}

type responseRepair struct {
	Data dataRepair `json:"data,omitempty"`
}

// Repair handles http request to repair a drifted account.
func (h *Handler) Repair(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri accountURI
	if !bindURI(gctx, &uri) {
		return
	}

	result, err := h.service.Repair(ctx, uri.ID)
	if err != nil {
		abortWithError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseRepair{Data: dataRepair{result}})
}

func bindURI(gctx *gin.Context, uri any) bool {
	l := zerolog.Ctx(gctx)

	if err := gctx.ShouldBindUri(uri); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return false
	}

	return true
}

func abortWithError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrNoDrift):
		gctx.JSON(http.StatusConflict, web.Error(err))
	case errors.Is(err, domain.ErrLockTimeout):
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
