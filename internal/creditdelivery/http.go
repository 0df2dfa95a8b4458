// Package creditdelivery manages delivery layer of credit scores.
package creditdelivery

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

// Service provides service layer interface needed by credit delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package creditdelivery
type Service interface {
	Score(ctx context.Context, memberID int64) (domain.CreditScore, error)
}

// Handler facilitates credit delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns credit handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

type getRequest struct {
	MemberID int64 `uri:"id" binding:"required,min=1"`
}

type data struct {
	CreditScore domain.CreditScore `json:"credit_score"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Get handles http request to get a member credit score.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
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

		return
	}

	score, err := h.service.Score(ctx, req.MemberID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{score}})
}
