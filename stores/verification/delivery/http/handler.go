package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/base/delivery"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/verification"
	"github.com/holdergate/goapi/middleware"
)

type handler struct {
	verification verification.Usecase
}

func New(e *echo.Echo, _verification verification.Usecase) {
	h := &handler{_verification}
	g := e.Group("/verification", middleware.IsValidAddress("address"))
	g.GET("/:address", h.verify)
	g.GET("/:address/access", h.getAccessLevel)
}

func (h *handler) verify(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	wallet := domain.Address(_ctx.Param("address"))

	res, err := h.verification.Verify(ctx, wallet)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getAccessLevel(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	wallet := domain.Address(_ctx.Param("address"))

	level, err := h.verification.GetAccessLevel(ctx, wallet)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, map[string]verification.AccessLevel{
		"accessLevel": level,
	})
}
