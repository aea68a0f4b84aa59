package api

import (
	"errors"
	"net/http"

	reqdto "token-storefront/internal/handler/dto/request"
	resdto "token-storefront/internal/handler/dto/response"
	"token-storefront/internal/handler/httperr"
	"token-storefront/internal/handler/middleware"
	"token-storefront/internal/pkg/errs"
	"token-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errInvalidTokenAmount = errors.New("invalid token amount")

type OrderHandler struct {
	cmds commands.OrderCommands
}

func NewOrderHandler(cmds commands.OrderCommands) *OrderHandler {
	return &OrderHandler{cmds: cmds}
}

// @Summary Create QR order
// @Description Pay for a generated QR code from the caller's token balance
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQROrderRequest true "QR order"
// @Success 201 {object} resdto.CreateQROrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/orders/qr [post]
func (h *OrderHandler) CreateQR(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateQROrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_request", "Invalid request body", nil)
		return
	}
	if req.Tokens <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidTokenAmount, "invalid_tokens", "Invalid token amount.", nil)
		return
	}

	result, err := h.cmds.CreateQROrder(c.Request.Context(), principal.UserID, principal.Email, req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidOrder):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_order", "Invalid order", nil)
		case errs.Is(err, errs.ErrBalanceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "balance_not_found", "No token balance for this user", nil)
		case errs.Is(err, errs.ErrInsufficientTokens):
			httperr.AbortWithError(c, http.StatusConflict, err, "insufficient_tokens", "Insufficient tokens", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Create order failed", nil)
		}
		return
	}

	res, err := resdto.FromCreateOrderResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to map order", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}
