package api

import (
	"errors"
	"net/http"

	"token-storefront/internal/domain/payment"
	reqdto "token-storefront/internal/handler/dto/request"
	resdto "token-storefront/internal/handler/dto/response"
	"token-storefront/internal/handler/httperr"
	"token-storefront/internal/handler/middleware"
	"token-storefront/internal/usecase/commands"
	"token-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.TokenQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.TokenQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Initiate token purchase
// @Description Validate a purchase and create a payment at the processor. The buyer is redirected to the returned URL.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.InitiatePaymentRequest true "Purchase"
// @Success 200 {object} resdto.InitiatePaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /payments/initiate [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req reqdto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_request", "Invalid request body", nil)
		return
	}

	result, err := h.cmds.InitiatePayment(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInitiateResult(result))
}

// @Summary Payment credit status
// @Description Report whether the payment with the given reference has been credited to the caller.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param referenceId path string true "Payment reference id"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/payments/{referenceId}/status [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	view, err := h.q.GetPaymentStatus(c.Request.Context(), principal.UserID, c.Param("referenceId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to load payment status", nil)
		return
	}
	res, err := resdto.FromPaymentStatusView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to map payment status", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func abortPaymentError(c *gin.Context, err error) {
	var perr *payment.Error
	if errors.As(err, &perr) {
		status := http.StatusUnprocessableEntity
		if perr.IsAuth() {
			status = http.StatusUnauthorized
		}
		httperr.AbortWithError(c, status, err, string(perr.Code), perr.Message, nil)
		return
	}

	var gerr *payment.GatewayError
	if errors.As(err, &gerr) {
		status := gerr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		httperr.AbortWithError(c, status, err, string(gerr.Code), "", gerr.Details)
		return
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
}
