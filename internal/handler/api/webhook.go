package api

import (
	"errors"
	"io"
	"net/http"

	"token-storefront/internal/handler/httperr"
	"token-storefront/internal/pkg/errs"
	"token-storefront/internal/pkg/signature"
	"token-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// MaxWebhookBodyBytes is enforced by middleware.MaxBodyBytes on the route.
const MaxWebhookBodyBytes = 1 << 20

type WebhookHandler struct {
	cmds    commands.WebhookCommands
	headers []string
}

// NewWebhookHandler reads the signature from the first present header in
// headers, in order.
func NewWebhookHandler(cmds commands.WebhookCommands, headers []string) *WebhookHandler {
	if len(headers) == 0 {
		headers = signature.DefaultHeaders
	}
	return &WebhookHandler{cmds: cmds, headers: headers}
}

// @Summary Payment processor callback
// @Description Signed payment status callback. Credits tokens once per reference on COMPLETED.
// @Tags payments
// @Accept json
// @Produce plain
// @Param signature header string false "Hex HMAC-SHA256 of the raw body"
// @Success 200 {string} string "ok"
// @Failure 400 {string} string "invalid_additional_parameters"
// @Failure 401 {string} string "invalid_signature"
// @Failure 413 {string} string "payload_too_large"
// @Failure 500 {string} string "internal_error"
// @Router /payments/webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithText(c, http.StatusRequestEntityTooLarge, err, "payload_too_large")
			return
		}
		httperr.AbortWithText(c, http.StatusBadRequest, err, "invalid_payload")
		return
	}

	sig := signature.HeaderValue(c.Request.Header, h.headers)
	if _, err := h.cmds.HandleCallback(c.Request.Context(), body, sig); err != nil {
		status, text := webhookErrorResponse(err)
		httperr.AbortWithText(c, status, err, text)
		return
	}
	c.String(http.StatusOK, "ok")
}

func webhookErrorResponse(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrInvalidSignature):
		return http.StatusUnauthorized, "invalid_signature"
	case errs.Is(err, errs.ErrInvalidAdditionalParameters):
		return http.StatusBadRequest, "invalid_additional_parameters"
	case errs.Is(err, errs.ErrInvalidPayload):
		return http.StatusBadRequest, "invalid_payload"
	default:
		return http.StatusInternalServerError, httperr.CodeInternal
	}
}
