package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "token-storefront/internal/handler/dto/response"
	"token-storefront/internal/handler/httperr"
	"token-storefront/internal/handler/middleware"
	"token-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	q queries.TokenQueries
}

func NewTokenHandler(q queries.TokenQueries) *TokenHandler {
	return &TokenHandler{q: q}
}

// @Summary Token balance
// @Description Current token balance of the caller; zero before the first purchase
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} httperr.Response
// @Router /api/tokens/balance [get]
func (h *TokenHandler) Balance(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	view, err := h.q.GetBalance(c.Request.Context(), principal.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to load balance", nil)
		return
	}
	res, err := resdto.FromBalanceView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to map balance", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Token transactions
// @Description Ledger entries of the caller, newest first, with keyset pagination
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (1-100, default 20)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.TransactionListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/tokens/transactions [get]
func (h *TokenHandler) Transactions(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_limit", queries.ErrInvalidLimit.Error(), nil)
			return
		}
		limit = iv
		if limit == 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, queries.ErrInvalidLimit, "invalid_limit", queries.ErrInvalidLimit.Error(), nil)
			return
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListTransactions(c.Request.Context(), principal.UserID, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidLimit):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_limit", err.Error(), nil)
		case errors.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_cursor", err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to list transactions", nil)
		}
		return
	}

	res, err := resdto.FromTransactionList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to map transactions", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
