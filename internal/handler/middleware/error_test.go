//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"token-storefront/internal/handler/httperr"
	"token-storefront/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureDefaultLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestErrorHandler_LogsOnlyServerErrors(t *testing.T) {
	testCases := []struct {
		name       string
		abort      func(c *gin.Context)
		expectLog  bool
		expectBody string
		expectCode int
	}{
		{
			name: "text 401",
			abort: func(c *gin.Context) {
				httperr.AbortWithText(c, http.StatusUnauthorized, errors.New("bad signature"), "invalid_signature")
			},
			expectCode: http.StatusUnauthorized,
			expectBody: "invalid_signature",
		},
		{
			name: "text 400",
			abort: func(c *gin.Context) {
				httperr.AbortWithText(c, http.StatusBadRequest, errors.New("no tokens"), "invalid_additional_parameters")
			},
			expectCode: http.StatusBadRequest,
			expectBody: "invalid_additional_parameters",
		},
		{
			name: "text 500",
			abort: func(c *gin.Context) {
				httperr.AbortWithText(c, http.StatusInternalServerError, errors.New("db down"), "error")
			},
			expectLog:  true,
			expectCode: http.StatusInternalServerError,
			expectBody: "error",
		},
		{
			name: "json 422",
			abort: func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusUnprocessableEntity, errors.New("jpy"), "unsupported_currency", "", nil)
			},
			expectCode: http.StatusUnprocessableEntity,
			expectBody: `{"error":"unsupported_currency"}`,
		},
		{
			name: "json 500",
			abort: func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("boom"), httperr.CodeInternal, "", nil)
			},
			expectLog:  true,
			expectCode: http.StatusInternalServerError,
			expectBody: `{"error":"internal_error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logs := captureDefaultLogger(t)
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(middleware.ErrorHandler())
			r.POST("/hook", tc.abort)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/hook", nil))

			assert.Equal(t, tc.expectCode, w.Code)
			assert.Equal(t, tc.expectBody, w.Body.String())
			if tc.expectLog {
				assert.Contains(t, logs.String(), "level=ERROR")
			} else {
				assert.NotContains(t, logs.String(), "level=ERROR")
			}
		})
	}
}
