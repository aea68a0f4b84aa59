//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"token-storefront/internal/handler/middleware"
	"token-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func preflight(t *testing.T, cfg config.CORSConfig, origin string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg, discardLogger()))
	r.GET("/api/tokens/balance", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/tokens/balance", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewCORSMiddleware(t *testing.T) {
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	t.Run("listed origin gets credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"https://shop.example.com"}

		w := preflight(t, cfg, "https://shop.example.com")

		assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"https://shop.example.com"}

		w := preflight(t, cfg, "https://evil.example.com")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*"}

		w := preflight(t, cfg, "https://anywhere.example.com")

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}
