//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"token-storefront/internal/handler/middleware"
	"token-storefront/internal/pkg/jwt"
	"token-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	r.GET("/api/me", auth.RequireAuth(), func(c *gin.Context) {
		p, ok := middleware.MustPrincipal(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": p.UserID, "email": p.Email})
	})
	r.GET("/open", func(c *gin.Context) {
		if _, ok := middleware.MustPrincipal(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("auth-test-secret", time.Hour)
	router := newAuthRouter(svc)

	valid, err := svc.GenerateToken("u1", "buyer@example.com")
	require.NoError(t, err)
	foreign, err := jwt.NewService("other-secret", time.Hour).GenerateToken("u1", "buyer@example.com")
	require.NoError(t, err)

	testCases := []struct {
		name       string
		header     string
		expectCode int
		expectBody string
	}{
		{name: "valid bearer token", header: "Bearer " + valid, expectCode: http.StatusOK, expectBody: `{"userId":"u1","email":"buyer@example.com"}`},
		{name: "missing header", header: "", expectCode: http.StatusUnauthorized, expectBody: `{"error":"unauthorized","message":"Access token required"}`},
		{name: "wrong scheme", header: "Basic " + valid, expectCode: http.StatusUnauthorized, expectBody: `{"error":"unauthorized","message":"Access token required"}`},
		{name: "foreign signature", header: "Bearer " + foreign, expectCode: http.StatusUnauthorized, expectBody: `{"error":"unauthorized","message":"Invalid or expired token"}`},
		{name: "garbage", header: "Bearer not-a-jwt", expectCode: http.StatusUnauthorized, expectBody: `{"error":"unauthorized","message":"Invalid or expired token"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectCode, w.Code)
			assert.JSONEq(t, tc.expectBody, w.Body.String())
		})
	}
}

func TestMustPrincipal_WithoutAuthMiddleware(t *testing.T) {
	router := newAuthRouter(jwt.NewService("auth-test-secret", time.Hour))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMaxBodyBytes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", middleware.MaxBodyBytes(8), func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("0123456789abcdef")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("0123")))
	assert.Equal(t, http.StatusOK, w.Code)
}
