package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"token-storefront/internal/handler/httperr"
	"token-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey = "principal"
	ctxClaimsKey    = "jwt_claims"
)

var (
	errMissingToken = errors.New("access token required")
	errNoPrincipal  = errors.New("no authenticated principal in context")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts a storefront session token in the Authorization header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "unauthorized", "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "unauthorized", "Invalid or expired token", nil)
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// SetPrincipal stores the caller identity; also used by handler tests.
func SetPrincipal(c *gin.Context, p usecase.Principal) {
	c.Set(ctxPrincipalKey, p)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": p.UserID,
	})
}

func GetPrincipal(c *gin.Context) (usecase.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return usecase.Principal{}, false
	}
	p, ok := v.(usecase.Principal)
	return p, ok && p.UserID != ""
}

// MustPrincipal aborts with 401 when the route was wired without RequireAuth.
func MustPrincipal(c *gin.Context) (usecase.Principal, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "unauthorized", "Unauthorized", nil)
	}
	return p, ok
}
