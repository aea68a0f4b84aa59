package middleware

import (
	"log/slog"
	"slices"

	"token-storefront/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy for the storefront frontend. A "*"
// origin allows every origin but then drops credentials, which browsers reject
// together with a wildcard.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			logger.Warn("CORS wildcard origin configured, disabling credentials")
			corsCfg.AllowCredentials = false
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	logger.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
