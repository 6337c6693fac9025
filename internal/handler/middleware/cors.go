package middleware

import (
	"log/slog"
	"slices"

	"library-service/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS handler from CORS_*. A "*" origin opens
// the API to any site and switches credentials off, since browsers refuse
// that combination. An empty origin list rejects every cross-site request.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	switch {
	case slices.Contains(cfg.AllowOrigins, "*"):
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	case len(cfg.AllowOrigins) == 0:
		corsCfg.AllowOriginFunc = func(string) bool { return false }
	default:
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Debug("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all", corsCfg.AllowAllOrigins,
		"credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
