package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"uhc-registry.io/registry/internal/api/handlers"
	"uhc-registry.io/registry/internal/api/middleware"
	"uhc-registry.io/registry/internal/config"
)

// defaultAllowedOrigins serve local review-frontend development when no
// allowlist is configured.
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), cors.New(buildCORSConfig(cfg)), middleware.ErrorHandler())

	// Probes stay public for the orchestrator.
	server.RegisterHealth(router)

	api := router.Group("/api/v1")
	api.Use(middleware.JWTAuth([]byte(cfg.Security.JWTSecret)))
	api.Use(middleware.MustOpenAPIValidator("/api/v1"))
	server.RegisterRoutes(api)

	return router
}

// buildCORSConfig derives the CORS policy from server config. Wildcard
// origins require the explicit unsafe flag; with it enabled credentials are
// forced off, as the two are mutually exclusive.
func buildCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: cfg.Server.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}

	if cfg.Server.UnsafeAllowAllOrigins {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
		return corsCfg
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}
