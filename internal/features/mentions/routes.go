package mentions

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/mentionlookup/internal/config"
	"github.com/xyz-asif/mentionlookup/internal/middleware"
	"github.com/xyz-asif/mentionlookup/internal/pkg/ratelimit"
)

// RegisterRoutes registers the mention panel routes
func RegisterRoutes(router *gin.RouterGroup, service *Service, cfg *config.Config, limiter *ratelimit.RateLimiter) {
	handler := NewHandler(service)

	mentions := router.Group("/mentions")
	mentions.Use(middleware.HostAuth(cfg.HostJWTSecret))
	if limiter != nil {
		mentions.Use(ratelimit.Middleware(limiter, middleware.InstallationKey))
	}
	{
		mentions.POST("/extract", handler.Extract)
		mentions.POST("/resolve", handler.Resolve)
		mentions.POST("/export", handler.Export)
	}
}
