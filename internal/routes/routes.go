package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xyz-asif/mentionlookup/internal/config"
	"github.com/xyz-asif/mentionlookup/internal/features/directory"
	"github.com/xyz-asif/mentionlookup/internal/features/mentions"
	"github.com/xyz-asif/mentionlookup/internal/pkg/logger"
	"github.com/xyz-asif/mentionlookup/internal/pkg/ratelimit"
)

// NewMentionService wires the Jira client, resolver and metrics into the
// pipeline. A nil registerer skips metrics.
func NewMentionService(cfg *config.Config, log *logger.Logger, reg prometheus.Registerer) *mentions.Service {
	client := directory.NewClient(directory.ClientConfig{
		BaseURL:       cfg.JiraBaseURL,
		Email:         cfg.JiraEmail,
		APIToken:      cfg.JiraAPIToken,
		RatePerSecond: cfg.LookupRatePerSecond,
		Burst:         cfg.LookupBurst,
	})

	var metrics *directory.Metrics
	if reg != nil {
		metrics = directory.NewMetrics(reg)
	}

	resolver := directory.NewResolver(client, directory.ResolverConfig{
		Timeout:     cfg.LookupTimeout,
		Concurrency: cfg.LookupConcurrency,
	}, log, metrics)

	return mentions.NewService(resolver, log)
}

// SetupRoutes registers the API under /api/v1. The rate limiter's cleanup
// loop stops when ctx is done.
func SetupRoutes(ctx context.Context, router *gin.Engine, cfg *config.Config, log *logger.Logger, reg prometheus.Registerer) {
	api := router.Group("/api/v1")

	var limiter *ratelimit.RateLimiter
	if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow > 0 {
		limiter = ratelimit.New(cfg.RateLimitRequests, cfg.RateLimitWindow)
		limiter.StartCleanup(ctx, cfg.RateLimitWindow)
	}

	mentions.RegisterRoutes(api, NewMentionService(cfg, log, reg), cfg, limiter)
}
