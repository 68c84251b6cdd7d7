// Package router assembles the gin engine from the application modules.
package router

import (
	"context"
	"net/http"
	"time"

	"admin_console/internal/console/transport"
	apphttp "admin_console/internal/http"
	"admin_console/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const healthTimeout = 2 * time.Second

// New builds the HTTP engine: global middleware, the /api group with its
// rate limiter, the health endpoint and every module's routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	// Percent-encoded path segments (emails, identity IDs) are matched raw and
	// decoded into the path parameters.
	engine.UseRawPath = true
	engine.UnescapePathValues = true

	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app.Config)))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(app.Config.GetRateLimitRPS()), app.Config.GetRateLimitBurst(), app.Logger)
	api := engine.Group("/api")
	api.Use(limiter.RateLimit())

	api.GET("/health", healthHandler(app.Health))

	rctx := &apphttp.RouterContext{
		Engine: engine,
		API:    api,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(rctx)
		app.Logger.Debug("registered module routes", "module", module.Name())
	}

	engine.NoRoute(func(c *gin.Context) {
		httpkit.Error(c, http.StatusNotFound, "not found", nil)
	})

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", httpkit.HeaderRequestID, transport.HeaderSession},
		ExposeHeaders:    []string{httpkit.HeaderRequestID, transport.HeaderSession},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.GetCORSOrigins()
	}
	return c
}

func healthHandler(health apphttp.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			if err := health.Ping(ctx); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
