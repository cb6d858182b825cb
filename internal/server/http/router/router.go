package router

import (
	"fmt"
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/expense-tracker/internal/server/http/handlers"
	"github.com/polkiloo/expense-tracker/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. The limiter
// guards the unauthenticated /user routes. No proxy is trusted, so client
// IPs come from the peer address; see TrustProxies.
func Setup(facade handlers.ExpenseTrackerFacade, logger *slog.Logger, limiter *middleware.IPRateLimiter) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	_ = engine.SetTrustedProxies(nil)

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	expenseHandler := handlers.NewExpenseHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	user := engine.Group("/user")
	user.Use(middleware.RateLimit(limiter))
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	expenses := engine.Group("/expenses")
	expenses.Use(middleware.AuthRequired(facade))
	expenses.POST("/", expenseHandler.Create)
	expenses.GET("/", expenseHandler.List)
	expenses.GET("/stats", expenseHandler.Stats)
	expenses.GET("/:id", expenseHandler.Get)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	return engine
}

// TrustProxies lets the listed proxies set the client IP through
// X-Forwarded-For. An empty list keeps trusting nobody.
func TrustProxies(engine *gin.Engine, proxies []string) error {
	if len(proxies) == 0 {
		return engine.SetTrustedProxies(nil)
	}
	if err := engine.SetTrustedProxies(proxies); err != nil {
		return fmt.Errorf("router: trusted proxies: %w", err)
	}
	return nil
}
