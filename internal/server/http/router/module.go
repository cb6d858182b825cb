package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/expense-tracker/internal/config"
	"github.com/polkiloo/expense-tracker/internal/server/http/handlers"
	"github.com/polkiloo/expense-tracker/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	newAuthRateLimiter,
	newRouter,
)

type routerParams struct {
	fx.In

	Facade  handlers.ExpenseTrackerFacade
	Logger  *slog.Logger
	Limiter *middleware.IPRateLimiter
	Config  *config.Config
}

func newAuthRateLimiter(cfg *config.Config) *middleware.IPRateLimiter {
	return middleware.NewIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
}

func newRouter(p routerParams) (*gin.Engine, error) {
	engine := Setup(p.Facade, p.Logger, p.Limiter)
	if err := TrustProxies(engine, p.Config.TrustedProxies); err != nil {
		return nil, err
	}
	return engine, nil
}
