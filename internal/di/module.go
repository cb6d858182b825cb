package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/expense-tracker/internal/app"
	"github.com/polkiloo/expense-tracker/internal/config"
	"github.com/polkiloo/expense-tracker/internal/logger"
	"github.com/polkiloo/expense-tracker/internal/pkg/auth"
	"github.com/polkiloo/expense-tracker/internal/server/http/handlers"
	"github.com/polkiloo/expense-tracker/internal/server/http/router"
	"github.com/polkiloo/expense-tracker/internal/storage/postgres"
	"github.com/polkiloo/expense-tracker/internal/usecase"
)

// Module assembles the server graph. Extra options are appended last so
// callers can fx.Replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.ExpenseFacade) handlers.ExpenseTrackerFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
