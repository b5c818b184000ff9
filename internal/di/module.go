package di

import (
	"go.uber.org/fx"

	"github.com/venkateswarareddychalla/eatoes/internal/app"
	"github.com/venkateswarareddychalla/eatoes/internal/config"
	"github.com/venkateswarareddychalla/eatoes/internal/logger"
	"github.com/venkateswarareddychalla/eatoes/internal/server/http/handlers"
	"github.com/venkateswarareddychalla/eatoes/internal/server/http/router"
	"github.com/venkateswarareddychalla/eatoes/internal/storage/postgres"
	"github.com/venkateswarareddychalla/eatoes/internal/usecase"
)

// Module assembles the full application graph. Callers may append
// options to replace individual components, which tests use to swap
// the storage layer for stubs.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.RestaurantFacade) handlers.RestaurantFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
