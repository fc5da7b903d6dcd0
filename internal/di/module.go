package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/usersvc/internal/app"
	"github.com/polkiloo/usersvc/internal/config"
	"github.com/polkiloo/usersvc/internal/logger"
	"github.com/polkiloo/usersvc/internal/pkg/auth"
	"github.com/polkiloo/usersvc/internal/server/http/handlers"
	"github.com/polkiloo/usersvc/internal/server/http/router"
	"github.com/polkiloo/usersvc/internal/storage/postgres"
	"github.com/polkiloo/usersvc/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.ServiceFacade) handlers.ServiceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
