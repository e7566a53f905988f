//go:build wireinject
// +build wireinject

package main

import (
	"Meadow/bot"
	"Meadow/config"
	"Meadow/dao"
	"Meadow/handler"
	"Meadow/pkg/client"
	"Meadow/pkg/database"
	"Meadow/pkg/server"
	"Meadow/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,

		dao.ProviderSet,
		service.ProviderSet,

		bot.NewAPI,
		bot.NewHandler,

		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Support), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Profile), "*"),
		wire.Struct(new(handler.Webhook), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
