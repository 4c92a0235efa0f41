//go:build wireinject
// +build wireinject

package main

import (
	"Conbini/config"
	"Conbini/dao"
	"Conbini/dao/cache"
	"Conbini/handler"
	"Conbini/pkg/client"
	"Conbini/pkg/database"
	"Conbini/pkg/server"
	"Conbini/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideLookupConfig,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Rating), "*"),
		wire.Struct(new(handler.Verification), "*"),
		wire.Struct(new(handler.Wallet), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
