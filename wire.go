//go:build wireinject
// +build wireinject

package main

import (
	"github.com/coopgretz/HomeStorage/cmd"
	"github.com/coopgretz/HomeStorage/database"
	"github.com/coopgretz/HomeStorage/internal/config"
	"github.com/coopgretz/HomeStorage/internal/handlers"
	"github.com/coopgretz/HomeStorage/internal/identity"
	"github.com/coopgretz/HomeStorage/internal/middleware"
	"github.com/coopgretz/HomeStorage/internal/repository"
	"github.com/coopgretz/HomeStorage/internal/services"
	"github.com/coopgretz/HomeStorage/internal/storage"
	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		config.ProvideConfiguration,
		database.SetupDatabase,
		storage.NewObjectStore,
		identity.NewGateway,
		middleware.NewAuth,
		repository.NewBoxRepository,
		repository.NewItemRepository,
		repository.NewCategoryRepository,
		services.NewLogService,
		services.NewFileService,
		services.NewBoxService,
		services.NewQRService,
		services.NewItemService,
		services.NewCategoryService,
		services.NewStatsService,
		services.NewAccountService,
		services.NewJanitorService,
		handlers.NewBoxHandler,
		handlers.NewItemHandler,
		handlers.NewCategoryHandler,
		handlers.NewFileHandler,
		handlers.NewAccountHandler,
		handlers.NewStatsHandler,
	)
	return nil, nil
}
