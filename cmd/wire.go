package cmd

import (
	"github.com/coopgretz/HomeStorage/internal/config"
	"github.com/coopgretz/HomeStorage/internal/handlers"
	"github.com/coopgretz/HomeStorage/internal/middleware"
	"github.com/coopgretz/HomeStorage/internal/services"
	"gorm.io/gorm"
)

type Server struct {
	Configuration   *config.Configuration
	DB              *gorm.DB
	Auth            *middleware.Auth
	BoxHandler      *handlers.BoxHandler
	ItemHandler     *handlers.ItemHandler
	CategoryHandler *handlers.CategoryHandler
	FileHandler     *handlers.FileHandler
	AccountHandler  *handlers.AccountHandler
	StatsHandler    *handlers.StatsHandler
	LogService      services.LogService
	JanitorService  *services.Janitor
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	auth *middleware.Auth,
	boxHandler *handlers.BoxHandler,
	itemHandler *handlers.ItemHandler,
	categoryHandler *handlers.CategoryHandler,
	fileHandler *handlers.FileHandler,
	accountHandler *handlers.AccountHandler,
	statsHandler *handlers.StatsHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		Configuration:   configuration,
		DB:              db,
		Auth:            auth,
		BoxHandler:      boxHandler,
		ItemHandler:     itemHandler,
		CategoryHandler: categoryHandler,
		FileHandler:     fileHandler,
		AccountHandler:  accountHandler,
		StatsHandler:    statsHandler,
		LogService:      logService,
		JanitorService:  janitorService,
	}
}
