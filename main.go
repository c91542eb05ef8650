package main

import (
	"fmt"
	"github.com/coopgretz/HomeStorage/database"
	"github.com/coopgretz/HomeStorage/internal/server"
	"github.com/sirupsen/logrus"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	srv, err := InitializeServer()
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	defer database.CloseDatabase(srv.DB)

	cfg := srv.Configuration
	if cfg.Server.CleanConfig.Enabled {
		if err := srv.JanitorService.StartCleanCycle(); err != nil {
			log.Fatalf("Failed to start janitor: %v", err)
		}
		defer srv.JanitorService.StopClean()
	}

	app := server.NewApp(srv)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		srv.LogService.Log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			srv.LogService.Log.WithField("error", err.Error()).Error("Failed to shut down server")
		}
	}()

	srv.LogService.Log.WithFields(logrus.Fields{
		"port":    cfg.Server.Port,
		"storage": cfg.Storage.Backend,
	}).Info("starting HomeStorage")
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		srv.LogService.Log.WithField("error", err.Error()).Error("Failed to start server")
	}
}
