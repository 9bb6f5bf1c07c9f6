package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"chirp/config"
	"chirp/content"
	"chirp/database"
	"chirp/feed"
	"chirp/handlers"
	"chirp/routes"
	"chirp/store"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	var dbErr error
	for i := 1; i <= 3; i++ {
		if dbErr = database.ConnectMongo(cfg.MongoURI); dbErr != nil {
			log.WithError(dbErr).Warnf("MongoDB connection attempt %d failed", i)
			time.Sleep(2 * time.Second)
			continue
		}
		break
	}
	if dbErr != nil {
		log.WithError(dbErr).Fatal("failed to connect to MongoDB")
	}
	defer func() {
		if err := database.DisconnectMongo(); err != nil {
			log.WithError(err).Warn("MongoDB disconnect failed")
		}
	}()

	st := store.New(database.Client.Database(cfg.DBName))
	feedSvc := feed.NewService(st, st, feed.Options{
		RecencyWindow:     cfg.RecencyWindow,
		PageSize:          cfg.DefaultPageSize,
		FanoutConcurrency: cfg.FanoutConcurrency,
	})
	contentSvc := content.NewService(st)
	handlers.Init(cfg, feedSvc, contentSvc, st)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      routes.SetupRouter(cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.Info("server stopped")
}
