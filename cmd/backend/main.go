package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/saulo-duarte/planner-miniapp/internal/backend"
	"github.com/saulo-duarte/planner-miniapp/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	config.InitLogger(settings.Log.Level, settings.Log.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := backend.Connect(ctx, settings.Backend)
	cancel()
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to connect to database")
	}

	srv := &http.Server{
		Addr:              ":" + settings.Backend.Port,
		Handler:           backend.Routes(backend.NewContainer(db)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.WithField("port", settings.Backend.Port).Info("REST backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	config.Logger.Info("REST backend stopped")
}
