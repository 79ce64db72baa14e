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

	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/container"
	"github.com/saulo-duarte/planner-miniapp/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	configPath := flag.String("config", envOr("CONFIG_PATH", "config.yaml"), "path to the YAML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	c, err := container.New(settings)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + settings.Server.Port,
		Handler:           router.New(c.RouterConfig()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.WithField("port", settings.Server.Port).Info("Mini App server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
	config.Logger.Info("Mini App server stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
