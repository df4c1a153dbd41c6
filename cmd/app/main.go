package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"
	"logistics/internal/adapters/out/geocoding"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/rediscache"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.GetConfigs()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := cmd.NewLogger(configs.LogLevel)

	gormDB, err := postgres.Open(configs.Database())
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	if configs.DBAutoMigrate {
		if err := postgres.AutoMigrate(gormDB); err != nil {
			log.Fatalf("migrate database: %v", err)
		}
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	cache, err := rediscache.Connect(connectCtx, configs.Redis())
	cancel()
	if err != nil {
		log.Fatalf("connect to cache: %v", err)
	}
	defer cache.Close()

	geocoder, err := geocoding.NewClient(configs.Geocoder(), logger)
	if err != nil {
		log.Fatalf("geocoder: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		cache,
		geocoder,
		logger,
	)
	startWebServer(app, configs.HTTPPort, logger)
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	if err := app.CreateHTTPServer().Register(e); err != nil {
		e.Logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
