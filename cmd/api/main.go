package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nats-io/nats.go"

	"github.com/samirrijal/fuelcalc/internal/adapters/http"
	natsadapter "github.com/samirrijal/fuelcalc/internal/adapters/nats"
	"github.com/samirrijal/fuelcalc/internal/adapters/valkey"
	"github.com/samirrijal/fuelcalc/internal/core/ports"
	"github.com/samirrijal/fuelcalc/internal/core/usecases"
	"github.com/samirrijal/fuelcalc/internal/pkg/config"
	"github.com/samirrijal/fuelcalc/internal/pkg/logging"
	"github.com/samirrijal/fuelcalc/internal/pkg/telemetry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load("fuelcalc-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Interfaces stay nil unless the adapter connected; a typed nil
	// pointer inside an interface would pass the services' nil checks.
	var (
		cacheSvc  ports.CacheService
		publisher ports.EventPublisher
		cache     *valkey.Cache
		natsConn  *nats.Conn
	)

	// Cache
	if cfg.Valkey.Enabled {
		c, err := valkey.New(cfg.Valkey.Addr)
		if err != nil {
			slog.Warn("valkey unavailable", "error", err)
		} else {
			defer c.Close()
			cache = c
			cacheSvc = c
		}
	}

	// NATS
	if cfg.NATS.Enabled {
		pub, err := natsadapter.NewPublisher(cfg.NATS.URL)
		if err != nil {
			slog.Warn("nats unavailable", "error", err)
		} else {
			defer pub.Close()
			publisher = pub
		}

		// Raw NATS connection for WebSocket relay
		nc, err := natsadapter.RawConn(cfg.NATS.URL)
		if err != nil {
			slog.Warn("nats ws conn unavailable", "error", err)
		} else {
			defer nc.Close()
			natsConn = nc
		}
	}

	// Use cases
	fuelSvc := usecases.NewFuelService(publisher)
	distanceSvc := usecases.NewDistanceService(cacheSvc, publisher, cfg.Valkey.TTLSeconds)

	deps := &http.Dependencies{
		Fuel:        fuelSvc,
		Distance:    distanceSvc,
		NATS:        natsConn,
		Cache:       cache,
		DocsEnabled: cfg.Server.DocsEnabled,
		Version:     version,
	}

	app := newApp(cfg, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr, "version", version)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

// newApp builds the Fiber app. Access logging comes from http.SetupRoutes.
func newApp(cfg *config.Config, deps *http.Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    64 * 1024, // requests are a handful of numbers
		AppName:      "FuelCalculator API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)
	return app
}
