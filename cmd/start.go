package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"country-catalog/core/loader"
	"country-catalog/core/logger"
	"country-catalog/core/middleware/auth"
	"country-catalog/core/middleware/rayid"
	"country-catalog/core/scheduler"
	"country-catalog/feature/countries/reconcile"
	"country-catalog/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "country-catalog/docs/swagger"
)

// @title Country Catalog API
// @version 1.0
// @description Country catalog with exchange rates, estimated GDP and a summary image.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the country catalog server",
	Long:  `Starts the HTTP server, migrates the schema and runs the refresh scheduler when enabled.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 1. Configuration, logger, database and summary sink
		a, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Schema and bucket
		if err := a.prepare(ctx); err != nil {
			logg.Fatal("Failed to prepare catalog", zap.Error(err))
		}
		logg.Info("Connected to catalog database", zap.String("driver", a.cfg.Database.Driver))

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           time.Duration(a.cfg.Server.ReadTimeoutSeconds) * time.Second,
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()

		countriesFeature := a.countries()
		mgr.Register(countriesFeature)
		mgr.Register(integrity.NewFeature(a.client, a.cfg.Storage, a.sink, logg, a.db))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (no-op when no API key is configured)
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))
		if !a.cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, requests are not authenticated")
		}

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Scheduler
		sched := scheduler.New(a.cfg.Scheduler, logg)
		svc := countriesFeature.Service()
		err = sched.Start(ctx, "refresh", func(ctx context.Context) error {
			_, err := svc.Refresh(ctx, reconcile.Options{})
			return err
		})
		switch {
		case errors.Is(err, scheduler.ErrDisabled):
			logg.Info("Scheduled refresh disabled")
		case err != nil:
			logg.Fatal("Failed to start scheduler", zap.Error(err))
		default:
			defer sched.Stop()
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", a.cfg.Server.Address()))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
