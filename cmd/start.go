package cmd

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"location-directory/core/config"
	"location-directory/core/dedupe"
	"location-directory/core/loader"
	"location-directory/core/logger"
	"location-directory/core/metrics"
	"location-directory/core/middleware/rayid"
	"location-directory/feature/directory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "location-directory/docs/swagger"
)

// @title Location Directory API
// @version 1.0
// @description Maintains the region and city directory of knowledge store locations.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the directory server",
	Long:  `Starts the HTTP server that receives entity change webhooks.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// 3. Knowledge store and engine
		engine, err := newEngine(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create reconciliation engine", zap.Error(err))
		}

		// 4. Audit sink
		recorder, err := newRecorder(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize audit sink", zap.Error(err))
		}

		// 5. Event dedupe (Optional)
		tracker, err := dedupe.Open(ctx, cfg.Redis)
		if err != nil {
			logg.Warn("Optional redis connection failed, event dedupe disabled", zap.Error(err))
			tracker = dedupe.Noop{}
		}
		if closer, ok := tracker.(io.Closer); ok {
			defer closer.Close()
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(directory.NewFeature(engine, tracker, recorder, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

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

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout()); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
