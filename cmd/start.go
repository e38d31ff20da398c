package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"content-state/core/config"
	"content-state/core/database"
	"content-state/core/events"
	"content-state/core/loader"
	"content-state/core/logger"
	"content-state/core/middleware/auth"
	"content-state/core/middleware/rayid"
	"content-state/core/storage"

	"content-state/feature/contentstate"
	"content-state/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "content-state/docs/swagger"
)

// @title Content State API
// @version 1.0
// @description Per-user content consumption state with monotonic merging of partial updates.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the content state server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Connect to the column store. Content state routes are disabled without it.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Error("Database connection failed, content state routes disabled", zap.Error(err))
		} else {
			db = conn
			logg = logg.With(zap.String("driver", cfg.Database.Driver))
			logg.Info("Connected to consumption database")
		}

		// 4. Event publisher (optional)
		publisher, err := events.New(cfg.Events, logg)
		if err != nil {
			logg.Warn("Event publishing disabled", zap.Error(err))
			publisher = events.Noop{}
		}
		defer publisher.Close()

		// 5. Storage (export bucket checks)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 6. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(contentstate.NewFeature(db, cfg.Consumption, cfg.Auth, publisher, logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Storage.Region, logg, db))

		// RayID must be first to trace everything.
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout()); err != nil {
			logg.Error("Graceful shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
