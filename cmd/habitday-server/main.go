package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/habitday/internal/bootstrap"
	"github.com/at-ishikawa/habitday/internal/config"
	"github.com/at-ishikawa/habitday/internal/database"
	"github.com/at-ishikawa/habitday/internal/daycompletion"
	"github.com/at-ishikawa/habitday/internal/habit"
	"github.com/at-ishikawa/habitday/internal/logger"
	"github.com/at-ishikawa/habitday/internal/note"
	"github.com/at-ishikawa/habitday/internal/server"
	"github.com/at-ishikawa/habitday/internal/tracker"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "habitday-server",
		Short:         "Habit tracker HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	logCloser, err := logger.Setup(logger.Options{Config: cfg.Log, Debug: debugMode, Prefix: "habitday-server"})
	if err != nil {
		return fmt.Errorf("logger.Setup() > %w", err)
	}
	defer func() {
		_ = logCloser.Close()
	}()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook(func(context.Context) error {
		return db.Close()
	})

	if err := database.WaitReady(ctx, db, cfg.Database.ReadyAttempts); err != nil {
		_ = db.Close()
		return fmt.Errorf("database.WaitReady() > %w", err)
	}
	if err := database.ApplySchema(ctx, db, cfg.Database.Driver); err != nil {
		_ = db.Close()
		return fmt.Errorf("database.ApplySchema() > %w", err)
	}

	habitRepo := habit.NewDBHabitRepository(db)
	service := tracker.NewService(
		habitRepo,
		habitRepo,
		note.NewDBNoteRepository(db),
		daycompletion.NewDBDayCompletionRepository(db),
		loc,
	)

	if !debugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := server.NewRouter(service, db, server.Options{
		AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
		Debug:          debugMode,
	})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("server.NewRouter() > %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("starting server",
			"addr", srv.Addr,
			"driver", cfg.Database.Driver,
			"timezone", loc.String(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
