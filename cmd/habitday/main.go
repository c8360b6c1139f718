package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/habitday/internal/cli"
	"github.com/at-ishikawa/habitday/internal/client"
	"github.com/at-ishikawa/habitday/internal/config"
	"github.com/at-ishikawa/habitday/internal/logger"
)

var (
	configFile string
	debugMode  bool
	assumeYes  bool
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "habitday",
		Short:         "Track daily habits against a habitday server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(debugMode)
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation prompts")

	rootCommand.AddCommand(
		newTodayCommand(),
		newHabitCommand(),
		newNoteCommand(),
		newDayCommand(),
		newWatchCommand(),
	)
	return rootCommand
}

// setupLogger keeps the terminal quiet unless --debug is set.
func setupLogger(debug bool) error {
	_, err := logger.Setup(logger.Options{
		Config: config.LogConfig{Level: "warn"},
		Debug:  debug,
	})
	return err
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newApp wires the API client and the confirmation gate. The caller closes the client.
func newApp() (*cli.App, *client.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, nil, err
	}

	api := client.New(cfg.Client.BaseURL)
	var confirm cli.Confirmer = cli.PromptConfirmer{}
	if assumeYes {
		confirm = cli.AssumeYes{}
	}
	app := cli.NewApp(api, confirm, loc, cli.WithUpcomingLimit(cfg.Client.UpcomingLimit))
	return app, api, cfg, nil
}

// withApp runs fn with a wired App and closes the client afterwards.
func withApp(fn func(app *cli.App) error) error {
	app, api, _, err := newApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = api.Close()
	}()
	return fn(app)
}

func newTodayCommand() *cobra.Command {
	var showStats bool
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's habits, progress and what is next",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(app *cli.App) error {
				if err := app.Today(cmd.Context()); err != nil {
					return err
				}
				if !showStats {
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout())
				return app.Stats(cmd.Context())
			})
		},
	}
	cmd.Flags().BoolVar(&showStats, "stats", false, "Also show completions by hour and weekday")
	return cmd
}
