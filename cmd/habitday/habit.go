package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/habitday/internal/cli"
	"github.com/at-ishikawa/habitday/internal/client"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

func newHabitCommand() *cobra.Command {
	habitCommand := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	habitCommand.AddCommand(
		newHabitAddCommand(),
		newHabitEditCommand(),
		newHabitRemoveCommand(),
		newHabitDoneCommand(),
		newHabitResetCommand(),
	)
	return habitCommand
}

func newHabitAddCommand() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add <title> <HH:MM>",
		Short: "Add a daily habit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(app *cli.App) error {
				return app.AddHabit(cmd.Context(), client.HabitRequest{
					Title:       args[0],
					Description: description,
					Time:        args[1],
				})
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Habit description")
	return cmd
}

func newHabitEditCommand() *cobra.Command {
	var title, description, at string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a habit's title, description or time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var req client.HabitUpdate
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("time") {
				req.Time = &at
			}
			if req == (client.HabitUpdate{}) {
				return fmt.Errorf("nothing to change: set --title, --description or --time")
			}

			return withApp(func(app *cli.App) error {
				return app.EditHabit(cmd.Context(), id, req)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&title, "title", "", "New title")
	flags.StringVarP(&description, "description", "d", "", "New description")
	flags.StringVar(&at, "time", "", "New time as HH:MM")
	return cmd
}

func newHabitRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a habit and its history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApp(func(app *cli.App) error {
				return app.RemoveHabit(cmd.Context(), id)
			})
		},
	}
}

func newHabitDoneCommand() *cobra.Command {
	var undo, toggle bool
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a habit as done today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var completed *bool
			if !toggle {
				value := !undo
				completed = &value
			}
			return withApp(func(app *cli.App) error {
				return app.MarkHabit(cmd.Context(), id, completed)
			})
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&undo, "undo", false, "Mark the habit as not done")
	flags.BoolVar(&toggle, "toggle", false, "Flip the stored state")
	cmd.MarkFlagsMutuallyExclusive("undo", "toggle")
	return cmd
}

func newHabitResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Mark every habit as not done today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(app *cli.App) error {
				return app.ResetHabits(cmd.Context())
			})
		},
	}
}
