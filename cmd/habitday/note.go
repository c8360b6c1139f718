package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/habitday/internal/cli"
)

func newNoteCommand() *cobra.Command {
	noteCommand := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}
	noteCommand.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List notes, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(func(app *cli.App) error {
					return app.ListNotes(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "add <content>...",
			Short: "Add a note",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(func(app *cli.App) error {
					return app.AddNote(cmd.Context(), strings.Join(args, " "))
				})
			},
		},
		&cobra.Command{
			Use:   "edit <id> <content>...",
			Short: "Replace a note's content",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return withApp(func(app *cli.App) error {
					return app.EditNote(cmd.Context(), id, strings.Join(args[1:], " "))
				})
			},
		},
		&cobra.Command{
			Use:     "rm <id>",
			Aliases: []string{"delete"},
			Short:   "Delete a note",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return withApp(func(app *cli.App) error {
					return app.RemoveNote(cmd.Context(), id)
				})
			},
		},
	)
	return noteCommand
}
