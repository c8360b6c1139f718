package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/habitday/internal/cli"
	"github.com/at-ishikawa/habitday/internal/report"
)

type FormatFlag report.Format

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	format, err := report.ParseFormat(v)
	if err != nil {
		return err
	}
	*f = FormatFlag(format)
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "format"
}

var (
	_ pflag.Value = (*FormatFlag)(nil)
)

func newDayCommand() *cobra.Command {
	dayCommand := &cobra.Command{
		Use:   "day",
		Short: "Close days and browse closed ones",
	}

	format := FormatFlag(report.FormatText)
	var pdfPath string
	showCommand := &cobra.Command{
		Use:   "show <YYYY-MM-DD>",
		Short: "Show the record of a closed day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(app *cli.App) error {
				return app.ShowDay(cmd.Context(), args[0], report.Format(format), pdfPath)
			})
		},
	}
	showCommand.Flags().Var(&format, "format", "Output format. Options: text, markdown, yaml")
	showCommand.Flags().StringVar(&pdfPath, "pdf", "", "Also write the record to this PDF file")

	dayCommand.AddCommand(
		&cobra.Command{
			Use:   "close",
			Short: "Close today once every habit is done",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(func(app *cli.App) error {
					return app.CloseDay(cmd.Context())
				})
			},
		},
		&cobra.Command{
			Use:   "history",
			Short: "List closed days",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(func(app *cli.App) error {
					return app.History(cmd.Context())
				})
			},
		},
		showCommand,
		&cobra.Command{
			Use:     "rm <id>",
			Aliases: []string{"delete"},
			Short:   "Delete a closed day record",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return withApp(func(app *cli.App) error {
					return app.RemoveDay(cmd.Context(), id)
				})
			},
		},
	)
	return dayCommand
}
