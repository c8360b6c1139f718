package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/habitday/internal/tui"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep today's view on screen with a rotating list of upcoming habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, api, cfg, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = api.Close()
			}()
			return tui.Run(cmd.Context(), app.Load, cfg.Client.RefreshInterval, cfg.Client.CarouselInterval)
		},
	}
}
