package main

import (
	"github.com/spf13/cobra"

	"dngconv/internal/logging"
	"dngconv/internal/tui"
)

func newTUICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Pick files and convert them interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, ctx)
		},
	}
}

func runTUI(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger(false)
	if err != nil {
		return err
	}
	manager, err := ctx.manager(logger)
	if err != nil {
		return err
	}
	logger.Info("interactive session started", logging.String("config", ctx.configPath))
	return tui.Run(cmd.Context(), manager, tui.Settings{
		StartDir:   cfg.PickerStartDir(),
		Extensions: cfg.Picker.Extensions,
		ShowHidden: cfg.Picker.ShowHidden,
		Options:    cfg.ConversionOptions(),
	})
}
