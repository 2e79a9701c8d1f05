package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newExtensionsCommand(ctx *commandContext) *cobra.Command {
	var oneLine bool

	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "List the raw file extensions offered by the file picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if oneLine {
				fmt.Fprintln(out, strings.Join(cfg.Picker.Extensions, " "))
				return nil
			}
			for _, ext := range cfg.Picker.Extensions {
				fmt.Fprintln(out, ext)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&oneLine, "one-line", false, "Print all extensions on one line")
	return cmd
}
