package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dngconv/internal/logging"
	"dngconv/internal/logs"
)

const followInterval = 250 * time.Millisecond

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var (
		lines  int
		follow bool
		runID  string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Display the session log",
		Long: "Print the newest lines of the dngconv session log. Use --run with the run ID\n" +
			"from `dngconv convert --json` to see only the lines of one conversion run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.Paths.LogDir, logging.LogFileName)
			filter := logs.Filter{RunID: strings.TrimSpace(runID)}
			out := cmd.OutOrStdout()

			page, err := logs.Last(path, lines, filter)
			if err != nil {
				return err
			}
			for _, line := range page.Lines {
				fmt.Fprintln(out, line)
			}
			if !follow {
				return nil
			}
			return logs.Follow(cmd.Context(), path, page.Offset, followInterval, filter, func(line string) {
				fmt.Fprintln(out, line)
			})
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "Number of lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new lines until interrupted")
	cmd.Flags().StringVar(&runID, "run", "", "Only show lines from this run ID")
	return cmd
}
