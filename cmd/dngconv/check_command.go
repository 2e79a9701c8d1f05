package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dngconv/internal/preflight"
)

var errCheckFailed = errors.New("readiness check failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that dnglab can be launched",
		Long: `Check resolves the dnglab binary for this platform, asks it for its
version, and reports the result. With --output it also checks that the folder
exists and is writable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			locator, err := ctx.locator()
			if err != nil {
				return err
			}
			if dir := strings.TrimSpace(outputDir); dir != "" {
				if outputDir, err = filepath.Abs(dir); err != nil {
					return fmt.Errorf("resolve output folder: %w", err)
				}
			}
			results := preflight.RunAll(cmd.Context(), locator, outputDir)

			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				status := newStatusWriter(cmd.OutOrStdout())
				status.header("dngconv readiness")
				status.results(results)
				if command, err := locator.Resolve(); err == nil {
					status.line("Command", statusInfo, command)
				}
			}

			if !preflight.AllPassed(results) {
				return errCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Also check this output folder")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	return cmd
}
