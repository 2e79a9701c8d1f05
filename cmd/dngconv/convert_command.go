package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dngconv/internal/preflight"
	"dngconv/internal/services/dnglab"
	"dngconv/internal/workflow"
)

// errRunIncomplete marks a run where at least one file did not convert.
var errRunIncomplete = errors.New("conversion incomplete")

type convertFlags struct {
	output      string
	compression string
	crop        string
	embedRaw    bool
	override    bool
	recursive   bool
	jsonOutput  bool
	verbose     bool
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert -o DIR FILE...",
		Short: "Convert raw files to DNG without the interactive interface",
		Long: `Convert runs dnglab once per FILE, in the order given, writing into the
output folder. A failure on one file never stops the files after it. The exit
status is non-zero when any file failed or dnglab could not be found.

Options default to the [defaults] section of the configuration file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output folder for DNG files")
	cmd.Flags().StringVar(&flags.compression, "compression", "", "Compression mode ("+dnglab.JoinModes(dnglab.CompressionModes())+")")
	cmd.Flags().StringVar(&flags.crop, "crop", "", "Crop mode ("+dnglab.JoinModes(dnglab.CropModes())+")")
	cmd.Flags().BoolVar(&flags.embedRaw, "embed-raw", true, "Embed the original raw file in the DNG")
	cmd.Flags().BoolVar(&flags.override, "override", false, "Overwrite existing DNG files")
	cmd.Flags().BoolVar(&flags.recursive, "recursive", false, "Descend into directories given as FILE")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Print the run report as JSON")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Also write log lines to stderr")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runConvert(cmd *cobra.Command, ctx *commandContext, flags convertFlags, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	opts, err := resolveOptions(cmd, cfg.ConversionOptions(), flags)
	if err != nil {
		return err
	}

	outputDir, err := filepath.Abs(strings.TrimSpace(flags.output))
	if err != nil {
		return fmt.Errorf("resolve output folder: %w", err)
	}
	if check := preflight.CheckDirectoryAccess("Output directory", outputDir); !check.Passed {
		return fmt.Errorf("output folder unusable: %s", check.Detail)
	}
	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", arg, err)
		}
		inputs = append(inputs, abs)
	}

	logger, err := ctx.logger(flags.verbose)
	if err != nil {
		return err
	}
	manager, err := ctx.manager(logger)
	if err != nil {
		return err
	}
	manager.SelectInputs(inputs)
	manager.SelectOutput(outputDir)

	report, err := manager.Convert(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if flags.jsonOutput {
		if err := writeJSON(cmd, newReportJSON(report)); err != nil {
			return err
		}
	} else {
		renderReport(cmd, report)
	}

	if report.Skipped {
		fmt.Fprintln(cmd.ErrOrStderr(), report.Availability.Notice())
	}
	if !report.OK() {
		return fmt.Errorf("%w: %s", errRunIncomplete, report.Summary())
	}
	return nil
}

// resolveOptions starts from the configured defaults and applies only the
// flags the user actually set.
func resolveOptions(cmd *cobra.Command, base dnglab.Options, flags convertFlags) (dnglab.Options, error) {
	opts := base
	if cmd.Flags().Changed("compression") {
		compression, err := dnglab.ParseCompression(flags.compression)
		if err != nil {
			return opts, err
		}
		opts.Compression = compression
	}
	if cmd.Flags().Changed("crop") {
		crop, err := dnglab.ParseCrop(flags.crop)
		if err != nil {
			return opts, err
		}
		opts.Crop = crop
	}
	if cmd.Flags().Changed("embed-raw") {
		opts.EmbedRaw = flags.embedRaw
	}
	if cmd.Flags().Changed("override") {
		opts.Overwrite = flags.override
	}
	if cmd.Flags().Changed("recursive") {
		opts.Recursive = flags.recursive
	}
	return opts, nil
}

func renderReport(cmd *cobra.Command, report workflow.RunReport) {
	out := cmd.OutOrStdout()
	if len(report.Outcomes) > 0 {
		rows := make([][]string, 0, len(report.Outcomes))
		for i, outcome := range report.Outcomes {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				filepath.Base(outcome.Input),
				outcomeLabel(outcome),
				outcomeDetail(outcome),
				outcome.Duration.Round(durationPrecision).String(),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"#", "File", "Result", "Detail", "Time"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
		))
	}
	fmt.Fprintln(out, report.Summary())
}

func outcomeLabel(outcome dnglab.Outcome) string {
	switch outcome.Kind {
	case dnglab.OutcomeSucceeded:
		return "OK"
	case dnglab.OutcomeToolReportedError:
		if outcome.Signal != 0 {
			return fmt.Sprintf("Killed (signal %d)", outcome.Signal)
		}
		return fmt.Sprintf("Failed (%d)", outcome.ExitCode)
	case dnglab.OutcomeToolNotFound:
		return "Not found"
	default:
		return "Launch failed"
	}
}

func outcomeDetail(outcome dnglab.Outcome) string {
	if outcome.Succeeded() {
		return ""
	}
	return outcome.Message()
}
