package dnglab

import "strconv"

// Subcommand is the dnglab verb used for every conversion.
const Subcommand = "convert"

// BuildArgs returns the dnglab argument vector for a single input file.
//
// The flag order is fixed: --embed-raw, --compression, --crop, then the
// optional --override and --recursive switches, then the input path and the
// output directory. dnglab parses positionals after the flags, so changing
// this order breaks older releases.
func BuildArgs(opts Options, input, outputDir string) []string {
	args := make([]string, 0, 11)
	args = append(args,
		Subcommand,
		"--embed-raw", strconv.FormatBool(opts.EmbedRaw),
		"--compression", string(opts.Compression),
		"--crop", string(opts.Crop),
	)
	if opts.Overwrite {
		args = append(args, "--override")
	}
	if opts.Recursive {
		args = append(args, "--recursive")
	}
	return append(args, input, outputDir)
}

// Invocation pairs an input file with the arguments used to convert it.
type Invocation struct {
	Input string
	Args  []string
}

// BuildInvocations builds one invocation per input, preserving input order.
// The output directory is shared by every invocation.
func BuildInvocations(opts Options, inputs []string, outputDir string) []Invocation {
	invocations := make([]Invocation, 0, len(inputs))
	for _, input := range inputs {
		invocations = append(invocations, Invocation{
			Input: input,
			Args:  BuildArgs(opts, input, outputDir),
		})
	}
	return invocations
}
