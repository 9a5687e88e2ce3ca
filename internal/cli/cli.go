package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cnc-reformat/internal/cnc"
	"cnc-reformat/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// OutputFile is the file the rewrite writes into the working directory.
const OutputFile = "cnc.txt"

const (
	rewriteFlag = "funkce1"
	reportFlag  = "funkce2"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	cfg := config.Load()
	log.Logger = cfg.Logger(os.Stderr)

	rootCmd := newRootCmd()
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cncfmt",
		Short: "Reformat CNC program coordinate blocks",
		Long: `Reformats CNC program files.

  -funkce1 <file>  sort coordinate blocks by tool definition, add 10 to Y
                   where X > 50, and write the result to cnc.txt
  -funkce2 <file>  print xmin/xmax/ymin/ymax of the first tool block region`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rewritePath, _ := cmd.Flags().GetString(rewriteFlag)
			reportPath, _ := cmd.Flags().GetString(reportFlag)

			switch {
			case rewritePath != "":
				return runRewrite(cmd.OutOrStdout(), rewritePath)
			case reportPath != "":
				return runReport(cmd.OutOrStdout(), reportPath)
			}
			log.Debug().Msg("No operation requested")
			return nil
		},
	}

	cmd.Flags().String(rewriteFlag, "", "Rewrite the CNC program at this path into "+OutputFile)
	cmd.Flags().String(reportFlag, "", "Print coordinate extrema of the CNC program at this path")

	return cmd
}

// runRewrite handles -funkce1.
func runRewrite(out io.Writer, path string) error {
	stats, err := cnc.RewriteFile(path, OutputFile)
	if errors.Is(err, cnc.ErrFileAccess) {
		reportAccessFailure(out, path, err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}

	log.Info().
		Str("input", path).
		Str("output", OutputFile).
		Int("lines", stats.Lines).
		Int("blocks", stats.Blocks).
		Int("block_coordinates", stats.Flushed).
		Int("direct_coordinates", stats.Direct).
		Msg("Rewrite complete")

	return nil
}

// runReport handles -funkce2. The summary line is printed even when the file
// cannot be read.
func runReport(out io.Writer, path string) error {
	ext, err := cnc.ReportFile(path)
	if errors.Is(err, cnc.ErrFileAccess) {
		reportAccessFailure(out, path, err)
	} else if err != nil {
		return fmt.Errorf("report %s: %w", path, err)
	}

	fmt.Fprintln(out, ext.String())

	log.Debug().
		Str("input", path).
		Bool("empty", ext.Empty()).
		Msg("Report complete")

	return nil
}

func reportAccessFailure(out io.Writer, path string, err error) {
	fmt.Fprintln(out, "Cannot open/read file", path)
	log.Error().Err(err).Str("file", path).Msg("File access failed")
}

// normalizeArgs turns the single-dash long flags (-funkce1 path) into the
// double-dash form pflag expects.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = arg
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") {
			continue
		}
		name, _, _ := strings.Cut(arg[1:], "=")
		if name == rewriteFlag || name == reportFlag {
			out[i] = "-" + arg
		}
	}
	return out
}
