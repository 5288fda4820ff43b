// Package cmd wires the lit command line interface.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

type options struct {
	include string
	quiet   bool
	verbose bool
	log     *slog.Logger
}

// createLogger sets up the logger used for progress reporting. Output goes
// to the command's error stream so rendered listings stay clean on stdout.
func (o *options) createLogger(stderr io.Writer) {
	level := slog.LevelInfo

	switch {
	case o.quiet:
		level = slog.LevelError
	case o.verbose:
		level = slog.LevelDebug
	}

	o.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func (o *options) includeGlob() (glob.Glob, error) {
	g, err := glob.Compile(o.include)
	if err != nil {
		return nil, fmt.Errorf("invalid --include pattern %q: %w", o.include, err)
	}

	return g, nil
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "lit",
		Short: "A literate programming tool",
		Long: "lit extracts tangle:///path fenced code blocks from Markdown documents\n" +
			"and assembles them into output files.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.include, "include", "i", "*.md", "glob matching markdown filenames to process")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only report errors")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "report per-file detail")

	cmd.AddCommand(tangleCmd(opts))
	cmd.AddCommand(listCmd(opts))

	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)

		return 1
	}

	return 0
}
