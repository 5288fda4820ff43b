package cmd

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/littool/lit/internal/tangle"
	"github.com/spf13/cobra"
)

func tangleCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tangle [flags] input [output]",
		Aliases: []string{"t"},
		Short:   "Assemble tangle blocks from markdown files into output files",
		Args:    cobra.RangeArgs(1, 2),
		PreRun: func(cmd *cobra.Command, _ []string) {
			opts.createLogger(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			output := filepath.Join(input, "out")
			if len(args) > 1 {
				output = args[1]
			}

			return tangleRun(input, output, opts)
		},

		DisableAutoGenTag: true,
	}

	return cmd
}

func tangleRun(input, output string, opts *options) error {
	include, err := opts.includeGlob()
	if err != nil {
		return err
	}

	opts.log.Info("reading markdown files", "input", input)

	docs, err := loadDocuments(os.DirFS(input), include)
	if err != nil {
		return err
	}

	rendered, err := tangle.Tangle(docs)
	if err != nil {
		return err
	}

	opts.log.Info("writing tangled files", "output", output)

	if err := writeOutputs(output, rendered, opts); err != nil {
		return err
	}

	opts.log.Info("tangling complete", "documents", len(docs), "files", len(rendered))

	return nil
}

// writeOutputs persists the rendered files under root in sorted destination
// order, creating intermediate directories as needed.
func writeOutputs(root string, files map[string][]byte, opts *options) error {
	dests := make([]string, 0, len(files))
	for dest := range files {
		dests = append(dests, dest)
	}

	sort.Strings(dests)

	for _, dest := range dests {
		target := filepath.Join(root, filepath.FromSlash(dest))

		if err := os.MkdirAll(filepath.Dir(target), dirMode); err != nil {
			return err
		}

		if err := os.WriteFile(target, files[dest], fileMode); err != nil {
			return err
		}

		opts.log.Debug("wrote", "file", target, "bytes", len(files[dest]))
	}

	return nil
}
