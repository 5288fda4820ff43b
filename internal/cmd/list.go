package cmd

import (
	"os"
	"sort"

	"github.com/littool/lit/internal/tangle"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [flags] input",
		Aliases: []string{"ls"},
		Short:   "List tangle blocks and their destinations without writing files",
		Args:    cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			opts.createLogger(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			include, err := opts.includeGlob()
			if err != nil {
				return err
			}

			docs, err := loadDocuments(os.DirFS(args[0]), include)
			if err != nil {
				return err
			}

			dests, err := tangle.Aggregate(docs)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(dests))
			for dest := range dests {
				names = append(names, dest)
			}

			sort.Strings(names)

			tbl := table.New("FILE", "POS", "SOURCE", "LINE").WithWriter(cmd.OutOrStdout())

			for _, dest := range names {
				blocks := dests[dest]

				sort.SliceStable(blocks, func(i, j int) bool {
					return blocks[i].Pos.Less(blocks[j].Pos)
				})

				for _, block := range blocks {
					tbl.AddRow(dest, block.Pos, block.Doc, block.Line)
				}
			}

			tbl.Print()

			return nil
		},

		DisableAutoGenTag: true,
	}

	return cmd
}
