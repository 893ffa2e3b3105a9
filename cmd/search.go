package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/internal/ioview"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/spf13/cobra"
)

// getSearchCmd returns the search command.
func getSearchCmd() *cobra.Command {
	var q rollup.Query

	searchCmd := &cobra.Command{
		Use:   "search LEVEL NAME",
		Short: "Find employees under a hierarchy node",
		Long: `Find employee summaries in the subtree of a named node.

--query matches a case-insensitive substring of the name or NBK.
--nbk matches an exact, case-sensitive NBK. Without filters every
employee of the subtree is listed.

Examples:
  skillgap search dl "Robert Zane" -q ross
  skillgap search gdl "Jessica Pearson" --nbk kb005`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSearch(cmd, args[0], args[1], q)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	searchCmd.Flags().StringVarP(&q.Text, "query", "q", "",
		"substring of name or NBK")
	searchCmd.Flags().StringVar(&q.NBK, "nbk", "",
		"exact employee NBK (case-sensitive)")

	return searchCmd
}

func runSearch(cmd *cobra.Command, levelArg, name string, q rollup.Query) error {
	level, err := parseLevelArg(levelArg)
	if err != nil {
		return err
	}

	return withEngine(cmd, func(
		ctx context.Context, eng rollup.Engine, r *ioview.Renderer,
	) error {
		ss, err := eng.Search(ctx, level, name, q)
		if err != nil {
			return err
		}
		return r.Summaries(ss)
	})
}
