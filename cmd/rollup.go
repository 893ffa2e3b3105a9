package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/internal/ioview"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/spf13/cobra"
)

// getRollupCmd returns the rollup command.
func getRollupCmd() *cobra.Command {
	rollupCmd := &cobra.Command{
		Use:   "rollup LEVEL NAME",
		Short: "Aggregate skill gaps of a hierarchy node",
		Long: `Aggregate skill-gap counts of everybody under a named node of the
management hierarchy.

LEVEL is one of manager (mgr), dl, dh, gdl. NAME is the display name of
the node as it appears in employee records.

Every employee is counted once. Employees whose DL, DH or GDL do not
match the path to the node are left out and reported as issues.

Examples:
  skillgap rollup manager "Harvey Specter"
  skillgap rollup dl "Robert Zane" -o yaml
  skillgap rollup gdl "Jessica Pearson" --store sqlite`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRollup(cmd, args[0], args[1])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return rollupCmd
}

func runRollup(cmd *cobra.Command, levelArg, name string) error {
	level, err := parseLevelArg(levelArg)
	if err != nil {
		return err
	}

	return withEngine(cmd, func(
		ctx context.Context, eng rollup.Engine, r *ioview.Renderer,
	) error {
		n, err := eng.Rollup(ctx, level, name)
		if err != nil {
			return err
		}
		return r.Node(n)
	})
}
