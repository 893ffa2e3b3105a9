package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/internal/ioview"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/spf13/cobra"
)

// getChildrenCmd returns the children command.
func getChildrenCmd() *cobra.Command {
	childrenCmd := &cobra.Command{
		Use:   "children LEVEL PARENT",
		Short: "List direct children of a hierarchy node",
		Long: `List distinct names at LEVEL whose parent one level up is PARENT.

LEVEL is one of manager (mgr), dl, dh. For example managers of a
delivery lead are listed with 'children manager "DL name"'.

Examples:
  skillgap children manager "Robert Zane"
  skillgap children dl "Daniel Hardman" -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runChildren(cmd, args[0], args[1])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return childrenCmd
}

func runChildren(cmd *cobra.Command, levelArg, parent string) error {
	level, err := parseLevelArg(levelArg)
	if err != nil {
		return err
	}

	return withEngine(cmd, func(
		ctx context.Context, eng rollup.Engine, r *ioview.Renderer,
	) error {
		names, err := eng.ChildrenOf(ctx, level, parent)
		if err != nil {
			return err
		}
		return r.Children(level, parent, names)
	})
}
