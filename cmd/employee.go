package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/internal/ioview"
	"github.com/gnames/skillgap/pkg/rollup"
	"github.com/spf13/cobra"
)

// getEmployeeCmd returns the employee command.
func getEmployeeCmd() *cobra.Command {
	var details, plan bool

	employeeCmd := &cobra.Command{
		Use:   "employee NBK",
		Short: "Show skill-gap summary of an employee",
		Long: `Show the skill-gap summary of one employee: number of skills and
number of current and future gaps.

Use --details to see every skill with its verdicts, or --plan to get
skills to improve together with training resources.

Examples:
  skillgap employee mr002
  skillgap employee mr002 --details
  skillgap employee mr002 --plan -o json`,
		Aliases: []string{"emp"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := withEngine(cmd, func(
				ctx context.Context, eng rollup.Engine, r *ioview.Renderer,
			) error {
				nbk := args[0]
				switch {
				case plan:
					p, err := eng.UpskillPlan(ctx, nbk)
					if err != nil {
						return err
					}
					return r.Plan(p)
				case details:
					d, err := eng.EmployeeDetails(ctx, nbk)
					if err != nil {
						return err
					}
					return r.Details(d)
				default:
					s, err := eng.SummarizeEmployee(ctx, nbk)
					if err != nil {
						return err
					}
					return r.Summary(s)
				}
			})
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	employeeCmd.Flags().BoolVar(&details, "details", false,
		"show every skill with verdicts")
	employeeCmd.Flags().BoolVarP(&plan, "plan", "p", false,
		"show upskill plan with training resources")
	employeeCmd.MarkFlagsMutuallyExclusive("details", "plan")

	return employeeCmd
}
