package cmd

import (
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [path]",
		Short: "View the latest test report",
		Long:  "View the most recent report saved by `marauders test` for the project containing path.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			report, err := workflow.View(pathArg(args, 0))
			if err != nil {
				return err
			}

			return ui.DisplayReport(report)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
