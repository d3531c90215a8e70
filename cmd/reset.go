package cmd

import (
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command.
var resetCmd = newResetCmd()

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset [path]",
		Short: "Return every variation to its base",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			results, err := workflow.Reset(pathArg(args, 0))
			if err != nil {
				return err
			}

			return ui.DisplaySetResults(results)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
