package cmd

import (
	m "github.com/mouse-blink/marauders/internal/model"
	"github.com/spf13/cobra"
)

// unsetCmd represents the unset command.
var unsetCmd = newUnsetCmd()

func newUnsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <variant> [path]",
		Short: "Return the variation of an active variant to its base",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			result, err := workflow.Unset(pathArg(args, 1), args[0])
			if err != nil {
				return err
			}

			return ui.DisplaySetResults([]m.SetResult{result})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(unsetCmd)
}
