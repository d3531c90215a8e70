package cmd

import (
	m "github.com/mouse-blink/marauders/internal/model"
	"github.com/spf13/cobra"
)

// setCmd represents the set command.
var setCmd = newSetCmd()

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <variant> [path]",
		Short: "Activate a variant",
		Long: `Activate the named variant in the file that declares it. The variation it
belongs to switches away from its current body.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			result, err := workflow.Set(pathArg(args, 1), args[0])
			if err != nil {
				return err
			}

			return ui.DisplaySetResults([]m.SetResult{result})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(setCmd)
}
