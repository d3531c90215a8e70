package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	listFormatTable = "table"
	listFormatJSON  = "json"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listFormatFlag string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List the variations of a project",
		Long: `List every variation found under path with its location, active variant,
variants and tags. Defaults to the whole project below the working directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := workflow.List(pathArg(args, 0))
			if err != nil {
				return err
			}

			switch listFormatFlag {
			case listFormatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(infos)
			case listFormatTable:
				return ui.DisplayVariations(infos)
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", listFormatFlag, listFormatTable, listFormatJSON)
			}
		},
	}
	cmd.Flags().StringVarP(&listFormatFlag, "format", "f", listFormatTable, "output format (table, json)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
