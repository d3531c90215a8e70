package cmd

import (
	"github.com/spf13/cobra"
)

// languagesCmd represents the languages command.
var languagesCmd = newLanguagesCmd()

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages [path]",
		Short: "List the languages enabled for a project",
		Long:  "List the built-in and custom languages the project configuration enables, with the markers each one uses.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			profiles, err := workflow.Languages(pathArg(args, 0))
			if err != nil {
				return err
			}

			return ui.DisplayLanguages(profiles)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
