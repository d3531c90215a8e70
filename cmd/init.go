package cmd

import (
	"fmt"

	"github.com/mouse-blink/marauders/internal/domain"
	"github.com/spf13/cobra"
)

// initCmd represents the init command.
var initCmd = newInitCmd()
var initFormatFlag string
var initLanguageFlags []string
var initIgnoreFlags []string
var initNoGitignoreFlag bool
var initForceFlag bool

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a project configuration",
		Long: `Write marauder.toml (or marauder.yaml with --format yaml) into dir, the
working directory by default. Without --language every built-in language
is enabled.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			path, err := workflow.Init(domain.InitArgs{
				Dir:         dir,
				Format:      initFormatFlag,
				Languages:   initLanguageFlags,
				Ignore:      initIgnoreFlags,
				NoGitignore: initNoGitignoreFlag,
				Force:       initForceFlag,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)

			return err
		},
	}
	cmd.Flags().StringVar(&initFormatFlag, "format", "toml", "configuration format (toml, yaml)")
	cmd.Flags().StringSliceVarP(&initLanguageFlags, "language", "l", nil, "enable a language (can be repeated)")
	cmd.Flags().StringArrayVarP(&initIgnoreFlags, "ignore", "x", nil, "ignore files matching a glob (can be repeated)")
	cmd.Flags().BoolVar(&initNoGitignoreFlag, "no-gitignore", false, "do not skip files ignored by git")
	cmd.Flags().BoolVar(&initForceFlag, "force", false, "overwrite an existing configuration")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
