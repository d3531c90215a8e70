package cmd

import (
	"errors"
	"log/slog"

	"github.com/mouse-blink/marauders/internal/controller"
	"github.com/mouse-blink/marauders/internal/domain"
	"github.com/spf13/cobra"
)

// testCmd represents the test command.
var testCmd = newTestCmd()
var testCommandFlag string
var testDryRunFlag bool
var testFailFastFlag bool

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <expression> [path]",
		Short: "Run a command against every configuration of a selection",
		Long: `Expand the selection expression into configurations, activate each one in
turn, run the command from the project root and restore the base before
the next configuration. The report is saved under .marauders/reports.

Expressions combine variant names, variation names and tags with + (one
configuration each) and * (active together):
  - insert_bug                one variant
  - insert_bug * delete_bug   both variants together
  - insert + delete           every variant of each variation on its own
  - +bugs                     the variations tagged bugs, one at a time
  - *bugs                     the variations tagged bugs, all together`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			expr := args[0]
			path := pathArg(args, 1)

			if testDryRunFlag {
				configurations, err := workflow.Plan(path, expr)
				if err != nil {
					return err
				}

				return ui.DisplayPlan(configurations)
			}

			return runTests(path, expr)
		},
	}
	cmd.Flags().StringVarP(&testCommandFlag, "command", "c", "", "shell command run for every configuration")
	cmd.Flags().BoolVar(&testDryRunFlag, "dry-run", false, "print the configurations without running anything")
	cmd.Flags().BoolVar(&testFailFastFlag, "fail-fast", false, "stop at the first configuration that fails")
	_ = cmd.MarkFlagRequired("command")

	return cmd
}

func runTests(path, expr string) error {
	if err := ui.Start(controller.WithTitle(expr)); err != nil {
		return err
	}

	report, saved, err := workflow.Test(domain.TestArgs{
		Path:       path,
		Expression: expr,
		Command:    testCommandFlag,
		FailFast:   testFailFastFlag,
		Progress:   ui,
	})

	ui.Close()
	ui.Wait()

	if report.ID == "" {
		return err
	}

	if saved != "" {
		slog.Info("report saved", "path", saved)
	}

	if displayErr := ui.DisplayReport(report); displayErr != nil {
		return errors.Join(err, displayErr)
	}

	return err
}

func init() {
	rootCmd.AddCommand(testCmd)
}
