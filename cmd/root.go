// Package cmd provides the root command and CLI setup for marauders.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mouse-blink/marauders/internal/adapter"
	"github.com/mouse-blink/marauders/internal/controller"
	"github.com/mouse-blink/marauders/internal/domain"
	"github.com/mouse-blink/marauders/internal/logging"
	"github.com/spf13/cobra"
)

// defaultPath scans the working directory recursively.
const defaultPath = "./..."

var fsAdapter adapter.SourceFSAdapter
var configStore adapter.ConfigStore
var reportStore adapter.ReportStore
var testAdapter adapter.TestRunnerAdapter
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	configStore = adapter.NewConfigStore()
	reportStore = adapter.NewReportStore()
	testAdapter = adapter.NewTestRunnerAdapter(nil)
	workflow = domain.NewWorkflow(
		fsAdapter,
		configStore,
		reportStore,
		testAdapter,
		nil,
	)
}

var logLevelFlag string
var logFormatFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marauders",
		Short: "Embedded code variations for mutation testing",
		Long: `Marauders manages code variations written inside special comments of
your source files. Each variation has a base implementation and named
variants; marauders activates variants in place and runs your tests
against every combination a selection expression describes.

Paths follow the Go style:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./src/lib.rs   a single file`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", logging.FormatText, "log format (text, json)")

	return cmd
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(logLevelFlag, logFormatFlag, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	slog.SetDefault(logger)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		printHint(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// printHint follows an error with what the user can do about it.
func printHint(w io.Writer, err error) {
	var notFound *domain.VariantNotFoundError
	if errors.As(err, &notFound) {
		if len(notFound.Available) == 0 {
			_, _ = fmt.Fprintln(w, "hint: no variants are declared in this project")
			return
		}

		_, _ = fmt.Fprintf(w, "hint: available variants: %s\n", strings.Join(notFound.Available, ", "))

		return
	}

	var precondition *domain.PreconditionError
	if errors.As(err, &precondition) {
		_, _ = fmt.Fprintln(w, "hint: run `marauders reset` to return every variation to its base")
		return
	}

	if errors.Is(err, domain.ErrNoReports) {
		_, _ = fmt.Fprintln(w, "hint: reports are kept in "+domain.ReportsDir)
	}
}

func pathArg(args []string, index int) string {
	if len(args) > index {
		return args[index]
	}

	return defaultPath
}
