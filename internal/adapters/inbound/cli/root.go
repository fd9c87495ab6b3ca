package cli

import (
	"io"

	"github.com/lintgate/lintgate/internal/adapters/outbound/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	logLevel  string
	logFormat string
}

// newLogger builds the zap logger for a command writing to w.
func (o *rootOptions) newLogger(w io.Writer) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Writer: w,
		Level:  o.logLevel,
		Format: o.logFormat,
	})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lintgate",
		Short: "Fail the build when static analysis finds too much",
		Long: "lintgate sums the violations reported by static-analysis tools (Detekt, Checkstyle, PMD, SpotBugs, ktlint, Lint, ...) " +
			"and fails the build when the totals exceed the configured penalty.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", logging.FormatConsole, "Log format (console, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newEvaluateCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
