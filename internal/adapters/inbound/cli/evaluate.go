package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lintgate/lintgate/internal/adapters/outbound/config"
	"github.com/lintgate/lintgate/internal/adapters/outbound/gitinfo"
	"github.com/lintgate/lintgate/internal/adapters/outbound/history"
	"github.com/lintgate/lintgate/internal/adapters/outbound/links"
	"github.com/lintgate/lintgate/internal/adapters/outbound/logging"
	"github.com/lintgate/lintgate/internal/adapters/outbound/records"
	"github.com/lintgate/lintgate/internal/adapters/outbound/tui"
	"github.com/lintgate/lintgate/internal/application"
	"github.com/lintgate/lintgate/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	var (
		violationFiles []string
		inline         []string
		maxErrors      int
		maxWarnings    int
		jsonOutput     bool
		noHistory      bool
	)

	cmd := &cobra.Command{
		Use:     "evaluate [path]",
		Aliases: []string{"check"},
		Short:   "Evaluate reported violations against the penalty policy",
		Long: `Log one warning per tool that reported violations and fail when the totals
across all tools exceed the configured penalty.

Exit codes:
  0 - Violations within limits
  1 - Violations limit exceeded
  2 - Usage, configuration or input error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return &ExitError{Code: ExitUsageOrInput, Err: fmt.Errorf("resolving path: %w", err)}
			}

			logger, err := opts.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return &ExitError{Code: ExitUsageOrInput, Err: err}
			}
			defer func() { _ = logger.Sync() }()

			req := application.EvaluateRequest{ProjectPath: absPath}
			// Paths on the command line are relative to the working directory,
			// config paths to the project.
			for _, f := range violationFiles {
				abs, err := filepath.Abs(f)
				if err != nil {
					return &ExitError{Code: ExitUsageOrInput, Err: fmt.Errorf("resolving %s: %w", f, err)}
				}
				req.ViolationFiles = append(req.ViolationFiles, abs)
			}
			for _, s := range inline {
				v, err := records.Parse(s)
				if err != nil {
					return &ExitError{Code: ExitUsageOrInput, Err: err}
				}
				req.Inline = append(req.Inline, v)
			}
			// Flags only override the config file when set explicitly.
			if cmd.Flags().Changed("max-errors") {
				req.MaxErrors = &maxErrors
			}
			if cmd.Flags().Changed("max-warnings") {
				req.MaxWarnings = &maxWarnings
			}

			svc := application.NewEvaluateService(
				config.New(),
				records.New(""),
				logging.NewViolationsLogger(logger),
				links.New(absPath),
			)

			report, evalErr := svc.Evaluate(req)
			if report == nil {
				return &ExitError{Code: ExitUsageOrInput, Err: evalErr}
			}

			if !noHistory {
				recordRun(absPath, report, logger)
			}

			if jsonOutput {
				if err := renderEvaluationJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderEvaluation(report))
			}

			if evalErr != nil {
				return &ExitError{Code: ExitLimitExceeded, Err: evalErr}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&violationFiles, "violations", nil, "Violations files written by tool adapters (YAML or JSON)")
	cmd.Flags().StringArrayVar(&inline, "violation", nil, "Inline record Tool:errors:warnings[:report] (repeatable)")
	cmd.Flags().IntVar(&maxErrors, "max-errors", 0, "Maximum tolerated errors across all tools")
	cmd.Flags().IntVar(&maxWarnings, "max-warnings", 0, "Maximum tolerated warnings across all tools")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the evaluation as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not append this run to the history")

	return cmd
}

// recordRun stamps the report with the HEAD commit and appends it to the
// history. Failures never change the exit status; a corrupt history file is
// reported as a warning.
func recordRun(projectPath string, report *domain.EvaluationReport, logger *zap.Logger) {
	gi := gitinfo.New()
	if gi.IsGitRepo(projectPath) {
		if hash, err := gi.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}

	entry := domain.NewRunEntry(report, time.Now())
	err := history.New().Save(projectPath, entry)
	switch {
	case errors.Is(err, history.ErrCorrupt):
		logger.Warn("history not updated", zap.Error(err))
	case err != nil:
		logger.Debug("saving history failed", zap.String("project", projectPath), zap.Error(err))
	}
}

func renderEvaluationJSON(cmd *cobra.Command, report *domain.EvaluationReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
