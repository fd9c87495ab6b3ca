// Package evaluate decides whether the violations reported by static-analysis
// tools are tolerable under a penalty policy.
package evaluate

import (
	"fmt"

	"github.com/lintgate/lintgate/internal/domain"
)

// Evaluator logs a summary line per tool with findings and fails when the
// totals across all tools exceed the policy. It keeps no state between calls.
type Evaluator struct {
	policy domain.PenaltyPolicy
	logger domain.WarningLogger
	links  domain.LinkRenderer
}

// New creates an Evaluator. links may be nil, in which case report locations
// are never shown.
func New(policy domain.PenaltyPolicy, logger domain.WarningLogger, links domain.LinkRenderer) *Evaluator {
	return &Evaluator{
		policy: policy,
		logger: logger,
		links:  links,
	}
}

// Policy returns the thresholds the evaluator applies.
func (e *Evaluator) Policy() domain.PenaltyPolicy { return e.policy }

// Evaluate processes all records in a single pass. When the summed counts
// exceed the policy it returns the outcome together with a
// *domain.ThresholdExceededError.
func (e *Evaluator) Evaluate(records []domain.Violations) (domain.Outcome, error) {
	var outcome domain.Outcome

	for _, v := range records {
		if v.IsEmpty() {
			continue
		}
		msg := e.message(v)
		e.logger.Warn(msg)
		outcome.Messages = append(outcome.Messages, msg)
		outcome.TotalErrors = domain.AddCount(outcome.TotalErrors, v.Errors)
		outcome.TotalWarnings = domain.AddCount(outcome.TotalWarnings, v.Warnings)
	}

	outcome.ExcessErrors, outcome.ExcessWarnings = e.policy.Excess(outcome.TotalErrors, outcome.TotalWarnings)

	switch {
	case outcome.ExcessErrors > 0 || outcome.ExcessWarnings > 0:
		err := &domain.ThresholdExceededError{
			ExcessErrors:   outcome.ExcessErrors,
			ExcessWarnings: outcome.ExcessWarnings,
		}
		outcome.Kind = domain.OutcomeLimitExceeded
		outcome.Failure = err.Error()
		return outcome, err
	case len(outcome.Messages) == 0:
		outcome.Kind = domain.OutcomeClean
	default:
		outcome.Kind = domain.OutcomeWithinLimits
	}

	return outcome, nil
}

func (e *Evaluator) message(v domain.Violations) string {
	msg := fmt.Sprintf("%s violations found (%d errors, %d warnings).", v.Tool, v.Errors, v.Warnings)
	if e.links == nil || v.Report == "" {
		return msg
	}
	if link := e.links.Render(v.Report); link != "" {
		msg += " See the report at: " + link
	}
	return msg
}
