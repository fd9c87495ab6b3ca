package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/fatih/camelcase"
)

// Unlimited is the threshold value that never fails a build.
const Unlimited = math.MaxInt

// Violations is the per-tool summary produced by a tool adapter after it has
// parsed the tool's own report.
type Violations struct {
	Tool     string `yaml:"tool"     json:"tool"`
	Errors   int    `yaml:"errors"   json:"errors"`
	Warnings int    `yaml:"warnings" json:"warnings"`
	Report   string `yaml:"report"   json:"report,omitempty"`
}

// IsEmpty reports whether the tool found nothing at all.
func (v Violations) IsEmpty() bool {
	return v.Errors == 0 && v.Warnings == 0
}

// Validate checks that the record names a tool and carries no negative
// counts. Errors wrap ErrInvalidViolations.
func (v Violations) Validate() error {
	if strings.TrimSpace(v.Tool) == "" {
		return fmt.Errorf("%w: tool must not be empty", ErrInvalidViolations)
	}
	if v.Errors < 0 {
		return fmt.Errorf("%w: %s errors must be >= 0 (got %d)", ErrInvalidViolations, v.Tool, v.Errors)
	}
	if v.Warnings < 0 {
		return fmt.Errorf("%w: %s warnings must be >= 0 (got %d)", ErrInvalidViolations, v.Tool, v.Warnings)
	}
	return nil
}

// Key returns the normalized lookup key for the tool name.
func (v Violations) Key() string { return ToolKey(v.Tool) }

// ToolKey normalizes a tool name so that "SpotBugs", "spot-bugs" and
// "spot_bugs" all map to "spotbugs".
func ToolKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r == '-' || r == '_' || r == ' ' || r == '.' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DisplayName splits a CamelCase tool name into words for terminal output,
// e.g. "AndroidLint" becomes "Android Lint". Names with anything other than
// letters and digits are returned unchanged.
func DisplayName(name string) string {
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return name
		}
	}
	return strings.Join(camelcase.Split(name), " ")
}

// AddCount adds two non-negative counts, saturating at Unlimited instead of
// wrapping around.
func AddCount(a, b int) int {
	if b > Unlimited-a {
		return Unlimited
	}
	return a + b
}

// PenaltyPolicy holds the tolerated totals across all tools of one run.
type PenaltyPolicy struct {
	MaxErrors   int `json:"max_errors"`
	MaxWarnings int `json:"max_warnings"`
}

// Excess returns how far the totals go past the policy, per category.
// Both values are zero when the totals are within limits.
func (p PenaltyPolicy) Excess(errors, warnings int) (excessErrors, excessWarnings int) {
	return max(0, errors-p.MaxErrors), max(0, warnings-p.MaxWarnings)
}

// OutcomeKind classifies the result of an evaluation.
type OutcomeKind string

const (
	OutcomeClean         OutcomeKind = "clean"
	OutcomeWithinLimits  OutcomeKind = "within_limits"
	OutcomeLimitExceeded OutcomeKind = "limit_exceeded"
)

// Outcome is the result of one evaluation call.
type Outcome struct {
	Kind           OutcomeKind `json:"kind"`
	Messages       []string    `json:"messages,omitempty"`
	TotalErrors    int         `json:"total_errors"`
	TotalWarnings  int         `json:"total_warnings"`
	ExcessErrors   int         `json:"excess_errors"`
	ExcessWarnings int         `json:"excess_warnings"`
	Failure        string      `json:"failure,omitempty"`
}

// Failed reports whether the outcome must stop the build.
func (o Outcome) Failed() bool { return o.Kind == OutcomeLimitExceeded }

// EvaluationReport is the full result of evaluating a project's violations.
type EvaluationReport struct {
	ProjectPath string        `json:"project_path"`
	Tools       []Violations  `json:"tools"`
	Ignored     []string      `json:"ignored,omitempty"`
	Policy      PenaltyPolicy `json:"policy"`
	Outcome     Outcome       `json:"outcome"`
	CommitHash  string        `json:"commit_hash,omitempty"`
}

// Passed reports whether the build may continue.
func (r *EvaluationReport) Passed() bool { return !r.Outcome.Failed() }

// RunEntry is one line of the evaluation history.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
	Passed     bool   `json:"passed"`
}

// NewRunEntry summarizes a report for the history file.
func NewRunEntry(r *EvaluationReport, now time.Time) RunEntry {
	return RunEntry{
		Timestamp:  now.Format(time.RFC3339),
		CommitHash: r.CommitHash,
		Errors:     r.Outcome.TotalErrors,
		Warnings:   r.Outcome.TotalWarnings,
		Passed:     r.Passed(),
	}
}
