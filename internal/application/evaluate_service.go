package application

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lintgate/lintgate/internal/domain"
	"github.com/lintgate/lintgate/internal/domain/evaluate"
)

// EvaluateRequest describes one gate run.
type EvaluateRequest struct {
	ProjectPath string
	// ViolationFiles overrides the files listed in the project config.
	ViolationFiles []string
	// Inline records are evaluated together with the file records.
	Inline      []domain.Violations
	MaxErrors   *int
	MaxWarnings *int
}

// EvaluateService orchestrates the gate pipeline:
// load config -> load records -> filter ignored tools -> evaluate.
type EvaluateService struct {
	config domain.ConfigLoader
	source domain.ViolationsSource
	logger domain.WarningLogger
	links  domain.LinkRenderer
}

// NewEvaluateService wires the service. links may be nil.
func NewEvaluateService(
	config domain.ConfigLoader,
	source domain.ViolationsSource,
	logger domain.WarningLogger,
	links domain.LinkRenderer,
) *EvaluateService {
	return &EvaluateService{
		config: config,
		source: source,
		logger: logger,
		links:  links,
	}
}

// Config returns the effective configuration for a request, with CLI
// overrides applied.
func (s *EvaluateService) Config(req EvaluateRequest) (domain.ProjectConfig, error) {
	cfg, err := s.config.Load(req.ProjectPath)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	if req.MaxErrors != nil {
		cfg.Penalty.MaxErrors = req.MaxErrors
	}
	if req.MaxWarnings != nil {
		cfg.Penalty.MaxWarnings = req.MaxWarnings
	}
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, err
	}
	return cfg, nil
}

// Evaluate runs the gate. When the limits are exceeded the returned report
// is complete and the error is a *domain.ThresholdExceededError.
func (s *EvaluateService) Evaluate(req EvaluateRequest) (*domain.EvaluationReport, error) {
	// 1. Configuration
	cfg, err := s.Config(req)
	if err != nil {
		return nil, err
	}

	// 2. Records
	files := req.ViolationFiles
	if len(files) == 0 {
		files = cfg.Violations
	}
	if len(files) == 0 && len(req.Inline) == 0 {
		return nil, domain.ErrNoViolationsInput
	}

	resolved := make([]string, len(files))
	for i, f := range files {
		resolved[i] = resolve(req.ProjectPath, f)
	}

	recs, err := s.source.Load(resolved...)
	if err != nil {
		return nil, fmt.Errorf("loading violations: %w", err)
	}
	for i, v := range req.Inline {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("inline violations[%d]: %w", i, err)
		}
	}
	recs = append(recs, req.Inline...)

	// 3. Ignored tools
	report := &domain.EvaluationReport{ProjectPath: req.ProjectPath}
	var kept []domain.Violations
	for _, v := range recs {
		if cfg.IsIgnoredTool(v.Tool) {
			report.Ignored = append(report.Ignored, v.Tool)
			continue
		}
		kept = append(kept, v)
	}

	// 4. Evaluate
	var links domain.LinkRenderer
	if cfg.LinksEnabled() {
		links = s.links
	}
	report.Policy = cfg.Penalty.Policy()
	evaluator := evaluate.New(report.Policy, s.logger, links)
	outcome, evalErr := evaluator.Evaluate(kept)
	report.Outcome = outcome

	report.Tools = append([]domain.Violations{}, kept...)
	sort.SliceStable(report.Tools, func(i, j int) bool {
		return report.Tools[i].Tool < report.Tools[j].Tool
	})

	return report, evalErr
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}
