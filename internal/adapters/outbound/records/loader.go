// Package records reads the violations files tool adapters leave behind after
// parsing their tool's report.
package records

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lintgate/lintgate/internal/domain"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a violations file.
type File struct {
	Violations []domain.Violations `yaml:"violations" json:"violations"`
}

// Loader implements domain.ViolationsSource over YAML and JSON files.
type Loader struct {
	// Root resolves relative paths. Empty means the working directory.
	Root string
}

// New creates a Loader resolving relative paths against root.
func New(root string) *Loader {
	return &Loader{Root: root}
}

// Load reads every file in order and concatenates their records.
func (l *Loader) Load(paths ...string) ([]domain.Violations, error) {
	var all []domain.Violations
	for _, p := range paths {
		recs, err := l.loadFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, recs...)
	}
	return all, nil
}

func (l *Loader) loadFile(path string) ([]domain.Violations, error) {
	fp := path
	if !filepath.IsAbs(fp) && l.Root != "" {
		fp = filepath.Join(l.Root, fp)
	}

	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("reading violations file %s: %w", path, err)
	}

	var f File
	if strings.EqualFold(filepath.Ext(fp), ".json") {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing violations file %s: %w", path, err)
	}

	for i, v := range f.Violations {
		if err := Validate(v); err != nil {
			return nil, fmt.Errorf("%s: violations[%d]: %w", path, i, err)
		}
	}

	return f.Violations, nil
}

// Validate checks a single record. Errors wrap domain.ErrInvalidViolations.
func Validate(v domain.Violations) error {
	return v.Validate()
}

// Parse reads an inline record of the form "Tool:errors:warnings[:report]".
// The report part may itself contain colons (URLs, Windows drives).
func Parse(s string) (domain.Violations, error) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) < 3 {
		return domain.Violations{}, fmt.Errorf("%w: %q is not Tool:errors:warnings[:report]", domain.ErrInvalidViolations, s)
	}

	errs, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.Violations{}, fmt.Errorf("%w: errors in %q: %v", domain.ErrInvalidViolations, s, err)
	}
	warns, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return domain.Violations{}, fmt.Errorf("%w: warnings in %q: %v", domain.ErrInvalidViolations, s, err)
	}

	v := domain.Violations{
		Tool:     strings.TrimSpace(parts[0]),
		Errors:   errs,
		Warnings: warns,
	}
	if len(parts) == 4 {
		v.Report = parts[3]
	}
	return v, Validate(v)
}
