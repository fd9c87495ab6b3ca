package domain

import (
	"fmt"
	"strings"
)

// PenaltyPreset names a built-in penalty policy.
type PenaltyPreset string

const (
	PresetNone           PenaltyPreset = "none"
	PresetFailOnErrors   PenaltyPreset = "fail-on-errors"
	PresetFailOnWarnings PenaltyPreset = "fail-on-warnings"
	PresetCustom         PenaltyPreset = "custom"
)

// ValidPresets enumerates all recognized penalty presets.
var ValidPresets = []PenaltyPreset{
	PresetNone,
	PresetFailOnErrors,
	PresetFailOnWarnings,
	PresetCustom,
}

// DefaultPreset is used when the config does not name one.
const DefaultPreset = PresetFailOnErrors

// ProjectConfig holds project-level configuration loaded from .lintgate.yaml.
type ProjectConfig struct {
	Penalty     PenaltyConfig `yaml:"penalty"      json:"penalty"`
	Violations  []string      `yaml:"violations"   json:"violations,omitempty"`
	IgnoreTools []string      `yaml:"ignore_tools" json:"ignore_tools,omitempty"`
	// ReportLinks is a pointer so an absent key keeps links on.
	ReportLinks *bool `yaml:"report_links,omitempty" json:"report_links,omitempty"`
}

// PenaltyConfig selects the penalty policy. Pointer types distinguish
// "not specified" from zero values.
type PenaltyConfig struct {
	Preset      PenaltyPreset `yaml:"preset"                 json:"preset,omitempty"`
	MaxErrors   *int          `yaml:"max_errors,omitempty"   json:"max_errors,omitempty"`
	MaxWarnings *int          `yaml:"max_warnings,omitempty" json:"max_warnings,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Penalty: PenaltyConfig{Preset: DefaultPreset}}
}

// PresetPolicy returns the thresholds of a built-in preset. Custom has no
// thresholds of its own and yields zero limits.
func PresetPolicy(p PenaltyPreset) PenaltyPolicy {
	switch p {
	case PresetNone:
		return PenaltyPolicy{MaxErrors: Unlimited, MaxWarnings: Unlimited}
	case PresetFailOnWarnings:
		return PenaltyPolicy{MaxErrors: 0, MaxWarnings: 0}
	case PresetCustom:
		return PenaltyPolicy{}
	default:
		return PenaltyPolicy{MaxErrors: 0, MaxWarnings: Unlimited}
	}
}

// Policy resolves the penalty configuration into concrete thresholds.
// Explicit max values always win over the preset.
func (c PenaltyConfig) Policy() PenaltyPolicy {
	preset := c.Preset
	if preset == "" {
		preset = DefaultPreset
	}
	policy := PresetPolicy(preset)
	if c.MaxErrors != nil {
		policy.MaxErrors = *c.MaxErrors
	}
	if c.MaxWarnings != nil {
		policy.MaxWarnings = *c.MaxWarnings
	}
	return policy
}

// LinksEnabled reports whether report links are appended to log lines.
func (c ProjectConfig) LinksEnabled() bool {
	return c.ReportLinks == nil || *c.ReportLinks
}

// IsIgnoredTool reports whether records of the named tool are dropped.
func (c ProjectConfig) IsIgnoredTool(name string) bool {
	key := ToolKey(name)
	for _, t := range c.IgnoreTools {
		if ToolKey(t) == key {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive
// error wrapping ErrInvalidConfig.
func (c ProjectConfig) Validate() error {
	if err := c.Penalty.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for i, t := range c.IgnoreTools {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("%w: ignore_tools[%d] must not be empty", ErrInvalidConfig, i)
		}
	}

	for i, v := range c.Violations {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: violations[%d] must not be empty", ErrInvalidConfig, i)
		}
	}

	return nil
}

func (c PenaltyConfig) validate() error {
	// 1. preset must be known or empty
	if c.Preset != "" && !IsValidPreset(c.Preset) {
		return fmt.Errorf("unknown penalty.preset %q (valid: none, fail-on-errors, fail-on-warnings, custom)", c.Preset)
	}

	// 2. custom needs both thresholds
	if c.Preset == PresetCustom && (c.MaxErrors == nil || c.MaxWarnings == nil) {
		return fmt.Errorf("penalty.preset custom requires both max_errors and max_warnings")
	}

	// 3. thresholds must not be negative
	if c.MaxErrors != nil && *c.MaxErrors < 0 {
		return fmt.Errorf("penalty.max_errors must be >= 0 (got %d)", *c.MaxErrors)
	}
	if c.MaxWarnings != nil && *c.MaxWarnings < 0 {
		return fmt.Errorf("penalty.max_warnings must be >= 0 (got %d)", *c.MaxWarnings)
	}

	return nil
}

// IsValidPreset reports whether p names a built-in preset.
func IsValidPreset(p PenaltyPreset) bool {
	for _, v := range ValidPresets {
		if v == p {
			return true
		}
	}
	return false
}
