package domain_test

import (
	"errors"
	"testing"

	"github.com/lintgate/lintgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestDefaultConfig_FailsOnErrors(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.PresetFailOnErrors, cfg.Penalty.Preset)
	assert.Equal(t, domain.PenaltyPolicy{MaxErrors: 0, MaxWarnings: domain.Unlimited}, cfg.Penalty.Policy())
	assert.True(t, cfg.LinksEnabled())
}

func TestPresetPolicy(t *testing.T) {
	tests := []struct {
		preset domain.PenaltyPreset
		want   domain.PenaltyPolicy
	}{
		{domain.PresetNone, domain.PenaltyPolicy{MaxErrors: domain.Unlimited, MaxWarnings: domain.Unlimited}},
		{domain.PresetFailOnErrors, domain.PenaltyPolicy{MaxErrors: 0, MaxWarnings: domain.Unlimited}},
		{domain.PresetFailOnWarnings, domain.PenaltyPolicy{MaxErrors: 0, MaxWarnings: 0}},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.PresetPolicy(tt.preset))
		})
	}
}

func TestPenaltyConfig_ExplicitValuesOverridePreset(t *testing.T) {
	cfg := domain.PenaltyConfig{Preset: domain.PresetFailOnWarnings, MaxWarnings: intPtr(5)}
	assert.Equal(t, domain.PenaltyPolicy{MaxErrors: 0, MaxWarnings: 5}, cfg.Policy())

	custom := domain.PenaltyConfig{Preset: domain.PresetCustom, MaxErrors: intPtr(1), MaxWarnings: intPtr(1)}
	assert.Equal(t, domain.PenaltyPolicy{MaxErrors: 1, MaxWarnings: 1}, custom.Policy())
}

func TestProjectConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.ProjectConfig
		wantErr string
	}{
		{
			name:    "unknown preset",
			cfg:     domain.ProjectConfig{Penalty: domain.PenaltyConfig{Preset: "strict"}},
			wantErr: `unknown penalty.preset "strict"`,
		},
		{
			name:    "custom without warnings",
			cfg:     domain.ProjectConfig{Penalty: domain.PenaltyConfig{Preset: domain.PresetCustom, MaxErrors: intPtr(1)}},
			wantErr: "requires both max_errors and max_warnings",
		},
		{
			name:    "negative errors",
			cfg:     domain.ProjectConfig{Penalty: domain.PenaltyConfig{MaxErrors: intPtr(-1)}},
			wantErr: "penalty.max_errors must be >= 0",
		},
		{
			name:    "negative warnings",
			cfg:     domain.ProjectConfig{Penalty: domain.PenaltyConfig{MaxWarnings: intPtr(-3)}},
			wantErr: "penalty.max_warnings must be >= 0",
		},
		{
			name:    "empty ignored tool",
			cfg:     domain.ProjectConfig{IgnoreTools: []string{"ktlint", " "}},
			wantErr: "ignore_tools[1] must not be empty",
		},
		{
			name:    "empty violations path",
			cfg:     domain.ProjectConfig{Violations: []string{""}},
			wantErr: "violations[0] must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
		})
	}
}

func TestProjectConfig_IsIgnoredTool(t *testing.T) {
	cfg := domain.ProjectConfig{IgnoreTools: []string{"ktlint", "spot-bugs"}}
	assert.True(t, cfg.IsIgnoredTool("KtLint"))
	assert.True(t, cfg.IsIgnoredTool("SpotBugs"))
	assert.False(t, cfg.IsIgnoredTool("Detekt"))
}

func TestProjectConfig_LinksEnabled(t *testing.T) {
	off := false
	assert.False(t, domain.ProjectConfig{ReportLinks: &off}.LinksEnabled())
	assert.True(t, domain.ProjectConfig{}.LinksEnabled())
}
