package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/lintgate/lintgate/internal/adapters/outbound/config"
	"github.com/lintgate/lintgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, appconfig.FileName), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_CustomPenalty(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
penalty:
  preset: custom
  max_errors: 1
  max_warnings: 1
violations:
  - build/lintgate/violations.yaml
ignore_tools: [ktlint]
report_links: false
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.PenaltyPolicy{MaxErrors: 1, MaxWarnings: 1}, cfg.Penalty.Policy())
	assert.Equal(t, []string{"build/lintgate/violations.yaml"}, cfg.Violations)
	assert.True(t, cfg.IsIgnoredTool("KtLint"))
	assert.False(t, cfg.LinksEnabled())
}

func TestYAMLLoader_EmptyPresetGetsDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
penalty:
  max_warnings: 10
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreset, cfg.Penalty.Preset)
	assert.Equal(t, domain.PenaltyPolicy{MaxErrors: 0, MaxWarnings: 10}, cfg.Penalty.Policy())
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .lintgate.yaml")
}

func TestYAMLLoader_ValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
penalty:
  preset: custom
  max_errors: -2
  max_warnings: 0
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .lintgate.yaml")
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}
