package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lintgate/lintgate/internal/adapters/outbound/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestViolationsLogger_UsesWarnLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.NewViolationsLogger(zap.New(core))

	l.Warn("Detekt violations found (1 errors, 0 warnings).")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Detekt violations found (1 errors, 0 warnings).", entries[0].Message)
}

func TestViolationsLogger_NilLoggerDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.NewViolationsLogger(nil).Warn("ignored")
	})
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	require.NoError(t, err)

	logger.Warn("Lint violations found (0 errors, 3 warnings).")
	require.NoError(t, logger.Sync())

	assert.Equal(t, "WARN\tLint violations found (0 errors, 3 warnings).\n", buf.String())
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf, Format: logging.FormatJSON})
	require.NoError(t, err)

	logger.Warn("PMD violations found (2 errors, 0 warnings).")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "PMD violations found (2 errors, 0 warnings).", line["msg"])
}

func TestNew_LevelFiltersWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf, Level: "error"})
	require.NoError(t, err)

	logger.Warn("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_RejectsUnknownSettings(t *testing.T) {
	_, err := logging.New(logging.Options{Level: "loud"})
	assert.Error(t, err)

	_, err = logging.New(logging.Options{Format: "xml"})
	assert.Error(t, err)
}

func TestRecorder_ForwardsAndKeepsLines(t *testing.T) {
	inner := logging.NewRecorder(nil)
	r := logging.NewRecorder(inner)

	r.Warn("a")
	r.Warn("b")

	assert.Equal(t, []string{"a", "b"}, r.Lines())
	assert.Equal(t, []string{"a", "b"}, inner.Lines())
}
