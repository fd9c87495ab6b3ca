package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lintgate/lintgate/internal/adapters/outbound/history"
	"github.com/lintgate/lintgate/internal/domain"
)

func callTool(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcplib.CallToolResult, i int) string {
	t.Helper()
	require.Greater(t, len(res.Content), i)
	tc, ok := res.Content[i].(mcplib.TextContent)
	require.True(t, ok, "content %d should be text", i)
	return tc.Text
}

func writeViolations(t *testing.T, dir string) {
	t.Helper()
	content := "violations:\n  - tool: SomeTool\n    errors: 1\n    warnings: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "violations.yaml"), []byte(content), 0644))
}

func TestHandleEvaluate_WithinLimits(t *testing.T) {
	dir := t.TempDir()
	writeViolations(t, dir)
	core, logs := observer.New(zapcore.WarnLevel)

	res := callTool(t, handleEvaluate(dir, zap.New(core)), map[string]any{
		"violations":   "violations.yaml",
		"max_errors":   float64(1),
		"max_warnings": float64(2),
	})
	assert.False(t, res.IsError)

	var out evaluateResult
	require.NoError(t, json.Unmarshal([]byte(text(t, res, 0)), &out))
	assert.True(t, out.Report.Passed())
	assert.Equal(t, []string{"SomeTool violations found (1 errors, 2 warnings)."}, out.Log)
	assert.Equal(t, 1, logs.Len(), "lines are forwarded to the server logger")
}

func TestHandleEvaluate_LimitExceeded(t *testing.T) {
	dir := t.TempDir()
	writeViolations(t, dir)

	res := callTool(t, handleEvaluate(dir, zap.NewNop()), map[string]any{
		"violations":   "violations.yaml",
		"max_errors":   float64(1),
		"max_warnings": float64(1),
	})
	assert.True(t, res.IsError)
	assert.Equal(t, "Violations limit exceeded by 0 errors, 1 warnings.", text(t, res, 1))
}

func TestHandleEvaluate_BadArguments(t *testing.T) {
	dir := t.TempDir()

	res := callTool(t, handleEvaluate(dir, zap.NewNop()), map[string]any{"max_errors": 1.5})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res, 0), "max_errors must be a whole number")

	res = callTool(t, handleEvaluate(dir, zap.NewNop()), map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res, 0), "evaluation failed")
}

func TestHandleHistory(t *testing.T) {
	dir := t.TempDir()

	res := callTool(t, handleHistory(dir), nil)
	assert.Equal(t, "[]", text(t, res, 0))

	require.NoError(t, history.New().Save(dir, domain.RunEntry{Timestamp: "t1", Errors: 4}))
	res = callTool(t, handleHistory(dir), nil)

	var entries []domain.RunEntry
	require.NoError(t, json.Unmarshal([]byte(text(t, res, 0)), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 4, entries[0].Errors)
}

func TestHandleConfigResource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lintgate.yaml"), []byte("penalty:\n  preset: fail-on-warnings\n"), 0644))

	contents, err := handleConfigResource(dir)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	tc, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)

	var view configView
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &view))
	assert.Equal(t, domain.PenaltyPolicy{}, view.Policy)
	assert.Equal(t, domain.PresetFailOnWarnings, view.Config.Penalty.Preset)
}
