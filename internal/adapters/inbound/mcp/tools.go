package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/lintgate/lintgate/internal/adapters/outbound/config"
	"github.com/lintgate/lintgate/internal/adapters/outbound/history"
	"github.com/lintgate/lintgate/internal/adapters/outbound/links"
	"github.com/lintgate/lintgate/internal/adapters/outbound/logging"
	"github.com/lintgate/lintgate/internal/adapters/outbound/records"
	"github.com/lintgate/lintgate/internal/application"
	"github.com/lintgate/lintgate/internal/domain"
)

// evaluateResult is returned by lintgate_evaluate.
type evaluateResult struct {
	Report *domain.EvaluationReport `json:"report"`
	Log    []string                 `json:"log"`
}

// registerTools registers all lintgate MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, logger *zap.Logger) {
	// 1. lintgate_evaluate
	s.AddTool(
		mcplib.NewTool("lintgate_evaluate",
			mcplib.WithDescription("Evaluate violations files against the project's penalty policy. Returns the report and the warning lines a build would log."),
			mcplib.WithString("violations",
				mcplib.Description("Comma-separated violations files relative to the project root (default: files listed in .lintgate.yaml)"),
			),
			mcplib.WithNumber("max_errors", mcplib.Description("Override the maximum tolerated errors")),
			mcplib.WithNumber("max_warnings", mcplib.Description("Override the maximum tolerated warnings")),
		),
		handleEvaluate(projectPath, logger),
	)

	// 2. lintgate_history
	s.AddTool(
		mcplib.NewTool("lintgate_history",
			mcplib.WithDescription("Returns the recorded evaluation runs for the project"),
		),
		handleHistory(projectPath),
	)
}

func newEvaluateService(projectPath string, logger domain.WarningLogger) *application.EvaluateService {
	return application.NewEvaluateService(config.New(), records.New(""), logger, links.New(projectPath))
}

func handleEvaluate(projectPath string, logger *zap.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()

		req := application.EvaluateRequest{ProjectPath: projectPath}
		if files, ok := args["violations"].(string); ok {
			req.ViolationFiles = splitAndTrim(files)
		}
		var err error
		if req.MaxErrors, err = optionalLimit(args, "max_errors"); err != nil {
			return errorResult(err.Error()), nil
		}
		if req.MaxWarnings, err = optionalLimit(args, "max_warnings"); err != nil {
			return errorResult(err.Error()), nil
		}

		rec := logging.NewRecorder(logging.NewViolationsLogger(logger))
		report, err := newEvaluateService(projectPath, rec).Evaluate(req)
		if report == nil {
			return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
		}

		result, jerr := jsonResult(evaluateResult{Report: report, Log: rec.Lines()})
		if jerr != nil {
			return nil, jerr
		}
		if err != nil {
			result.Content = append(result.Content, mcplib.NewTextContent(err.Error()))
			result.IsError = true
		}
		return result, nil
	}
}

func handleHistory(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history failed: %v", err)), nil
		}
		if entries == nil {
			entries = []domain.RunEntry{}
		}
		return jsonResult(entries)
	}
}

func optionalLimit(args map[string]any, key string) (*int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	f, ok := raw.(float64)
	if !ok || f != float64(int(f)) {
		return nil, fmt.Errorf("%s must be a whole number", key)
	}
	n := int(f)
	return &n, nil
}

// jsonResult marshals v into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
