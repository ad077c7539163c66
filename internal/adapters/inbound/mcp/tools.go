package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/ngkit/internal/adapters/outbound/fsys"
	"github.com/openkraft/ngkit/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/ngkit/internal/adapters/outbound/shell"
	"github.com/openkraft/ngkit/internal/adapters/outbound/walker"
	"github.com/openkraft/ngkit/internal/application"
	"github.com/openkraft/ngkit/internal/domain"
)

// registerTools registers all ngkit MCP tools on the given server.
func registerTools(s *server.MCPServer, cfg domain.ProjectConfig, self string) {
	s.AddTool(
		mcplib.NewTool("ngkit_prelint",
			mcplib.WithDescription("Reports empty files and files with leading whitespace as JSON"),
			mcplib.WithString("files", mcplib.Description("Comma-separated files to check (default: the whole project)")),
		),
		handlePrelint(cfg),
	)

	s.AddTool(
		mcplib.NewTool("ngkit_format_html_check",
			mcplib.WithDescription("Lists Angular templates that format-html would change. Never writes."),
			mcplib.WithString("files", mcplib.Description("Comma-separated templates to check (default: every .html file under the app root)")),
		),
		handleFormatHTMLCheck(cfg),
	)

	s.AddTool(
		mcplib.NewTool("ngkit_lint_plan",
			mcplib.WithDescription("Returns the lint steps and changed files a lint run would use, without running any linter"),
			mcplib.WithString("flags", mcplib.Description("Space-separated lint flags, e.g. \"--changed --fix\"")),
		),
		handleLintPlan(cfg, self),
	)

	s.AddTool(
		mcplib.NewTool("ngkit_build_plan",
			mcplib.WithDescription("Returns the build steps and commands for the given flags, or the validation error"),
			mcplib.WithString("flags", mcplib.Description("Space-separated build flags, e.g. \"--prod --stats\"")),
		),
		handleBuildPlan(cfg, self),
	)

	s.AddTool(
		mcplib.NewTool("ngkit_test_plan",
			mcplib.WithDescription("Returns the test commands for the given flags, or the validation error"),
			mcplib.WithString("flags", mcplib.Description("Space-separated test flags, e.g. \"--coverage\"")),
		),
		handleTestPlan(cfg),
	)
}

// runner captures everything and never draws a spinner; stdout belongs to
// the protocol.
func runner() *shell.Executor {
	return &shell.Executor{Stdout: os.Stderr, Stderr: os.Stderr}
}

func handlePrelint(cfg domain.ProjectConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewPrelintService(walker.New(application.PrelintExcludes...), fsys.New(nil), cfg)
		failures, err := svc.Scan(ctx, fileList(request))
		if err != nil {
			return errorResult(fmt.Sprintf("prelint failed: %v", err)), nil
		}
		return jsonResult(failureReport{Failures: nonNil(failures)})
	}
}

func handleFormatHTMLCheck(cfg domain.ProjectConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewFormatHTMLService(walker.New(), fsys.New(nil), cfg)
		failures, err := svc.Check(ctx, fileList(request))
		if err != nil {
			return errorResult(fmt.Sprintf("format check failed: %v", err)), nil
		}
		return jsonResult(failureReport{Failures: nonNil(failures)})
	}
}

func handleLintPlan(cfg domain.ProjectConfig, self string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		opts, _ := domain.ResolveLintOptions(flagTokens(request))
		svc := application.NewLintService(runner(), gitinfo.New(), fsys.New(nil), cfg, self)

		plan, err := svc.Plan(ctx, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("lint plan failed: %v", err)), nil
		}
		if err := svc.CheckSize(plan); err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(plan)
	}
}

func handleBuildPlan(cfg domain.ProjectConfig, self string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		opts, _ := domain.ResolveBuildOptions(flagTokens(request))
		svc := application.NewBuildService(runner(), fsys.New(nil), cfg, self)

		steps, err := svc.Plan(opts)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(stepReport{Steps: steps})
	}
}

func handleTestPlan(cfg domain.ProjectConfig) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		opts, _ := domain.ResolveTestOptions(flagTokens(request))
		svc := application.NewTestService(runner(), cfg)

		steps, err := svc.Plan(opts)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(stepReport{Steps: steps})
	}
}

type failureReport struct {
	Failures []domain.Failure `json:"failures"`
}

type stepReport struct {
	Steps []domain.Step `json:"steps"`
}

func nonNil(failures []domain.Failure) []domain.Failure {
	if failures == nil {
		return []domain.Failure{}
	}
	return failures
}

func fileList(request mcplib.CallToolRequest) []string {
	files, _ := request.GetArguments()["files"].(string)
	return splitAndTrim(files)
}

func flagTokens(request mcplib.CallToolRequest) []string {
	flags, _ := request.GetArguments()["flags"].(string)
	return strings.Fields(flags)
}

func splitAndTrim(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
