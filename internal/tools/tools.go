// Package tools exposes the Jenkins client operations as MCP tools.
// Each tool validates its arguments before any remote call and renders
// every client error as a textual tool error result, so no failure ever
// crosses the MCP boundary as a raw fault.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"jenkinsmcp/internal/jenkins"
	"jenkinsmcp/internal/logger"
)

// JenkinsAPI is the slice of the Jenkins client the tools consume.
type JenkinsAPI interface {
	Version(ctx context.Context) (string, error)
	Job(ctx context.Context, name string) (*jenkins.JobInfo, error)
	Jobs(ctx context.Context) ([]jenkins.JobSummary, error)
	Build(ctx context.Context, name string, params map[string]string) (*jenkins.BuildReceipt, error)
	Console(ctx context.Context, name string, build int) (string, error)
}

// Tools holds the handlers for all five Jenkins tools.
type Tools struct {
	api    JenkinsAPI
	logger *slog.Logger
	calls  metric.Int64Counter
}

// New creates the tool set around the given Jenkins API.
func New(api JenkinsAPI, log *slog.Logger) *Tools {
	t := &Tools{api: api, logger: log}

	meter := otel.Meter("jenkinsmcp")
	calls, err := meter.Int64Counter(
		"mcp_tool_calls_total",
		metric.WithDescription("Number of MCP tool invocations, by tool and outcome."),
	)
	if err != nil {
		log.Warn("tool call counter unavailable", "err", err)
	} else {
		t.calls = calls
	}

	return t
}

// Register adds all tools to the MCP server.
func (t *Tools) Register(s *mcpserver.MCPServer) {
	s.AddTool(mcp.NewTool("get-version",
		mcp.WithDescription("Get Jenkins server version information."),
	), t.wrap("get-version", t.handleGetVersion))

	s.AddTool(mcp.NewTool("job-info",
		mcp.WithDescription("Get comprehensive information about a Jenkins job including configuration, last build status, build history, and other job metadata."),
		mcp.WithString("job_name",
			mcp.Required(),
			mcp.Description("The name of the Jenkins job to get information for"),
		),
	), t.wrap("job-info", t.handleJobInfo))

	s.AddTool(mcp.NewTool("run-job",
		mcp.WithDescription("Trigger a Jenkins job to run with optional parameters."),
		mcp.WithString("job_name",
			mcp.Required(),
			mcp.Description("The name of the Jenkins job to run"),
		),
		mcp.WithString("parameters",
			mcp.Description("JSON object of job parameters, e.g. {\"BRANCH\": \"main\"}"),
		),
	), t.wrap("run-job", t.handleRunJob))

	s.AddTool(mcp.NewTool("job-console",
		mcp.WithDescription("Get the console output for a specific Jenkins job build."),
		mcp.WithString("job_name",
			mcp.Required(),
			mcp.Description("The name of the Jenkins job"),
		),
		mcp.WithNumber("build_number",
			mcp.Description("The build number to get console output for (uses latest build if not provided)"),
		),
	), t.wrap("job-console", t.handleJobConsole))

	s.AddTool(mcp.NewTool("get-jobs",
		mcp.WithDescription("Get a list of all Jenkins jobs."),
	), t.wrap("get-jobs", t.handleGetJobs))
}

// wrap attaches a request ID, structured logging, and the call counter
// to a tool handler.
func (t *Tools) wrap(name string, h mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logger.WithRequestID(ctx, uuid.NewString())
		log := logger.FromContext(ctx, t.logger).With("tool", name)

		log.Info("tool call started")
		res, err := h(ctx, req)

		outcome := "ok"
		if err != nil || (res != nil && res.IsError) {
			outcome = "error"
		}
		if t.calls != nil {
			t.calls.Add(ctx, 1, metric.WithAttributes(
				attribute.String("tool", name),
				attribute.String("outcome", outcome),
			))
		}
		log.Info("tool call finished", "outcome", outcome)

		return res, err
	}
}

func (t *Tools) handleGetVersion(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	version, err := t.api.Version(ctx)
	if err != nil {
		return errorResult(ctx, t.logger, err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Jenkins version: %s", version)), nil
}

func (t *Tools) handleJobInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, res := requireJobName(req)
	if res != nil {
		return res, nil
	}

	info, err := t.api.Job(ctx, name)
	if err != nil {
		return errorResult(ctx, t.logger, err), nil
	}

	out, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize job info for '%s': %v", name, err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (t *Tools) handleRunJob(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, res := requireJobName(req)
	if res != nil {
		return res, nil
	}

	params, err := ParseParameters(req.GetString("parameters", ""))
	if err != nil {
		// Invalid input never reaches the server.
		return mcp.NewToolResultError(fmt.Sprintf("Invalid JSON in parameters: %v", err)), nil
	}

	receipt, err := t.api.Build(ctx, name, params)
	if err != nil {
		return errorResult(ctx, t.logger, err), nil
	}

	if receipt.Number > 0 {
		return mcp.NewToolResultText(fmt.Sprintf("Job '%s' started successfully. Build number: %d", name, receipt.Number)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Job '%s' started successfully.", name)), nil
}

func (t *Tools) handleJobConsole(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, res := requireJobName(req)
	if res != nil {
		return res, nil
	}

	build := req.GetInt("build_number", 0)

	text, err := t.api.Console(ctx, name, build)
	if err != nil {
		return errorResult(ctx, t.logger, err), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (t *Tools) handleGetJobs(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jobs, err := t.api.Jobs(ctx)
	if err != nil {
		return errorResult(ctx, t.logger, err), nil
	}

	out, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize jobs list: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// requireJobName extracts and validates the job_name argument. The
// second return value is non-nil when validation failed and carries the
// ready-made error result.
func requireJobName(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	name, err := req.RequireString("job_name")
	if err != nil || name == "" {
		return "", mcp.NewToolResultError("job_name must be a non-empty string")
	}
	return name, nil
}

// errorResult renders a client error as a tool error result, keeping
// the closed error taxonomy visible in the message prefix.
func errorResult(ctx context.Context, log *slog.Logger, err error) *mcp.CallToolResult {
	logger.FromContext(ctx, log).Error("tool call failed", "err", err)

	switch {
	case errors.Is(err, jenkins.ErrJobNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("Job not found: %v", err))
	case errors.Is(err, jenkins.ErrBuildNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("Build not found: %v", err))
	case errors.Is(err, jenkins.ErrInvalidParameters):
		return mcp.NewToolResultError(fmt.Sprintf("Invalid parameters: %v", err))
	case errors.Is(err, jenkins.ErrInvalidArgument):
		return mcp.NewToolResultError(fmt.Sprintf("Invalid argument: %v", err))
	case errors.Is(err, jenkins.ErrUnavailable):
		return mcp.NewToolResultError(fmt.Sprintf("Connection error: %v", err))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Jenkins API error: %v", err))
	}
}
