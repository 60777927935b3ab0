// Package mcp provides an MCP (Model Context Protocol) server that
// exposes p6delta's delay analysis as MCP tools for AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/p6tools/p6delta/internal/core"
	"github.com/p6tools/p6delta/pkg/models"
)

// Server wraps the analysis runner and exposes it as MCP tools.
type Server struct {
	server *gomcp.Server
	runner core.AnalysisRunner
}

// NewServer creates an MCP server backed by the given analysis runner.
func NewServer(runner core.AnalysisRunner, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{runner: runner}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "p6delta", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type analyzeInput struct {
	Baseline     string `json:"baseline" jsonschema:"required,path to the baseline schedule JSON export"`
	Updated      string `json:"updated" jsonschema:"required,path to the updated schedule JSON export"`
	CriticalPath string `json:"critical_path" jsonschema:"required,path to the critical path JSON export"`
	Scope        string `json:"scope,omitempty" jsonschema:"analysis scope: critical (default) or all"`
}

type analyzeOutput struct {
	Summary models.Summary       `json:"summary"`
	Delayed []models.DelayRecord `json:"delayed_activities"`
}

type impactOutput struct {
	Computable       bool    `json:"computable"`
	ProjectDelayDays float64 `json:"project_delay_days,omitempty"`
	TerminalTaskCode string  `json:"terminal_task_code,omitempty"`
	TerminalTaskName string  `json:"terminal_task_name,omitempty"`
	BaselineEnd      string  `json:"baseline_end,omitempty"`
	UpdatedEnd       string  `json:"updated_end,omitempty"`
	AnalysisDate     string  `json:"analysis_date,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "analyze_delays",
		Description: "Compare a baseline and an updated schedule export and return delayed activities with causal attribution (by_itself or by_predecessor) and impacted successors.",
	}, s.handleAnalyzeDelays)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "project_impact",
		Description: "Compute the net schedule-completion delay from the critical path's terminal activity (latest updated finish).",
	}, s.handleProjectImpact)
}

// --- Tool handlers ---

func (s *Server) handleAnalyzeDelays(_ context.Context, _ *gomcp.CallToolRequest, input analyzeInput) (*gomcp.CallToolResult, analyzeOutput, error) {
	rep, errResult := s.run(input)
	if errResult != nil {
		return errResult, analyzeOutput{}, nil
	}

	out := analyzeOutput{
		Summary: rep.Summary,
		Delayed: rep.Delayed,
	}
	if out.Delayed == nil {
		out.Delayed = []models.DelayRecord{}
	}
	return nil, out, nil
}

func (s *Server) handleProjectImpact(_ context.Context, _ *gomcp.CallToolRequest, input analyzeInput) (*gomcp.CallToolResult, impactOutput, error) {
	rep, errResult := s.run(input)
	if errResult != nil {
		return errResult, impactOutput{}, nil
	}

	if rep.ProjectImpact == nil {
		return nil, impactOutput{Computable: false}, nil
	}

	out := impactOutput{
		Computable:       true,
		ProjectDelayDays: rep.ProjectImpact.ProjectDelayDays,
		TerminalTaskCode: rep.ProjectImpact.TerminalTaskCode,
		TerminalTaskName: rep.ProjectImpact.TerminalTaskName,
		BaselineEnd:      rep.ProjectImpact.BaselineEnd,
		UpdatedEnd:       rep.ProjectImpact.UpdatedEnd,
		AnalysisDate:     rep.Run.AnalysisDate.Format(time.RFC3339),
	}
	return nil, out, nil
}

// run validates tool input and executes the analysis.
func (s *Server) run(input analyzeInput) (*models.Report, *gomcp.CallToolResult) {
	if input.Baseline == "" || input.Updated == "" || input.CriticalPath == "" {
		return nil, errorResult("baseline, updated, and critical_path are required")
	}

	scope := models.ScopeCritical
	if input.Scope != "" {
		scope = models.Scope(input.Scope)
		if !scope.Valid() {
			return nil, errorResult(fmt.Sprintf("invalid scope %q: must be critical or all", input.Scope))
		}
	}

	rep, err := s.runner.Run(input.Baseline, input.Updated, input.CriticalPath, scope)
	if err != nil {
		return nil, errorResult(fmt.Sprintf("running analysis: %s", err))
	}
	return rep, nil
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
