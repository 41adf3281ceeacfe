// Released under an MIT license. See LICENSE.

// Package mcp serves rlisp evaluation as Model Context Protocol tools.
package mcp

import (
	"context"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
)

// Tool names.
const (
	Describe = "rlisp_describe"
	Eval     = "rlisp_eval"
)

// Evaluator is the interface for things that can evaluate rlisp code.
type Evaluator interface {
	Describe(name string) (string, error)
	Evaluate(name, text string) ([]string, error)
}

// T (tools) serializes tool calls to a single Evaluator.
type T struct {
	sync.Mutex

	e Evaluator
}

type tools = T

// New creates tools that use e.
func New(e Evaluator) *T {
	return &tools{e: e}
}

// Server returns an MCP server offering the tools.
func (t *tools) Server(version string) *server.MCPServer {
	s := server.NewMCPServer(
		"rlisp",
		version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool(Eval,
			mcp.WithDescription("Evaluate rlisp forms. Returns the value of each form, one per line."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("One or more forms, e.g. (defun sq (x) (* x x)) (sq 3)"),
			),
		),
		t.Eval,
	)

	s.AddTool(
		mcp.NewTool(Describe,
			mcp.WithDescription("Describe an rlisp symbol: its package, function, value and documentation."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Symbol name, e.g. car"),
			),
		),
		t.Describe,
	)

	return s
}

// Serve serves the tools on stdin and stdout until stdin is closed.
func (t *tools) Serve(version string) error {
	log.Debug("serving MCP on stdio")

	return server.ServeStdio(t.Server(version))
}

// Describe handles rlisp_describe.
func (t *tools) Describe(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t.Lock()
	defer t.Unlock()

	d, err := t.e.Describe(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(d), nil
}

// Eval handles rlisp_eval.
func (t *tools) Eval(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := req.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t.Lock()
	defer t.Unlock()

	vs, err := t.e.Evaluate("mcp", expr)

	log.WithFields(log.Fields{
		"failed": err != nil,
		"values": len(vs),
	}).Debug("mcp eval")

	if err != nil {
		return mcp.NewToolResultError(strings.Join(append(vs, err.Error()), "\n")), nil
	}

	return mcp.NewToolResultText(strings.Join(vs, "\n")), nil
}
