// Released under an MIT license. See LICENSE.

package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	tools "github.com/michaelmacinnis/rlisp/internal/system/mcp"
)

type fake struct{}

func (fake) Describe(name string) (string, error) {
	if name == "car" {
		return "CAR is a symbol in the COMMON-LISP package.", nil
	}

	return "", errors.New("UNBOUND-VARIABLE " + name)
}

func (fake) Evaluate(_, text string) ([]string, error) {
	if text == "(car 1)" {
		return nil, errors.New("TYPE-ERROR expected-type: LIST datum: 1")
	}

	return []string{"A", "B"}, nil
}

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func call(t *testing.T, h handler, args map[string]any) (string, bool) {
	t.Helper()

	var req mcp.CallToolRequest
	req.Params.Arguments = args

	r, err := h(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	if len(r.Content) != 1 {
		t.Fatalf("expected one result, got %v", r.Content)
	}

	text, ok := r.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text, got %T", r.Content[0])
	}

	return text.Text, r.IsError
}

func TestEval(t *testing.T) {
	ts := tools.New(fake{})

	if s, failed := call(t, ts.Eval, map[string]any{"expr": "'a 'b"}); failed || s != "A\nB" {
		t.Fatalf("got %q %v", s, failed)
	}

	if _, failed := call(t, ts.Eval, map[string]any{"expr": "(car 1)"}); !failed {
		t.Fatal("expected an error result")
	}

	if _, failed := call(t, ts.Eval, map[string]any{}); !failed {
		t.Fatal("expr is required")
	}
}

func TestDescribe(t *testing.T) {
	ts := tools.New(fake{})

	if s, failed := call(t, ts.Describe, map[string]any{"name": "car"}); failed || s == "" {
		t.Fatalf("got %q %v", s, failed)
	}

	if _, failed := call(t, ts.Describe, map[string]any{"name": "nope"}); !failed {
		t.Fatal("expected an error result")
	}
}

func TestServer(t *testing.T) {
	if tools.New(fake{}).Server("test") == nil {
		t.Fatal("no server")
	}
}
