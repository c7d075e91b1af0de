package mcpserver

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"devmcp/internal/core"
	"devmcp/internal/modules/mathtools"
	"devmcp/internal/transports/common"
)

func newTestService(t *testing.T) *common.Service {
	t.Helper()
	reg := core.NewRegistry()
	if err := reg.Register(context.Background(), mathtools.New()); err != nil {
		t.Fatalf("register: %v", err)
	}
	return &common.Service{
		Source:   "mcp",
		Registry: reg,
		Policy:   core.NewDenylistPolicy(nil),
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBuildServer(t *testing.T) {
	s := BuildServer("devmcp", "test", newTestService(t))
	if s == nil {
		t.Fatalf("expected server")
	}
}

func TestToolFromSpec(t *testing.T) {
	spec := core.CommandSpec{
		Name:        "add_numbers",
		Description: "Add two numbers together.",
		Params: []core.ParamSpec{
			{Name: "a", Type: "integer", Required: true},
			{Name: "b", Type: "integer", Required: true},
		},
	}
	tool := toolFromSpec(spec)
	if tool.Name != "add_numbers" {
		t.Fatalf("tool name = %q", tool.Name)
	}
	if tool.Description != "Add two numbers together." {
		t.Fatalf("description = %q", tool.Description)
	}
	if len(tool.InputSchema.Required) != 2 {
		t.Fatalf("required params = %#v", tool.InputSchema.Required)
	}
}

func TestResultFromResponse(t *testing.T) {
	res, err := resultFromResponse(core.Response{Status: "ok", Data: map[string]int{"n": 1}})
	if err != nil {
		t.Fatalf("resultFromResponse: %v", err)
	}
	if res == nil || res.IsError {
		t.Fatalf("unexpected result: %#v", res)
	}

	res, err = resultFromResponse(core.Response{Status: "ok", Data: "plain"})
	if err != nil || res == nil {
		t.Fatalf("string data: %v", err)
	}
}
