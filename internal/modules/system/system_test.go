package system

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"devmcp/internal/core"
	"devmcp/internal/shell"
)

func testModule(timeout time.Duration) *Module {
	exec := shell.NewExecutor(timeout, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(exec)
}

func TestRunCommandSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix shell semantics")
	}
	m := testModule(5 * time.Second)
	resp, err := m.Execute(context.Background(), "run_command", core.Args{"command": "echo hello"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	res := resp.Data.(shell.Result)
	if resp.Status != "ok" || res.Stdout != "hello\n" || !res.Success {
		t.Fatalf("unexpected: status=%s result=%#v", resp.Status, res)
	}
}

func TestRunCommandTimeoutIsDataNotError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix shell semantics")
	}
	m := testModule(200 * time.Millisecond)
	resp, err := m.Execute(context.Background(), "run_command", core.Args{"command": "sleep 5"})
	if err != nil {
		t.Fatalf("timeout must not surface as execute error: %v", err)
	}
	if resp.Status != "error" || resp.ErrorCode != "timeout" {
		t.Fatalf("status=%s code=%s", resp.Status, resp.ErrorCode)
	}
	res := resp.Data.(shell.Result)
	if res.Error == "" {
		t.Fatalf("expected error field in result")
	}
}

func TestRunCommandSpawnFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix shell semantics")
	}
	m := testModule(5 * time.Second)
	resp, err := m.Execute(context.Background(), "run_command",
		core.Args{"command": "echo hi", "working_dir": "/does/not/exist"})
	if err != nil {
		t.Fatalf("spawn failure must not surface as execute error: %v", err)
	}
	if resp.ErrorCode != "exec_failed" {
		t.Fatalf("error code = %q", resp.ErrorCode)
	}
}

func TestRunCommandMissingArg(t *testing.T) {
	m := testModule(5 * time.Second)
	if _, err := m.Execute(context.Background(), "run_command", core.Args{}); err == nil {
		t.Fatalf("expected protocol error for missing command argument")
	}
}
