package system

import (
	"context"
	"fmt"
	"strings"

	"devmcp/internal/core"
	"devmcp/internal/shell"
)

// Module предоставляет выполнение shell-команд.
type Module struct {
	executor *shell.Executor
}

func New(executor *shell.Executor) *Module {
	return &Module{executor: executor}
}

func (m *Module) Name() string { return "system" }

func (m *Module) Init(ctx context.Context) error { //nolint:revive // инициализация тривиальна
	return nil
}

func (m *Module) Commands() []core.CommandSpec {
	return []core.CommandSpec{
		{
			Name:        "run_command",
			Description: "Execute a shell command and return the result.",
			Params: []core.ParamSpec{
				{Name: "command", Type: "string", Description: "Shell command to execute", Required: true},
				{Name: "working_dir", Type: "string", Description: "Working directory for command execution", Default: "."},
			},
		},
	}
}

func (m *Module) Execute(ctx context.Context, cmd string, args core.Args) (core.Response, error) {
	if cmd != "run_command" {
		return core.Response{Status: "error", ErrorCode: "unknown_command"}, fmt.Errorf("command %s not supported", cmd)
	}
	command, err := args.RequiredString("command")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	workingDir, err := args.String("working_dir", ".")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}

	// Любой исход команды — включая таймаут и сбой запуска — это данные
	// результата, а не ошибка протокола. Status/ErrorCode заполняются
	// только ради аудита.
	res := m.executor.Run(ctx, shell.Request{Command: command, WorkingDir: workingDir})
	resp := core.Response{Status: "ok", Data: res}
	if res.Error != "" {
		resp.Status = "error"
		resp.ErrorCode = classify(res.Error)
	}
	return resp, nil
}

func classify(msg string) string {
	if strings.Contains(msg, "timed out") {
		return "timeout"
	}
	return "exec_failed"
}
