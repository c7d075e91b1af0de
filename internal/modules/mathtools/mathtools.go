package mathtools

import (
	"context"
	"fmt"

	"devmcp/internal/core"
)

// Module предоставляет базовые арифметические инструменты.
type Module struct{}

func New() *Module { return &Module{} }

func (m *Module) Name() string { return "math" }

func (m *Module) Init(ctx context.Context) error { //nolint:revive // инициализация тривиальна
	return nil
}

func (m *Module) Commands() []core.CommandSpec {
	return []core.CommandSpec{
		{
			Name:        "add_numbers",
			Description: "Add two numbers together.",
			Params: []core.ParamSpec{
				{Name: "a", Type: "integer", Description: "First addend", Required: true},
				{Name: "b", Type: "integer", Description: "Second addend", Required: true},
			},
		},
		{
			Name:        "multiply_numbers",
			Description: "Multiply two numbers together.",
			Params: []core.ParamSpec{
				{Name: "a", Type: "number", Description: "First factor", Required: true},
				{Name: "b", Type: "number", Description: "Second factor", Required: true},
			},
		},
	}
}

func (m *Module) Execute(ctx context.Context, cmd string, args core.Args) (core.Response, error) {
	switch cmd {
	case "add_numbers":
		return m.add(args)
	case "multiply_numbers":
		return m.multiply(args)
	default:
		return core.Response{Status: "error", ErrorCode: "unknown_command"}, fmt.Errorf("command %s not supported", cmd)
	}
}

func (m *Module) add(args core.Args) (core.Response, error) {
	a, err := args.Int("a")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	b, err := args.Int("b")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	return core.Response{Status: "ok", Data: a + b}, nil
}

func (m *Module) multiply(args core.Args) (core.Response, error) {
	a, err := args.Float("a")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	b, err := args.Float("b")
	if err != nil {
		return core.Response{Status: "error", ErrorCode: "invalid_arguments"}, err
	}
	return core.Response{Status: "ok", Data: a * b}, nil
}
