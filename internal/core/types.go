package core

import "context"

// Response описывает унифицированный результат выполнения инструмента.
type Response struct {
	Status    string      `json:"status"`
	Data      interface{} `json:"data,omitempty"`
	ErrorCode string      `json:"error_code,omitempty"`
}

// ParamSpec описывает один параметр инструмента.
type ParamSpec struct {
	Name        string
	Type        string // string | number | integer | boolean
	Description string
	Required    bool
	Default     interface{}
}

// CommandSpec описывает инструмент, публикуемый модулем.
type CommandSpec struct {
	Name        string
	Description string
	Params      []ParamSpec
}

// CommandProvider определяет контракт для модулей.
type CommandProvider interface {
	Name() string
	Init(ctx context.Context) error
	Commands() []CommandSpec
	Execute(ctx context.Context, cmd string, args Args) (Response, error)
}
