package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	errProviderExists   = errors.New("provider already registered")
	errUnknownProvider  = errors.New("unknown provider")
	errToolExists       = errors.New("tool already registered")
	errUnknownTool      = errors.New("unknown tool")
	errInvalidArguments = errors.New("invalid arguments")
)

// ToolBinding связывает плоское имя инструмента с модулем-владельцем.
type ToolBinding struct {
	Module string
	Spec   CommandSpec
}

// Registry хранит зарегистрированные модули и выполняет инструменты.
// Имена инструментов уникальны во всем реестре, не только внутри модуля.
type Registry struct {
	providers map[string]CommandProvider
	tools     map[string]ToolBinding
}

// NewRegistry создает пустой реестр модулей.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]CommandProvider),
		tools:     make(map[string]ToolBinding),
	}
}

// Register добавляет модуль и индексирует его инструменты.
func (r *Registry) Register(ctx context.Context, provider CommandProvider) error {
	if provider == nil {
		return fmt.Errorf("provider is nil: %w", errInvalidArguments)
	}
	name := provider.Name()
	if name == "" {
		return fmt.Errorf("provider name is empty: %w", errInvalidArguments)
	}
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("%s: %w", name, errProviderExists)
	}
	for _, spec := range provider.Commands() {
		if spec.Name == "" {
			return fmt.Errorf("module %s declares unnamed tool: %w", name, errInvalidArguments)
		}
		if prev, exists := r.tools[spec.Name]; exists {
			return fmt.Errorf("%s (modules %s and %s): %w", spec.Name, prev.Module, name, errToolExists)
		}
	}
	if err := provider.Init(ctx); err != nil {
		return fmt.Errorf("init %s: %w", name, err)
	}
	r.providers[name] = provider
	for _, spec := range provider.Commands() {
		r.tools[spec.Name] = ToolBinding{Module: name, Spec: spec}
	}
	return nil
}

// Execute вызывает модуль по имени.
func (r *Registry) Execute(ctx context.Context, module, cmd string, args Args) (Response, error) {
	prov, ok := r.providers[module]
	if !ok {
		return Response{Status: "error", ErrorCode: "module_not_found"}, fmt.Errorf("%s: %w", module, errUnknownProvider)
	}
	return prov.Execute(ctx, cmd, args)
}

// ExecuteTool вызывает инструмент по плоскому имени.
func (r *Registry) ExecuteTool(ctx context.Context, tool string, args Args) (Response, error) {
	binding, ok := r.tools[tool]
	if !ok {
		return Response{Status: "error", ErrorCode: "tool_not_found"}, fmt.Errorf("%s: %w", tool, errUnknownTool)
	}
	return r.providers[binding.Module].Execute(ctx, tool, args)
}

// Lookup возвращает binding инструмента по имени.
func (r *Registry) Lookup(tool string) (ToolBinding, bool) {
	binding, ok := r.tools[tool]
	return binding, ok
}

// Tools возвращает все инструменты, отсортированные по имени.
func (r *Registry) Tools() []ToolBinding {
	list := make([]ToolBinding, 0, len(r.tools))
	for _, binding := range r.tools {
		list = append(list, binding)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Spec.Name < list[j].Spec.Name })
	return list
}

// Providers возвращает список зарегистрированных модулей.
func (r *Registry) Providers() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
