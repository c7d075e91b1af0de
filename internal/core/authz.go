package core

import "fmt"

// Subject описывает источник вызова и его идентификатор.
type Subject struct {
	Source string
	ID     string
}

// Action описывает целевой инструмент.
type Action struct {
	Module string
	Tool   string
}

// Authorizer отвечает за решение доступа к действию.
type Authorizer interface {
	Authorize(subject Subject, action Action) error
}

// DenylistPolicy запрещает инструменты по имени и разрешает все остальные.
// У локального MCP-сервера один доверенный клиент; политика нужна, чтобы
// оператор мог выключить отдельные инструменты (например run_command).
type DenylistPolicy struct {
	disabled map[string]struct{}
}

// NewDenylistPolicy создает политику из списка отключенных инструментов.
func NewDenylistPolicy(disabledTools []string) *DenylistPolicy {
	disabled := make(map[string]struct{}, len(disabledTools))
	for _, name := range disabledTools {
		if name == "" {
			continue
		}
		disabled[name] = struct{}{}
	}
	return &DenylistPolicy{disabled: disabled}
}

// Authorize возвращает ошибку, если инструмент отключен конфигурацией.
func (p *DenylistPolicy) Authorize(subject Subject, action Action) error {
	if _, ok := p.disabled[action.Tool]; ok {
		return fmt.Errorf("tool %s is disabled", action.Tool)
	}
	_ = subject
	return nil
}
