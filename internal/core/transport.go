package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var errTransportExists = errors.New("transport already registered")

// TransportAdapter определяет жизненный цикл входного транспорта.
type TransportAdapter interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// TransportManager управляет запуском и остановкой транспортов.
// Транспорты стартуют в порядке регистрации и останавливаются в обратном.
type TransportManager struct {
	mu    sync.Mutex
	names map[string]struct{}
	order []TransportAdapter
}

// NewTransportManager создает пустой менеджер транспортов.
func NewTransportManager() *TransportManager {
	return &TransportManager{names: make(map[string]struct{})}
}

// Register добавляет транспорт; имена должны быть уникальны.
func (m *TransportManager) Register(adapter TransportAdapter) error {
	if adapter == nil {
		return fmt.Errorf("transport is nil: %w", errInvalidArguments)
	}
	name := adapter.Name()
	if name == "" {
		return fmt.Errorf("transport name is empty: %w", errInvalidArguments)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.names[name]; exists {
		return fmt.Errorf("%s: %w", name, errTransportExists)
	}
	m.names[name] = struct{}{}
	m.order = append(m.order, adapter)
	return nil
}

// StartAll запускает все зарегистрированные транспорты.
func (m *TransportManager) StartAll(ctx context.Context) error {
	for _, tr := range m.snapshot() {
		if err := tr.Start(ctx); err != nil {
			return fmt.Errorf("start transport %s: %w", tr.Name(), err)
		}
	}
	return nil
}

// StopAll останавливает транспорты в обратном порядке регистрации.
func (m *TransportManager) StopAll(ctx context.Context) error {
	list := m.snapshot()
	var firstErr error
	for i := len(list) - 1; i >= 0; i-- {
		if err := list[i].Stop(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("stop transport %s: %w", list[i].Name(), err)
		}
	}
	return firstErr
}

func (m *TransportManager) snapshot() []TransportAdapter {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]TransportAdapter, len(m.order))
	copy(list, m.order)
	return list
}
