package core

import (
	"fmt"
	"math"
)

// Args хранит аргументы вызова инструмента в виде, пришедшем от транспорта.
type Args map[string]interface{}

// String возвращает строковый аргумент либо значение по умолчанию.
func (a Args) String(key, def string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %s: expected string, got %T: %w", key, v, errInvalidArguments)
	}
	return s, nil
}

// RequiredString возвращает обязательный непустой строковый аргумент.
func (a Args) RequiredString(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", fmt.Errorf("argument %s is required: %w", key, errInvalidArguments)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %s: expected string, got %T: %w", key, v, errInvalidArguments)
	}
	if s == "" {
		return "", fmt.Errorf("argument %s is empty: %w", key, errInvalidArguments)
	}
	return s, nil
}

// Float возвращает числовой аргумент. JSON-декодеры отдают числа как float64.
func (a Args) Float(key string) (float64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("argument %s is required: %w", key, errInvalidArguments)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("argument %s: expected number, got %T: %w", key, v, errInvalidArguments)
	}
}

// Int возвращает целочисленный аргумент; дробное значение считается ошибкой.
func (a Args) Int(key string) (int, error) {
	f, err := a.Float(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("argument %s: expected integer, got %v: %w", key, f, errInvalidArguments)
	}
	return int(f), nil
}

// IntDefault возвращает целочисленный аргумент либо значение по умолчанию.
func (a Args) IntDefault(key string, def int) (int, error) {
	if _, ok := a[key]; !ok {
		return def, nil
	}
	return a.Int(key)
}
