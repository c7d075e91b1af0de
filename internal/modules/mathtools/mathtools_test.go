package mathtools

import (
	"context"
	"testing"

	"devmcp/internal/core"
)

func TestAddNumbers(t *testing.T) {
	m := New()
	resp, err := m.Execute(context.Background(), "add_numbers", core.Args{"a": float64(2), "b": float64(3)})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.Status != "ok" || resp.Data != 5 {
		t.Fatalf("unexpected response: %#v", resp)
	}
}

func TestAddNumbersRejectsFraction(t *testing.T) {
	m := New()
	resp, err := m.Execute(context.Background(), "add_numbers", core.Args{"a": 1.5, "b": float64(1)})
	if err == nil {
		t.Fatalf("expected error for fractional integer argument")
	}
	if resp.ErrorCode != "invalid_arguments" {
		t.Fatalf("error code = %q", resp.ErrorCode)
	}
}

func TestMultiplyNumbers(t *testing.T) {
	m := New()
	resp, err := m.Execute(context.Background(), "multiply_numbers", core.Args{"a": 2.5, "b": float64(4)})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.Data != 10.0 {
		t.Fatalf("data = %v, want 10", resp.Data)
	}
}

func TestUnknownCommand(t *testing.T) {
	m := New()
	if _, err := m.Execute(context.Background(), "divide", nil); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}
