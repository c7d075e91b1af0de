package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Exec.TimeoutSeconds != 30 {
		t.Fatalf("default exec timeout = %d, want 30", cfg.Exec.TimeoutSeconds)
	}
	if cfg.Files.MaxReadLines != 100 {
		t.Fatalf("default max read lines = %d, want 100", cfg.Files.MaxReadLines)
	}
	if cfg.Files.MaxSearchResults != 50 {
		t.Fatalf("default max search results = %d, want 50", cfg.Files.MaxSearchResults)
	}
	if cfg.Web.Enabled {
		t.Fatalf("web transport must be disabled by default")
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devmcp.yaml")
	data := []byte("server:\n  name: custom\nexec:\n  timeout_seconds: 5\nsecurity:\n  disabled_tools: [run_command]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Name != "custom" {
		t.Fatalf("server name = %q, want custom", cfg.Server.Name)
	}
	if cfg.Exec.TimeoutSeconds != 5 {
		t.Fatalf("exec timeout = %d, want 5", cfg.Exec.TimeoutSeconds)
	}
	if len(cfg.Security.DisabledTools) != 1 || cfg.Security.DisabledTools[0] != "run_command" {
		t.Fatalf("disabled tools = %#v", cfg.Security.DisabledTools)
	}
	// Незатронутые секции сохраняют значения по умолчанию.
	if cfg.Files.MaxReadLines != 100 {
		t.Fatalf("max read lines = %d, want default 100", cfg.Files.MaxReadLines)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MCP_SERVER_NAME", "env-name")
	t.Setenv("COMMAND_TIMEOUT_SECONDS", "7")
	t.Setenv("ENABLE_METRICS", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Name != "env-name" {
		t.Fatalf("server name = %q, want env-name", cfg.Server.Name)
	}
	if cfg.Exec.TimeoutSeconds != 7 {
		t.Fatalf("exec timeout = %d, want 7", cfg.Exec.TimeoutSeconds)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("metrics must be enabled via ENABLE_METRICS")
	}
}

func TestEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("COMMAND_TIMEOUT_SECONDS", "not-a-number")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Exec.TimeoutSeconds != 30 {
		t.Fatalf("exec timeout = %d, want default 30", cfg.Exec.TimeoutSeconds)
	}
}
