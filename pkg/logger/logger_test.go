package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestLevelFromConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)
	log.Debug("visible")
	if buf.Len() == 0 {
		t.Fatalf("debug record must be emitted at debug level")
	}

	buf.Reset()
	log = NewWithWriter("warn", &buf)
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info record must be dropped at warn level: %s", buf.String())
	}
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("LOG_LEVEL env must win over config level")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)
	log.Info("hello", "tool", "run_command")

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["msg"] != "hello" || rec["tool"] != "run_command" {
		t.Fatalf("unexpected record: %#v", rec)
	}
}
