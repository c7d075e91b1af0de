package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"devmcp/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "devmcp.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSaveAndQueryAudit(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	ev := storage.AuditEvent{
		Subject:    "client",
		Tool:       "run_command",
		Source:     "mcp",
		Status:     "ok",
		RequestID:  "abc123",
		Payload:    []byte(`{"command":"echo hi"}`),
		DurationMS: 12,
	}
	if err := st.SaveAudit(ctx, ev); err != nil {
		t.Fatalf("save audit: %v", err)
	}

	events, err := st.QueryAudit(ctx, storage.AuditQuery{Tool: "run_command"})
	if err != nil {
		t.Fatalf("query audit: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	got := events[0]
	if got.Tool != "run_command" || got.Status != "ok" || got.DurationMS != 12 {
		t.Fatalf("unexpected event: %#v", got)
	}
	if got.TS.IsZero() {
		t.Fatalf("timestamp not parsed")
	}
}

func TestQueryAuditFilterMisses(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.SaveAudit(ctx, storage.AuditEvent{Tool: "read_file", Status: "ok"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	events, err := st.QueryAudit(ctx, storage.AuditQuery{Tool: "run_command"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestSaveAndLatestMetric(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	old := storage.MetricRecord{Module: "sysinfo", Payload: []byte(`{"n":1}`), TS: time.Now().UTC().Add(-time.Hour)}
	fresh := storage.MetricRecord{Module: "sysinfo", Payload: []byte(`{"n":2}`), TS: time.Now().UTC()}
	if err := st.SaveMetric(ctx, old); err != nil {
		t.Fatalf("save old: %v", err)
	}
	if err := st.SaveMetric(ctx, fresh); err != nil {
		t.Fatalf("save fresh: %v", err)
	}

	rec, err := st.LatestMetric(ctx, "sysinfo")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if string(rec.Payload) != `{"n":2}` {
		t.Fatalf("latest payload = %s", rec.Payload)
	}
}

func TestLatestMetricMissing(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.LatestMetric(context.Background(), "none"); err == nil {
		t.Fatalf("expected error for missing metric")
	}
}

func TestPruneBefore(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := st.SaveAudit(ctx, storage.AuditEvent{Tool: "old", TS: now.Add(-48 * time.Hour)}); err != nil {
		t.Fatalf("save old: %v", err)
	}
	if err := st.SaveAudit(ctx, storage.AuditEvent{Tool: "new", TS: now}); err != nil {
		t.Fatalf("save new: %v", err)
	}
	if err := st.SaveMetric(ctx, storage.MetricRecord{Module: "m", Payload: []byte("{}"), TS: now.Add(-48 * time.Hour)}); err != nil {
		t.Fatalf("save metric: %v", err)
	}

	if err := st.PruneBefore(ctx, now.Add(-24*time.Hour)); err != nil {
		t.Fatalf("prune: %v", err)
	}

	events, err := st.QueryAudit(ctx, storage.AuditQuery{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 || events[0].Tool != "new" {
		t.Fatalf("unexpected events after prune: %#v", events)
	}
	if _, err := st.LatestMetric(ctx, "m"); err == nil {
		t.Fatalf("expected pruned metric to be gone")
	}
}
