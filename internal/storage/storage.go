package storage

import (
	"context"
	"time"
)

// MetricRecord сохраняет снимок метрик.
type MetricRecord struct {
	Module  string
	Payload []byte
	TS      time.Time
}

// AuditEvent фиксирует вызов инструмента через транспорт.
type AuditEvent struct {
	Subject    string
	Tool       string
	Source     string
	Status     string
	RequestID  string
	Payload    []byte
	DurationMS int64
	TS         time.Time
}

// AuditQuery задает фильтры выборки аудита.
type AuditQuery struct {
	From  time.Time
	To    time.Time
	Tool  string
	Limit int
}

// Store описывает операции хранилища.
type Store interface {
	SaveMetric(ctx context.Context, rec MetricRecord) error
	SaveAudit(ctx context.Context, ev AuditEvent) error
	LatestMetric(ctx context.Context, module string) (MetricRecord, error)
	QueryAudit(ctx context.Context, q AuditQuery) ([]AuditEvent, error)
	PruneBefore(ctx context.Context, cutoff time.Time) error
	Close() error
}
