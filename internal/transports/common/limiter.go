package common

import (
	"sync"
	"time"
)

// RateLimiter ограничивает частоту вызовов инструмента в скользящем окне.
// Окно считается отдельно на пару транспорт/инструмент, чтобы плотный
// поток run_command не блокировал остальные инструменты.
type RateLimiter struct {
	mu      sync.Mutex
	maxCall int
	window  time.Duration
	calls   map[string][]time.Time
}

// NewRateLimiter создает limiter с лимитом вызовов в окне.
func NewRateLimiter(maxCalls int, window time.Duration) *RateLimiter {
	if maxCalls <= 0 {
		maxCalls = 1
	}
	if window <= 0 {
		window = time.Second
	}
	return &RateLimiter{
		maxCall: maxCalls,
		window:  window,
		calls:   make(map[string][]time.Time),
	}
}

// AllowCall возвращает true, если вызов инструмента укладывается в лимит
// для данного транспорта.
func (l *RateLimiter) AllowCall(source, tool string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := source + ":" + tool
	cutoff := now.Add(-l.window)
	history := l.calls[key]
	kept := history[:0]
	for _, ts := range history {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.maxCall {
		l.calls[key] = kept
		return false
	}
	kept = append(kept, now)
	l.calls[key] = kept
	return true
}
