package core

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job описывает периодическую задачу.
type Job func(ctx context.Context) error

// Scheduler запускает задачи с фиксированным интервалом.
type Scheduler struct {
	interval time.Duration
	log      *slog.Logger
	jobs     []namedJob
	wg       sync.WaitGroup
}

type namedJob struct {
	name string
	job  Job
}

// NewScheduler создает scheduler с заданным интервалом.
func NewScheduler(interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{interval: interval, log: log}
}

// Add добавляет именованную задачу в расписание.
func (s *Scheduler) Add(name string, job Job) {
	s.jobs = append(s.jobs, namedJob{name: name, job: job})
}

// Start запускает scheduler до отмены контекста.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	for {
		select {
		case <-ctx.Done():
			ticker.Stop()
			s.wg.Wait()
			return
		case <-ticker.C:
			for _, nj := range s.jobs {
				nj := nj
				s.wg.Add(1)
				go func() {
					defer s.wg.Done()
					if err := nj.job(ctx); err != nil {
						s.log.Error("scheduled job failed", "job", nj.name, "error", err)
					}
				}()
			}
		}
	}
}
