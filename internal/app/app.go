package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"devmcp/internal/config"
	"devmcp/internal/core"
	"devmcp/internal/modules/files"
	"devmcp/internal/modules/mathtools"
	"devmcp/internal/modules/system"
	"devmcp/internal/shell"
	"devmcp/internal/storage"
	"devmcp/internal/storage/sqlite"
	"devmcp/internal/sysinfo"
	"devmcp/internal/transports/common"
	"devmcp/internal/transports/mcpserver"
	"devmcp/internal/transports/web"
)

// App — композиционный корень: реестр модулей, хранилище, транспорты.
type App struct {
	Cfg config.Config
	Log *slog.Logger

	registry  *core.Registry
	store     *sqlite.Store
	policy    core.Authorizer
	limiter   *common.RateLimiter
	stdio     *mcpserver.StdioAdapter
	manager   *core.TransportManager
	scheduler *core.Scheduler
}

// New собирает приложение из конфигурации. Пустой sqlite.path отключает
// персистентность: аудит и метрики просто не пишутся.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	a := &App{Cfg: cfg, Log: log}

	a.registry = core.NewRegistry()
	executor := shell.NewExecutor(
		time.Duration(cfg.Exec.TimeoutSeconds)*time.Second,
		cfg.Exec.MaxOutputKB*1024,
		log,
	)
	providers := []core.CommandProvider{
		mathtools.New(),
		files.New(files.Limits{
			MaxReadLines:     cfg.Files.MaxReadLines,
			MaxFileSizeMB:    cfg.Files.MaxFileSizeMB,
			MaxSearchResults: cfg.Files.MaxSearchResults,
		}),
		system.New(executor),
	}
	for _, p := range providers {
		if err := a.registry.Register(ctx, p); err != nil {
			return nil, fmt.Errorf("register module: %w", err)
		}
	}

	if cfg.SQLite.Path != "" {
		store, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		a.store = store
	}

	a.policy = core.NewDenylistPolicy(cfg.Security.DisabledTools)
	if cfg.Security.RateLimitPerSec > 0 {
		a.limiter = common.NewRateLimiter(cfg.Security.RateLimitPerSec, time.Second)
	}

	srv := mcpserver.BuildServer(cfg.Server.Name, cfg.Server.Version, a.Service("mcp"))
	a.stdio = mcpserver.NewStdioAdapter(srv, log)

	a.manager = core.NewTransportManager()
	if err := a.manager.Register(a.stdio); err != nil {
		return nil, err
	}
	if cfg.Web.Enabled {
		webAdapter := web.New(srv, cfg.Web.ListenAddr,
			time.Duration(cfg.Web.ShutdownTimeoutS)*time.Second, log)
		if err := a.manager.Register(webAdapter); err != nil {
			return nil, err
		}
	}

	a.buildScheduler()
	return a, nil
}

// Service возвращает пайплайн выполнения инструментов для транспорта.
func (a *App) Service(source string) *common.Service {
	svc := &common.Service{
		Source:      source,
		Registry:    a.registry,
		Policy:      a.policy,
		RateLimiter: a.limiter,
		Log:         a.Log,
	}
	if a.store != nil {
		svc.AuditSink = a.store
	}
	return svc
}

// Registry открывает доступ к реестру модулей (CLI-команды).
func (a *App) Registry() *core.Registry { return a.registry }

// Store возвращает хранилище либо nil, если персистентность выключена.
func (a *App) Store() storage.Store {
	if a.store == nil {
		return nil
	}
	return a.store
}

func (a *App) buildScheduler() {
	if a.store == nil {
		return
	}
	interval := time.Duration(a.Cfg.Metrics.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	sched := core.NewScheduler(interval, a.Log)

	if a.Cfg.Metrics.Enabled {
		sched.Add("metrics", func(ctx context.Context) error {
			snap, err := sysinfo.Snapshot(ctx)
			if err != nil {
				return err
			}
			payload, err := sqlite.MarshalPayload(snap)
			if err != nil {
				return err
			}
			return a.store.SaveMetric(ctx, storage.MetricRecord{Module: "sysinfo", Payload: payload})
		})
	}
	if days := a.Cfg.SQLite.RetentionDays; days > 0 {
		sched.Add("retention", func(ctx context.Context) error {
			cutoff := time.Now().UTC().AddDate(0, 0, -days)
			return a.store.PruneBefore(ctx, cutoff)
		})
	}
	a.scheduler = sched
}

// Serve запускает транспорты и блокируется до отмены контекста либо
// отсоединения stdio-клиента.
func (a *App) Serve(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.manager.StartAll(runCtx); err != nil {
		return err
	}
	if a.scheduler != nil {
		go a.scheduler.Start(runCtx)
	}
	a.Log.Info("server started",
		"name", a.Cfg.Server.Name,
		"version", a.Cfg.Server.Version,
		"modules", a.registry.Providers(),
	)

	select {
	case <-runCtx.Done():
	case <-a.stdio.Done():
		a.Log.Info("stdio client disconnected")
	}
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	if err := a.manager.StopAll(stopCtx); err != nil {
		a.Log.Warn("transport shutdown", "error", err)
	}
	return nil
}

// Close освобождает ресурсы приложения.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
