package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
)

// Adapter публикует тот же MCP-сервер по Streamable HTTP.
// Используется опционально, когда stdio-клиента недостаточно.
type Adapter struct {
	httpSrv         *server.StreamableHTTPServer
	log             *slog.Logger
	addr            string
	shutdownTimeout time.Duration
}

// New создает адаптер для указанного адреса.
func New(srv *server.MCPServer, addr string, shutdownTimeout time.Duration, log *slog.Logger) *Adapter {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 5 * time.Second
	}
	return &Adapter{
		httpSrv:         server.NewStreamableHTTPServer(srv),
		log:             log,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

func (a *Adapter) Name() string { return "web" }

// Start слушает адрес в фоне.
func (a *Adapter) Start(ctx context.Context) error {
	go func() {
		if err := a.httpSrv.Start(a.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("web transport stopped", "error", err)
		}
	}()
	a.log.Info("web transport started", "addr", a.addr)
	return nil
}

// Stop останавливает HTTP-сервер с ограничением по времени.
func (a *Adapter) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web shutdown: %w", err)
	}
	return nil
}
