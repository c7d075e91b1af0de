package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
)

// StdioAdapter обслуживает MCP-протокол на stdin/stdout процесса.
type StdioAdapter struct {
	srv    *server.MCPServer
	log    *slog.Logger
	in     io.Reader
	out    io.Writer
	cancel context.CancelFunc
	done   chan struct{}
}

// NewStdioAdapter создает адаптер поверх собранного MCP-сервера.
func NewStdioAdapter(srv *server.MCPServer, log *slog.Logger) *StdioAdapter {
	return &StdioAdapter{
		srv:  srv,
		log:  log,
		in:   os.Stdin,
		out:  os.Stdout,
		done: make(chan struct{}),
	}
}

func (a *StdioAdapter) Name() string { return "stdio" }

// Start запускает обслуживание протокола в фоне.
func (a *StdioAdapter) Start(ctx context.Context) error {
	childCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	stdio := server.NewStdioServer(a.srv)
	go func() {
		defer close(a.done)
		if err := stdio.Listen(childCtx, a.in, a.out); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Error("stdio transport stopped", "error", err)
		}
	}()
	a.log.Info("stdio transport started")
	return nil
}

// Stop прерывает обслуживание и ждет завершения цикла чтения.
func (a *StdioAdapter) Stop(ctx context.Context) error {
	if a.cancel == nil {
		return nil
	}
	a.cancel()
	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stdio stop: %w", ctx.Err())
	}
}

// Done закрывается, когда клиент отсоединился (EOF на stdin) либо
// цикл чтения завершился по другой причине.
func (a *StdioAdapter) Done() <-chan struct{} {
	return a.done
}
