package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"time"
)

// Request описывает один вызов команды.
type Request struct {
	Command    string
	WorkingDir string
}

// Result — структурированный итог выполнения команды. Ровно одна из двух форм:
// при Error == "" заполнены exit_code/stdout/stderr/success, при Error != ""
// наружу уходят только command, working_dir и error (см. MarshalJSON).
type Result struct {
	Command         string `json:"command"`
	WorkingDir      string `json:"working_dir"`
	ExitCode        int    `json:"exit_code"`
	Stdout          string `json:"stdout"`
	Stderr          string `json:"stderr"`
	Success         bool   `json:"success"`
	StdoutTruncated bool   `json:"stdout_truncated,omitempty"`
	StderrTruncated bool   `json:"stderr_truncated,omitempty"`
	Error           string `json:"error,omitempty"`
}

// MarshalJSON прячет exit_code и потоки, когда команда не дала результата:
// клиенты различают исходы по наличию поля error либо exit_code.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Error != "" {
		return marshalMap(map[string]interface{}{
			"command":     r.Command,
			"working_dir": r.WorkingDir,
			"error":       r.Error,
		})
	}
	out := map[string]interface{}{
		"command":     r.Command,
		"working_dir": r.WorkingDir,
		"exit_code":   r.ExitCode,
		"stdout":      r.Stdout,
		"stderr":      r.Stderr,
		"success":     r.Success,
	}
	if r.StdoutTruncated {
		out["stdout_truncated"] = true
	}
	if r.StderrTruncated {
		out["stderr_truncated"] = true
	}
	return marshalMap(out)
}

func marshalMap(m map[string]interface{}) ([]byte, error) {
	return json.Marshal(m)
}

// waitDelay ограничивает ожидание закрытия пайпов после выхода команды
// либо ее принудительного завершения.
const waitDelay = time.Second

// Executor запускает shell-команды с жестким таймаутом и лимитом вывода.
type Executor struct {
	timeout   time.Duration
	maxStream int
	log       *slog.Logger
}

// NewExecutor создает executor. maxStreamBytes <= 0 отключает лимит вывода.
func NewExecutor(timeout time.Duration, maxStreamBytes int, log *slog.Logger) *Executor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Executor{timeout: timeout, maxStream: maxStreamBytes, log: log}
}

// Run выполняет команду синхронно. Любой сбой — таймаут, невозможность
// запуска — возвращается внутри Result; error в сигнатуре не используется
// для исходов самой команды.
func (e *Executor) Run(ctx context.Context, req Request) Result {
	wd := req.WorkingDir
	if wd == "" {
		wd = "."
	}
	res := Result{Command: req.Command, WorkingDir: wd}
	if req.Command == "" {
		res.Error = "command is empty"
		return res
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := buildCommand(runCtx, req.Command)
	cmd.Dir = wd
	// Потомки наследуют пайпы вывода; без WaitDelay фоновый процесс
	// держал бы Run заблокированным после выхода самой команды.
	cmd.WaitDelay = waitDelay
	configureProcAttrs(cmd)

	stdout := newCapBuffer(e.maxStream)
	stderr := newCapBuffer(e.maxStream)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	// Таймаут — это только насильственное завершение по дедлайну.
	// Команда, успевшая выйти сама, сохраняет свой исход, даже если
	// потомки держали пайпы дольше дедлайна.
	procExited := cmd.ProcessState != nil && cmd.ProcessState.Exited()
	switch {
	case err == nil:
	case errors.Is(err, exec.ErrWaitDelay):
		// Команда вышла с кодом 0; вывод потомков после выхода отброшен.
	case procExited:
		res.ExitCode = cmd.ProcessState.ExitCode()
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.Error = fmt.Sprintf("command timed out after %g seconds", e.timeout.Seconds())
	default:
		res.Error = err.Error()
	}

	if res.Error == "" {
		res.Stdout = stdout.String()
		res.Stderr = stderr.String()
		res.StdoutTruncated = stdout.Truncated()
		res.StderrTruncated = stderr.Truncated()
		res.Success = res.ExitCode == 0
	}

	e.log.Info("command finished",
		"command", req.Command,
		"working_dir", wd,
		"exit_code", res.ExitCode,
		"success", res.Success,
		"error", res.Error,
		"duration_ms", elapsed.Milliseconds(),
	)
	return res
}

// buildCommand отдает разбор командной строки системному shell.
func buildCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", command)
	}
	return exec.CommandContext(ctx, "sh", "-c", command)
}

// capBuffer ограничивает захват потока сверху; излишек отбрасывается.
type capBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newCapBuffer(limit int) *capBuffer {
	return &capBuffer{limit: limit}
}

func (b *capBuffer) Write(p []byte) (int, error) {
	if b.limit <= 0 {
		return b.buf.Write(p)
	}
	remain := b.limit - b.buf.Len()
	if remain <= 0 {
		b.truncated = true
		return len(p), nil
	}
	if len(p) > remain {
		b.truncated = true
		_, _ = b.buf.Write(p[:remain])
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *capBuffer) String() string { return b.buf.String() }

func (b *capBuffer) Truncated() bool { return b.truncated }
