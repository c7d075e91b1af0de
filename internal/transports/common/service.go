package common

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cast"

	"devmcp/internal/core"
	"devmcp/internal/storage"
)

var (
	errUnknownTool = errors.New("unknown tool")
	errBadArgument = errors.New("bad argument")
	errRateLimited = errors.New("rate limit exceeded")
)

// Service объединяет общий пайплайн tool->policy->ratelimit->registry->audit.
// Каждый транспорт держит свой экземпляр со своим Source.
type Service struct {
	Source      string
	Registry    *core.Registry
	Policy      core.Authorizer
	RateLimiter *RateLimiter
	AuditSink   AuditSink
	Log         *slog.Logger
}

// ExecuteTool проводит вызов инструмента через весь пайплайн.
func (s *Service) ExecuteTool(ctx context.Context, subjectID, tool string, args core.Args) (core.Response, error) {
	binding, ok := s.Registry.Lookup(tool)
	if !ok {
		return core.Response{Status: "error", ErrorCode: "tool_not_found"}, fmt.Errorf("%s: %w", tool, errUnknownTool)
	}
	subject := core.Subject{Source: s.Source, ID: subjectID}
	action := core.Action{Module: binding.Module, Tool: tool}
	if s.Policy != nil {
		if err := s.Policy.Authorize(subject, action); err != nil {
			s.writeAudit(ctx, subject, action, "denied", args, 0)
			return core.Response{Status: "error", ErrorCode: "access_denied"}, err
		}
	}
	if s.RateLimiter != nil {
		if !s.RateLimiter.AllowCall(s.Source, tool, time.Now()) {
			s.writeAudit(ctx, subject, action, "rate_limited", args, 0)
			return core.Response{Status: "error", ErrorCode: "rate_limited"}, errRateLimited
		}
	}

	start := time.Now()
	resp, execErr := s.Registry.Execute(ctx, binding.Module, tool, args)
	elapsed := time.Since(start)

	status := "ok"
	if execErr != nil || resp.Status == "error" {
		status = "error"
	}
	s.writeAudit(ctx, subject, action, status, args, elapsed.Milliseconds())
	return resp, execErr
}

func (s *Service) writeAudit(ctx context.Context, subject core.Subject, action core.Action, status string, args core.Args, durationMS int64) {
	if s.AuditSink == nil {
		return
	}
	err := s.AuditSink.Write(ctx, storage.AuditEvent{
		Subject:    subject.ID,
		Tool:       action.Tool,
		Source:     subject.Source,
		Status:     status,
		RequestID:  newRequestID(),
		Payload:    buildAuditPayload(action.Module, action.Tool, args),
		DurationMS: durationMS,
	})
	if err != nil && s.Log != nil {
		s.Log.Warn("audit write failed", "tool", action.Tool, "error", err)
	}
}

// ParseCallArgs переводит аргументы вида key=value в типизированные Args
// согласно объявлению инструмента. Формат CLI-вызова: call <tool> k=v ...
func ParseCallArgs(spec core.CommandSpec, kvs []string) (core.Args, error) {
	types := make(map[string]string, len(spec.Params))
	for _, p := range spec.Params {
		types[p.Name] = p.Type
	}

	args := make(core.Args, len(kvs))
	for _, kv := range kvs {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q: %w", kv, errBadArgument)
		}
		typ, known := types[key]
		if !known {
			return nil, fmt.Errorf("tool %s has no parameter %q: %w", spec.Name, key, errBadArgument)
		}
		switch typ {
		case "number", "integer":
			n, err := cast.ToFloat64E(value)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", key, errBadArgument)
			}
			args[key] = n
		case "boolean":
			b, err := cast.ToBoolE(value)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", key, errBadArgument)
			}
			args[key] = b
		default:
			args[key] = value
		}
	}
	return args, nil
}
