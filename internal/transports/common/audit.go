package common

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"devmcp/internal/core"
	"devmcp/internal/storage"
)

// AuditSink записывает аудиторные события.
type AuditSink interface {
	Write(ctx context.Context, ev storage.AuditEvent) error
}

func newRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("req-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}

func buildAuditPayload(module, tool string, args core.Args) []byte {
	payload, _ := json.Marshal(map[string]interface{}{
		"module": module,
		"tool":   tool,
		"args":   args,
	})
	return payload
}
