// pkg/cli/context.go

package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RuntimeContext carries the per-invocation context and scoped logger
// through a command's lifetime. Each CLI invocation is a fresh process,
// so a single context is created in Wrap and torn down in End.
type RuntimeContext struct {
	Ctx       context.Context
	Log       *zap.Logger
	Timestamp time.Time
	Command   string
}

// NewContext builds a RuntimeContext for the named command with a short
// trace ID attached to every log line it emits.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	traceID := uuid.New().String()[:8]
	logger := zap.L().With(
		zap.String("command", cmdName),
		zap.String("trace_id", traceID),
	).Named(cmdName)

	return &RuntimeContext{
		Ctx:       ctx,
		Log:       logger,
		Timestamp: time.Now(),
		Command:   cmdName,
	}
}

// End logs the command outcome. Called via defer from Wrap.
func (rc *RuntimeContext) End(errPtr *error) {
	duration := time.Since(rc.Timestamp)
	if *errPtr == nil {
		rc.Log.Debug("Command completed", zap.Duration("duration", duration))
	} else {
		rc.Log.Debug("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}
}
