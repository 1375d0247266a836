// Package deprecation logs deprecation warnings once per distinct message.
package deprecation

import (
	"sync"

	"go.uber.org/zap"
)

// Warner emits deprecation warnings through a zap logger.
type Warner struct {
	logger  *zap.Logger
	enabled bool
	seen    sync.Map
}

// NewWarner returns a Warner. A disabled Warner drops every message.
func NewWarner(logger *zap.Logger, enabled bool) *Warner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Warner{logger: logger, enabled: enabled}
}

// Warn logs msg at warn level unless it was already logged.
// Extra fields are attached to the first occurrence only.
func (w *Warner) Warn(msg string, fields ...zap.Field) {
	if !w.enabled {
		return
	}

	if _, loaded := w.seen.LoadOrStore(msg, struct{}{}); loaded {
		return
	}

	w.logger.Warn("Deprecation warning: "+msg, fields...)
}
