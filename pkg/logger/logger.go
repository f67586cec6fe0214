package logger

import (
	"context"
	"sync"

	"github.com/theory-cloud/zonetheory/pkg/observability"
	obszap "github.com/theory-cloud/zonetheory/pkg/observability/zap"
	"github.com/theory-cloud/zonetheory/pkg/sanitization"
)

var (
	globalMu     sync.RWMutex
	globalLogger observability.StructuredLogger = observability.NewNoOpLogger()
)

// Logger returns the global structured logger singleton.
func Logger() observability.StructuredLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetLogger replaces the global structured logger singleton.
//
// Passing nil resets the logger to a no-op implementation.
func SetLogger(next observability.StructuredLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if next == nil {
		globalLogger = observability.NewNoOpLogger()
		return
	}
	globalLogger = next
}

// InitFromEnv installs a zap logger configured from ZONETHEORY_LOG_LEVEL and
// ZONETHEORY_LOG_FORMAT. Error entries also go to SNS when
// ZONETHEORY_ERROR_NOTIFICATIONS_TOPIC_ARN is set. On a bad configuration the
// current logger stays in place.
func InitFromEnv() (observability.StructuredLogger, error) {
	next, err := obszap.NewZapLogger(
		observability.LoggerConfigFromEnv(),
		obszap.WithEnvironmentErrorNotifications(context.Background(), obszap.DefaultEnvironmentErrorNotifications()),
	)
	if err != nil {
		return Logger(), err
	}
	SetLogger(next)
	return next, nil
}

// SanitizeLogString removes control characters that could enable log forging.
func SanitizeLogString(value string) string {
	return sanitization.SanitizeLogString(value)
}

// SanitizeFieldValue applies deterministic redaction rules to a field value.
func SanitizeFieldValue(key string, value any) any {
	return sanitization.SanitizeFieldValue(key, value)
}

// SanitizeJSON returns a sanitized JSON string for safe logging.
func SanitizeJSON(jsonBytes []byte) string {
	return sanitization.SanitizeJSON(jsonBytes)
}
