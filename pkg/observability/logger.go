package observability

import (
	"context"
	"os"
	"strings"
	"time"
)

// Environment variables read by LoggerConfigFromEnv.
const (
	EnvLogLevel  = "ZONETHEORY_LOG_LEVEL"
	EnvLogFormat = "ZONETHEORY_LOG_FORMAT"
)

type SanitizerFunc func(key string, value any) any

// ErrorNotifier receives error-level entries after they are written.
type ErrorNotifier interface {
	Notify(ctx context.Context, entry LogEntry) error
}

// LogEntry represents a structured log entry.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`

	RequestID         string `json:"request_id,omitempty"`
	StackID           string `json:"stack_id,omitempty"`
	LogicalResourceID string `json:"logical_resource_id,omitempty"`
}

// StructuredLogger is the logging surface shared by synthesis, lookups, custom-resource
// handlers and the CLI (message + map fields).
type StructuredLogger interface {
	Debug(message string, fields ...map[string]any)
	Info(message string, fields ...map[string]any)
	Warn(message string, fields ...map[string]any)
	Error(message string, fields ...map[string]any)

	WithField(key string, value any) StructuredLogger
	WithFields(fields map[string]any) StructuredLogger

	// Scope entries to a CloudFormation request.
	WithRequestID(requestID string) StructuredLogger
	WithStackID(stackID string) StructuredLogger
	WithLogicalResourceID(logicalResourceID string) StructuredLogger

	Flush(ctx context.Context) error
	Close() error
	IsHealthy() bool
	GetStats() LoggerStats
}

type LoggerStats struct {
	LastFlush      time.Time     `json:"last_flush"`
	LastError      string        `json:"last_error,omitempty"`
	EntriesLogged  int64         `json:"entries_logged"`
	EntriesDropped int64         `json:"entries_dropped"`
	FlushCount     int64         `json:"flush_count"`
	ErrorCount     int64         `json:"error_count"`
	AverageFlush   time.Duration `json:"average_flush_time"`
}

// LoggerConfig configures logger implementations.
type LoggerConfig struct {
	Format       string `json:"format"`
	Level        string `json:"level"`
	EnableStack  bool   `json:"enable_stack"`
	EnableCaller bool   `json:"enable_caller"`
}

// LoggerConfigFromEnv reads ZONETHEORY_LOG_LEVEL and ZONETHEORY_LOG_FORMAT.
//
// Without an explicit format, Lambda gets json and everything else console.
func LoggerConfigFromEnv() LoggerConfig {
	cfg := LoggerConfig{
		Level:  strings.TrimSpace(os.Getenv(EnvLogLevel)),
		Format: strings.TrimSpace(os.Getenv(EnvLogFormat)),
	}
	if cfg.Format == "" {
		if IsLambda() {
			cfg.Format = "json"
		} else {
			cfg.Format = "console"
		}
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	cfg.EnableCaller = strings.EqualFold(cfg.Level, "debug")
	return cfg
}

// IsLambda reports whether the process runs inside AWS Lambda.
func IsLambda() bool {
	for _, key := range []string{"AWS_LAMBDA_FUNCTION_NAME", "AWS_LAMBDA_RUNTIME_API", "LAMBDA_TASK_ROOT"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}
