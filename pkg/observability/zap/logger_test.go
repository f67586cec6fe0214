package zap

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/theory-cloud/zonetheory/pkg/observability"
)

func TestZapLogger_SanitizesMessageAndFields(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger, err := NewZapLogger(observability.LoggerConfig{}, WithZapLogger(ubzap.New(core)))
	require.NoError(t, err)

	logger.Info("delegate\r\nzone", map[string]any{
		"session_token": "secret",
		"zone":          "example.com\n",
	})

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "delegatezone", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "[REDACTED]", ctx["session_token"])
	assert.Equal(t, "example.com", ctx["zone"])
}

func TestZapLogger_RequestScope(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger, err := NewZapLogger(observability.LoggerConfig{}, WithZapLogger(ubzap.New(core)))
	require.NoError(t, err)

	logger.WithRequestID("req-1").WithStackID("stack").WithLogicalResourceID("Record").Warn("retrying")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "req-1", ctx["request_id"])
	assert.Equal(t, "stack", ctx["stack_id"])
	assert.Equal(t, "Record", ctx["logical_resource_id"])
	assert.EqualValues(t, 1, logger.GetStats().EntriesLogged)
}

func TestZapLogger_JSONWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewZapLogger(observability.LoggerConfig{Format: "json", Level: "warn"}, WithWriter(zapcore.AddSync(&buf)))
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Error("shown", map[string]any{"record_type": "NS"})
	require.NoError(t, logger.Flush(context.Background()))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "NS", line["record_type"])
}

func TestZapLogger_RejectsBadConfig(t *testing.T) {
	_, err := NewZapLogger(observability.LoggerConfig{Level: "loud"})
	require.Error(t, err)
	_, err = NewZapLogger(observability.LoggerConfig{Format: "xml"})
	require.Error(t, err)
}

func TestZapLogger_CloseStopsLogging(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger, err := NewZapLogger(observability.LoggerConfig{}, WithZapLogger(ubzap.New(core)))
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	assert.False(t, logger.IsHealthy())
	logger.Info("after close")
	assert.Empty(t, observed.All())
}
