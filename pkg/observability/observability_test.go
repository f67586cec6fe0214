package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	require.NotNil(t, logger)
	assert.True(t, logger.IsHealthy())
	assert.Same(t, logger, logger.WithStackID("s").WithRequestID("r"))
	require.NoError(t, logger.Flush(context.Background()))
	require.NoError(t, logger.Close())
}

func TestTestLogger_ScopesRequest(t *testing.T) {
	logger := NewTestLogger()
	scoped := logger.
		WithRequestID("req-1").
		WithStackID("arn:aws:cloudformation:us-east-1:111111111111:stack/s/x").
		WithLogicalResourceID("Delegation").
		WithField("hosted_zone_id", "Z1")
	scoped.Info("upsert\nname servers", map[string]any{"session_token": "tok"})

	entries := logger.Entries()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "info", e.Level)
	assert.Equal(t, "upsertname servers", e.Message)
	assert.Equal(t, "req-1", e.RequestID)
	assert.Equal(t, "Delegation", e.LogicalResourceID)
	assert.Equal(t, "Z1", e.Fields["hosted_zone_id"])
	assert.Equal(t, "[REDACTED]", e.Fields["session_token"])
	assert.Equal(t, []string{"upsertname servers"}, logger.Messages())
}

func TestTestLogger_StatsAndClose(t *testing.T) {
	logger := NewTestLogger()
	logger.Debug("a")
	logger.Warn("b")
	require.NoError(t, logger.Flush(context.Background()))

	stats := logger.GetStats()
	assert.EqualValues(t, 2, stats.EntriesLogged)
	assert.EqualValues(t, 1, stats.FlushCount)

	require.NoError(t, logger.Close())
	assert.False(t, logger.IsHealthy())
	logger.Error("dropped")
	assert.Len(t, logger.Entries(), 2)
}

func TestTestLogger_FlushHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewTestLogger().Flush(ctx), context.Canceled)
}

func TestLoggerConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	cfg := LoggerConfigFromEnv()
	assert.Equal(t, LoggerConfig{Format: "json", Level: "debug", EnableCaller: true}, cfg)
}

func TestLoggerConfigFromEnv_LambdaDefaultsToJSON(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "delegation")
	cfg := LoggerConfigFromEnv()
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "info", cfg.Level)
	assert.True(t, IsLambda())
}
