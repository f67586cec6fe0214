package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/zonetheory/pkg/observability"
	obszap "github.com/theory-cloud/zonetheory/pkg/observability/zap"
)

func TestLogger_DefaultIsNoOp(t *testing.T) {
	got := Logger()
	require.NotNil(t, got)
	assert.True(t, got.IsHealthy())
}

func TestLogger_SetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	stub := observability.NewTestLogger()
	SetLogger(stub)
	assert.Same(t, stub, Logger())

	SetLogger(nil)
	assert.NotSame(t, stub, Logger())
	assert.True(t, Logger().IsHealthy())
}

func TestInitFromEnv(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	t.Setenv(observability.EnvLogLevel, "warn")
	t.Setenv(observability.EnvLogFormat, "json")
	t.Setenv(obszap.EnvErrorTopicARN, "")
	t.Setenv("ERROR_NOTIFICATIONS_TOPIC_ARN", "")
	got, err := InitFromEnv()
	require.NoError(t, err)
	assert.Same(t, got, Logger())
}

func TestInitFromEnv_WithErrorTopic(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv(obszap.EnvErrorTopicARN, "arn:aws:sns:us-east-1:123456789012:dns-errors")
	got, err := InitFromEnv()
	require.NoError(t, err)
	assert.True(t, got.IsHealthy())
	require.NoError(t, got.Close())
}

func TestInitFromEnv_BadLevelKeepsCurrent(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	current := observability.NewTestLogger()
	SetLogger(current)
	t.Setenv(observability.EnvLogLevel, "chatty")
	got, err := InitFromEnv()
	require.Error(t, err)
	assert.Same(t, current, got)
	assert.Same(t, current, Logger())
}

func TestSanitizeHelpers(t *testing.T) {
	assert.Equal(t, "ab", SanitizeLogString("a\nb"))
	assert.Equal(t, "[REDACTED]", SanitizeFieldValue("secret_access_key", "x"))
	assert.Contains(t, SanitizeJSON([]byte(`{"password":"p"}`)), "[REDACTED]")
}
