package zap

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/theory-cloud/zonetheory/pkg/observability"
	"github.com/theory-cloud/zonetheory/pkg/sanitization"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"

	// Error entries waiting for the notifier beyond this are dropped.
	notifyQueueSize = 256
)

type Option func(*loggerOptions)

type loggerOptions struct {
	initErr error

	zapLogger *ubzap.Logger
	sanitizer observability.SanitizerFunc
	sink      zapcore.WriteSyncer
	notifier  observability.ErrorNotifier

	maxRetries int
	retryDelay time.Duration
}

func WithZapLogger(logger *ubzap.Logger) Option {
	return func(opts *loggerOptions) {
		opts.zapLogger = logger
	}
}

func WithSanitizer(fn observability.SanitizerFunc) Option {
	return func(opts *loggerOptions) {
		opts.sanitizer = fn
	}
}

// WithErrorNotifier forwards every error-level entry to notifier on a background goroutine.
func WithErrorNotifier(notifier observability.ErrorNotifier) Option {
	return func(opts *loggerOptions) {
		opts.notifier = notifier
	}
}

// WithNotifierRetry sets how often a failed notification is attempted and the pause between attempts.
func WithNotifierRetry(maxRetries int, delay time.Duration) Option {
	return func(opts *loggerOptions) {
		opts.maxRetries = maxRetries
		opts.retryDelay = delay
	}
}

// WithWriter sends encoded entries to w instead of stderr.
func WithWriter(w zapcore.WriteSyncer) Option {
	return func(opts *loggerOptions) {
		opts.sink = w
	}
}

type zapCore struct {
	logger    *ubzap.Logger
	sanitizer observability.SanitizerFunc
	notifier  observability.ErrorNotifier

	retryDelay time.Duration
	maxRetries int

	notifyMu sync.Mutex
	notifyCh chan observability.LogEntry
	notifyWg sync.WaitGroup

	closeOnce sync.Once
	closed    atomic.Bool

	entriesLogged   atomic.Int64
	entriesDropped  atomic.Int64
	flushCount      atomic.Int64
	errorCount      atomic.Int64
	lastFlushNanos  atomic.Int64
	totalFlushNanos atomic.Int64
	lastError       atomic.Value
}

type Logger struct {
	core *zapCore
	log  *ubzap.Logger

	// Scoped context, kept for notifications since zap fields are write-only.
	fields            map[string]any
	requestID         string
	stackID           string
	logicalResourceID string
}

var _ observability.StructuredLogger = (*Logger)(nil)

func NewZapLogger(config observability.LoggerConfig, options ...Option) (observability.StructuredLogger, error) {
	opts := &loggerOptions{
		sanitizer:  sanitization.SanitizeFieldValue,
		sink:       zapcore.Lock(os.Stderr),
		maxRetries: 3,
		retryDelay: time.Second,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(opts)
	}
	if opts.initErr != nil {
		return nil, opts.initErr
	}

	base := opts.zapLogger
	if base == nil {
		level, err := parseZapLevel(config.Level)
		if err != nil {
			return nil, err
		}

		enc := zapEncoderConfig(config.EnableCaller)
		var encoder zapcore.Encoder
		switch strings.ToLower(strings.TrimSpace(config.Format)) {
		case "console":
			encoder = zapcore.NewConsoleEncoder(enc)
		case "json", "":
			encoder = zapcore.NewJSONEncoder(enc)
		default:
			return nil, errors.New("observability/zap: unsupported log format")
		}

		base = ubzap.New(zapcore.NewCore(encoder, opts.sink, level))
		if config.EnableCaller {
			base = base.WithOptions(ubzap.AddCaller(), ubzap.AddCallerSkip(2))
		}
		if config.EnableStack {
			base = base.WithOptions(ubzap.AddStacktrace(zapcore.ErrorLevel))
		}
	}

	zcore := &zapCore{
		logger:     base,
		sanitizer:  opts.sanitizer,
		notifier:   opts.notifier,
		retryDelay: opts.retryDelay,
		maxRetries: opts.maxRetries,
	}
	zcore.lastError.Store("")

	if zcore.notifier != nil {
		zcore.notifyCh = make(chan observability.LogEntry, notifyQueueSize)
		go zcore.runNotifier(zcore.notifyCh)
	}

	return &Logger{core: zcore, log: base, fields: map[string]any{}}, nil
}

func parseZapLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case levelDebug:
		return zapcore.DebugLevel, nil
	case levelInfo, "":
		return zapcore.InfoLevel, nil
	case levelWarn, "warning":
		return zapcore.WarnLevel, nil
	case levelError:
		return zapcore.ErrorLevel, nil
	default:
		return 0, errors.New("observability/zap: unsupported log level")
	}
}

func zapEncoderConfig(enableCaller bool) zapcore.EncoderConfig {
	enc := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if enableCaller {
		enc.CallerKey = "caller"
		enc.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return enc
}

func (l *Logger) Debug(message string, fields ...map[string]any) {
	l.logEntry(levelDebug, message, fields...)
}
func (l *Logger) Info(message string, fields ...map[string]any) {
	l.logEntry(levelInfo, message, fields...)
}
func (l *Logger) Warn(message string, fields ...map[string]any) {
	l.logEntry(levelWarn, message, fields...)
}
func (l *Logger) Error(message string, fields ...map[string]any) {
	l.logEntry(levelError, message, fields...)
}

func (l *Logger) WithField(key string, value any) observability.StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) WithFields(fields map[string]any) observability.StructuredLogger {
	next := l.with(anyFields(fields, l.core.sanitizer)...)
	next.fields = mergeFieldSets(l.fields, fields)
	return next
}

func (l *Logger) WithRequestID(requestID string) observability.StructuredLogger {
	requestID = sanitization.SanitizeLogString(requestID)
	next := l.with(ubzap.String("request_id", requestID))
	next.requestID = requestID
	return next
}

func (l *Logger) WithStackID(stackID string) observability.StructuredLogger {
	stackID = sanitization.SanitizeLogString(stackID)
	next := l.with(ubzap.String("stack_id", stackID))
	next.stackID = stackID
	return next
}

func (l *Logger) WithLogicalResourceID(logicalResourceID string) observability.StructuredLogger {
	logicalResourceID = sanitization.SanitizeLogString(logicalResourceID)
	next := l.with(ubzap.String("logical_resource_id", logicalResourceID))
	next.logicalResourceID = logicalResourceID
	return next
}

func (l *Logger) with(fields ...ubzap.Field) *Logger {
	return &Logger{
		core:              l.core,
		log:               l.log.With(fields...),
		fields:            l.fields,
		requestID:         l.requestID,
		stackID:           l.stackID,
		logicalResourceID: l.logicalResourceID,
	}
}

func (l *Logger) Flush(ctx context.Context) error {
	if l == nil || l.core == nil {
		return nil
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	start := time.Now()
	l.core.flushCount.Add(1)
	err := l.core.logger.Sync()
	if err != nil && !isIgnorableSyncError(err) {
		l.core.errorCount.Add(1)
		l.core.lastError.Store(err.Error())
	} else {
		err = nil
	}

	l.core.waitNotifier(ctx)

	l.core.lastFlushNanos.Store(time.Now().UnixNano())
	l.core.totalFlushNanos.Add(time.Since(start).Nanoseconds())
	return err
}

// isIgnorableSyncError matches the EINVAL/ENOTTY zap reports when syncing a terminal.
func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}

func (l *Logger) Close() error {
	if l == nil || l.core == nil {
		return nil
	}
	var err error
	l.core.closeOnce.Do(func() {
		l.core.notifyMu.Lock()
		l.core.closed.Store(true)
		if l.core.notifyCh != nil {
			close(l.core.notifyCh)
			l.core.notifyCh = nil
		}
		l.core.notifyMu.Unlock()

		l.core.notifyWg.Wait()
		if syncErr := l.core.logger.Sync(); syncErr != nil && !isIgnorableSyncError(syncErr) {
			l.core.errorCount.Add(1)
			l.core.lastError.Store(syncErr.Error())
			err = syncErr
		}
	})
	return err
}

func (l *Logger) IsHealthy() bool {
	if l == nil || l.core == nil || l.core.closed.Load() {
		return false
	}
	return l.core.lastErrorString() == ""
}

func (l *Logger) GetStats() observability.LoggerStats {
	if l == nil || l.core == nil {
		return observability.LoggerStats{}
	}

	flushCount := l.core.flushCount.Load()
	totalFlush := l.core.totalFlushNanos.Load()
	avg := time.Duration(0)
	if flushCount > 0 && totalFlush > 0 {
		avg = time.Duration(totalFlush / flushCount)
	}

	return observability.LoggerStats{
		LastFlush:      time.Unix(0, l.core.lastFlushNanos.Load()),
		LastError:      l.core.lastErrorString(),
		EntriesLogged:  l.core.entriesLogged.Load(),
		EntriesDropped: l.core.entriesDropped.Load(),
		FlushCount:     flushCount,
		ErrorCount:     l.core.errorCount.Load(),
		AverageFlush:   avg,
	}
}

func (l *Logger) logEntry(level string, message string, fields ...map[string]any) {
	if l == nil || l.core == nil || l.log == nil || l.core.closed.Load() {
		return
	}

	message = sanitization.SanitizeLogString(message)
	callFields := mergeFieldSets(fields...)
	zfields := anyFields(callFields, l.core.sanitizer)

	switch level {
	case levelDebug:
		l.log.Debug(message, zfields...)
	case levelWarn:
		l.log.Warn(message, zfields...)
	case levelError:
		l.log.Error(message, zfields...)
	default:
		l.log.Info(message, zfields...)
	}
	l.core.entriesLogged.Add(1)

	if level == levelError && l.core.notifier != nil {
		l.core.enqueueNotification(l.notificationEntry(level, message, callFields))
	}
}

func (l *Logger) notificationEntry(level string, message string, callFields map[string]any) observability.LogEntry {
	merged := mergeFieldSets(l.fields, callFields)
	sanitized := make(map[string]any, len(merged))
	for k, v := range merged {
		if l.core.sanitizer != nil {
			sanitized[k] = l.core.sanitizer(k, v)
		} else {
			sanitized[k] = sanitization.SanitizeFieldValue(k, v)
		}
	}
	return observability.LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    sanitized,

		RequestID:         l.requestID,
		StackID:           l.stackID,
		LogicalResourceID: l.logicalResourceID,
	}
}

func anyFields(fields map[string]any, sanitizerFn observability.SanitizerFunc) []ubzap.Field {
	if len(fields) == 0 {
		return nil
	}

	out := make([]ubzap.Field, 0, len(fields))
	for k, v := range fields {
		if sanitizerFn != nil {
			v = sanitizerFn(k, v)
		} else {
			v = sanitization.SanitizeFieldValue(k, v)
		}
		out = append(out, ubzap.Any(k, v))
	}
	return out
}

func mergeFieldSets(fieldSets ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, set := range fieldSets {
		for k, v := range set {
			out[k] = v
		}
	}
	return out
}

func (c *zapCore) lastErrorString() string {
	if c == nil {
		return ""
	}
	lastError, ok := c.lastError.Load().(string)
	if !ok {
		return ""
	}
	return lastError
}

func (c *zapCore) enqueueNotification(entry observability.LogEntry) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if c.closed.Load() || c.notifyCh == nil {
		c.entriesDropped.Add(1)
		return
	}

	c.notifyWg.Add(1)
	select {
	case c.notifyCh <- entry:
	default:
		c.notifyWg.Done()
		c.entriesDropped.Add(1)
	}
}

func (c *zapCore) runNotifier(queue <-chan observability.LogEntry) {
	for entry := range queue {
		if err := c.notifyWithRetries(entry); err != nil {
			c.errorCount.Add(1)
			c.lastError.Store(err.Error())
		}
		c.notifyWg.Done()
	}
}

func (c *zapCore) notifyWithRetries(entry observability.LogEntry) error {
	maxRetries := c.maxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if lastErr = c.notifier.Notify(context.Background(), entry); lastErr == nil {
			return nil
		}
		if attempt < maxRetries-1 && c.retryDelay > 0 {
			time.Sleep(c.retryDelay)
		}
	}
	return lastErr
}

// waitNotifier blocks until queued notifications are delivered or ctx ends.
func (c *zapCore) waitNotifier(ctx context.Context) {
	c.notifyMu.Lock()
	active := c.notifyCh != nil
	c.notifyMu.Unlock()
	if !active {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	done := make(chan struct{})
	go func() {
		c.notifyWg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
	case <-done:
	}
}
