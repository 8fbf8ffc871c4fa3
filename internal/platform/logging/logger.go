package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// Logger takes slog-style alternating key/value args on top of zap. The
// *Context methods also write the fields bound with ContextWith and the
// active trace and span ids.
type Logger struct {
	zap    *zap.Logger
	synced atomic.Bool
}

var std atomic.Pointer[Logger]

func init() {
	std.Store(NewNop())
}

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(v string) Level {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		if strings.EqualFold(strings.TrimSpace(v), "warning") {
			return LevelWarn
		}
		return LevelInfo
	}
	switch level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return level
	default:
		return LevelInfo
	}
}

func NewJSON(level Level) *Logger {
	return NewJSONWriter(level, os.Stdout)
}

// NewJSONWriter writes one JSON object per line to w.
func NewJSONWriter(level Level, w io.Writer) *Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.MessageKey = "msg"
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
	return FromZap(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(LevelError)))
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z}
}

// Default is the process logger installed with SetDefault; a no-op logger
// until then.
func Default() *Logger {
	if l := std.Load(); l != nil {
		return l
	}
	return NewNop()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	std.Store(logger)
}

// Sync flushes buffered entries once; later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil || !l.synced.CompareAndSwap(false, true) {
		return nil
	}
	return l.zap.Sync()
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return FromZap(l.zap.With(fieldsOf(args)...))
}

func (l *Logger) Info(msg string, args ...any)  { l.write(nil, LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.write(nil, LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.write(nil, LevelError, msg, args) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelDebug, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelInfo, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelWarn, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelError, msg, args)
}

func (l *Logger) write(ctx context.Context, level Level, msg string, args []any) {
	if l == nil {
		l = Default()
	}
	ce := l.zap.Check(level, msg)
	if ce == nil {
		return
	}

	fields := fieldsOf(args)
	if ctx != nil {
		fields = append(fields, boundFields(ctx)...)
		fields = append(fields, spanFields(ctx)...)
	}
	ce.Write(fields...)
}

type boundKey struct{}

// ContextWith returns a context whose *Context log lines carry args in
// addition to their own fields.
func ContextWith(ctx context.Context, args ...any) context.Context {
	extra := fieldsOf(args)
	if len(extra) == 0 {
		return ctx
	}
	prev := boundFields(ctx)
	merged := make([]zap.Field, 0, len(prev)+len(extra))
	merged = append(merged, prev...)
	merged = append(merged, extra...)
	return context.WithValue(ctx, boundKey{}, merged)
}

func boundFields(ctx context.Context) []zap.Field {
	fields, _ := ctx.Value(boundKey{}).([]zap.Field)
	return fields
}

func spanFields(ctx context.Context) []zap.Field {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.Stringer("trace_id", sc.TraceID()),
		zap.Stringer("span_id", sc.SpanID()),
	}
}

// fieldsOf pairs up alternating key/value args. A non-string key becomes
// "arg" and a dangling key gets a nil value.
func fieldsOf(args []any) []zap.Field {
	if len(args) == 0 {
		return nil
	}

	fields := make([]zap.Field, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}
		var value any
		if i+1 < len(args) {
			value = args[i+1]
		}
		if err, isErr := value.(error); isErr {
			fields = append(fields, zap.NamedError(key, err))
			continue
		}
		fields = append(fields, zap.Any(key, value))
	}
	return fields
}
