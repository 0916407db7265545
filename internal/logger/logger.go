package logger

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 서비스 전역에서 사용하는 최소 로거 인터페이스다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그를 위한 공통 필드 타입이다.
type Fields map[string]any

const defaultServiceName = "case-studio"

// Log 는 전역 로거다. Init 전에도 info 레벨로 stdout 에 쓴다.
var Log Logger = NewLogger("info")

// Init 은 전역 로거를 교체한다. level 이 비어 있으면 LOG_LEVEL, 그것도 없으면 info.
func Init(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = strings.ToLower(os.Getenv("LOG_LEVEL"))
	}
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)
}

// NewLogger 는 stdout 에 JSON 한 줄씩 쓰는 gookit/slog 로거를 만든다.
func NewLogger(level string) Logger {
	return newLogger(os.Stdout, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	h := handler.NewIOWriterWithLF(w, slog.NewLvFormatter(slog.LevelByName(level)))
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))
	return slog.NewWithHandlers(h)
}

// GenerationFields 는 생성 호출 로그에 공통으로 붙는 route / request_id 를 채운다.
// extra 의 키가 우선한다.
func GenerationFields(route, requestID string, extra Fields) Fields {
	fields := Fields{"route": route}
	if requestID != "" {
		fields["request_id"] = requestID
	}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

func InfoWithFields(msg string, fields Fields)  { logWithFields(slog.InfoLevel, msg, fields) }
func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }
func WarnWithFields(msg string, fields Fields)  { logWithFields(slog.WarnLevel, msg, fields) }
func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }

func logWithFields(level slog.Level, msg string, fields Fields) {
	lg, ok := Log.(*slog.Logger)
	if !ok {
		Log.Info(msg)
		return
	}
	lg.WithFields(slog.M(withServiceName(fields))).Log(level, msg)
}

// withServiceName 은 service_name 이 없으면 SERVICE_NAME 환경변수(기본 case-studio)로 채운다.
func withServiceName(fields Fields) Fields {
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	if _, ok := out["service_name"]; !ok {
		sn := os.Getenv("SERVICE_NAME")
		if sn == "" {
			sn = defaultServiceName
		}
		out["service_name"] = sn
	}
	return out
}
