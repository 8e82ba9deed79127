package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Conf holds logger options. Output is "stdout" or "file".
type Conf struct {
	Output     string
	Path       string
	Filename   string
	Level      string
	RotateSize int // MB
	RotateNum  int
	KeepDays   int
}

func SetDefaults() *Conf {
	return &Conf{
		Output:     "stdout",
		Path:       "./logs",
		Filename:   "app.log",
		Level:      "INFO",
		RotateSize: 100,
		RotateNum:  10,
		KeepDays:   7,
	}
}

func (c *Conf) Validate() error {
	if c.Output == "file" {
		if c.Path == "" {
			return fmt.Errorf("log path is required when output is 'file'")
		}
		if c.Filename == "" {
			c.Filename = "app.log"
		}
		if c.RotateSize <= 0 {
			c.RotateSize = 100
		}
		if c.RotateNum <= 0 {
			c.RotateNum = 10
		}
		if c.KeepDays <= 0 {
			c.KeepDays = 7
		}
	}
	return nil
}

// New builds a zap logger from conf without touching the global one.
func New(conf *Conf) (*zap.Logger, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid log config: %w", err)
	}

	var ws zapcore.WriteSyncer
	switch conf.Output {
	case "file":
		if err := os.MkdirAll(conf.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(conf.Path, conf.Filename),
			MaxSize:    conf.RotateSize,
			MaxBackups: conf.RotateNum,
			MaxAge:     conf.KeepDays,
			Compress:   true,
		})
	default:
		ws = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(encoder(), ws, ParseLevel(conf.Level))
	return zap.New(core, zap.AddCaller()), nil
}

// Init replaces the global logger.
func Init(conf *Conf) error {
	l, err := New(conf)
	if err != nil {
		return err
	}
	mu.Lock()
	logger = l
	mu.Unlock()
	l.Sugar().Debugw("log initialized", "output", conf.Output, "level", conf.Level)
	return nil
}

// SetLogger swaps the global logger, mostly for tests.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func S() *zap.SugaredLogger {
	return L().Sugar()
}

func Sync() {
	_ = L().Sync()
}

func encoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "time"
	cfg.LevelKey = "level"
	cfg.CallerKey = "caller"
	cfg.MessageKey = "msg"
	cfg.StacktraceKey = "stacktrace"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05"))
	}
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// ParseLevel is case-insensitive and falls back to INFO.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
