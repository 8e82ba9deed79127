package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes gorm output through zap.
type GormLogger struct {
	Config gormlogger.Config
	log    *zap.Logger
}

func NewGormLogger(cfg gormlogger.Config, l *zap.Logger) *GormLogger {
	return &GormLogger{Config: cfg, log: l.WithOptions(zap.AddCallerSkip(2))}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	nl := *l
	nl.Config.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.Config.LogLevel >= gormlogger.Info {
		l.log.Sugar().Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.Config.LogLevel >= gormlogger.Warn {
		l.log.Sugar().Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.Config.LogLevel >= gormlogger.Error {
		l.log.Sugar().Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Config.LogLevel <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && l.Config.LogLevel >= gormlogger.Error &&
		(!errors.Is(err, gormlogger.ErrRecordNotFound) || !l.Config.IgnoreRecordNotFoundError):
		l.log.Sugar().Errorf("`%s` [rows: %d, elapsed: %s], err: %v", sql, rows, elapsed, err)
	case l.Config.SlowThreshold != 0 && elapsed > l.Config.SlowThreshold && l.Config.LogLevel >= gormlogger.Warn:
		l.log.Sugar().Warnf("slow sql `%s` [rows: %d, elapsed: %s]", sql, rows, elapsed)
	case l.Config.LogLevel == gormlogger.Info:
		l.log.Sugar().Debugf("`%s` [rows: %d, elapsed: %s]", sql, rows, elapsed)
	}
}
