package logger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel(" Warning "))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestNew_FileOutput(t *testing.T) {
	conf := SetDefaults()
	conf.Output = "file"
	conf.Path = filepath.Join(t.TempDir(), "logs")
	conf.Filename = ""

	l, err := New(conf)
	require.NoError(t, err)
	l.Info("hello file")
	require.NoError(t, l.Sync())

	b, err := os.ReadFile(filepath.Join(conf.Path, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello file")
}

func TestValidate_FileNeedsPath(t *testing.T) {
	conf := &Conf{Output: "file"}
	assert.Error(t, conf.Validate())
	_, err := New(conf)
	assert.Error(t, err)
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := L()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	S().Infow("order status changed", "order", 1)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "order status changed", logs.All()[0].Message)
}

func TestGormLogger_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	}, zap.New(core))
	ctx := context.Background()
	sql := func() (string, int64) { return "SELECT 1", 1 }

	gl.Trace(ctx, time.Now(), sql, gormlogger.ErrRecordNotFound)
	assert.Zero(t, logs.Len(), "record not found is ignored")

	gl.Trace(ctx, time.Now(), sql, errors.New("no such table"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)

	gl.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)

	// plain queries only show up at Info
	gl.Trace(ctx, time.Now(), sql, nil)
	assert.Equal(t, 2, logs.Len())
	gl.LogMode(gormlogger.Info).Trace(ctx, time.Now(), sql, nil)
	assert.Equal(t, 3, logs.Len())

	gl.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), sql, errors.New("x"))
	assert.Equal(t, 3, logs.Len())
}
