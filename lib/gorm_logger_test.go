package lib

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/top-system/light-news/models/cms"
)

func observedGormLogger(level string) (GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	config := DefaultConfig()
	config.Log.Level = level
	return NewGormLogger(Logger{Zap: logger.Sugar(), DesugarZap: logger}, config), logs
}

func sqlFunc() (string, int64) {
	return "SELECT * FROM users", 0
}

func TestGormLoggerIgnoresRecordNotFound(t *testing.T) {
	gl, logs := observedGormLogger("info")

	gl.Trace(context.Background(), time.Now(), sqlFunc, gorm.ErrRecordNotFound)
	gl.Trace(context.Background(), time.Now(), sqlFunc, errors.Wrap(gorm.ErrRecordNotFound, "lookup"))
	assert.Zero(t, logs.Len())

	gl.Trace(context.Background(), time.Now(), sqlFunc, errors.New("connection refused"))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "SELECT * FROM users", entry.ContextMap()["sql"])
}

func TestGormLoggerSlowQuery(t *testing.T) {
	gl, logs := observedGormLogger("info")

	gl.Trace(context.Background(), time.Now().Add(-time.Second), sqlFunc, nil)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestGormLoggerLevels(t *testing.T) {
	gl, logs := observedGormLogger("info")
	gl.Trace(context.Background(), time.Now(), sqlFunc, nil)
	assert.Zero(t, logs.Len())

	debug, logs := observedGormLogger("debug")
	debug.Trace(context.Background(), time.Now(), sqlFunc, nil)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)

	silent := debug.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlFunc, errors.New("boom"))
	assert.Equal(t, 1, logs.Len())
}

func TestOpenDatabaseUsesGormLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	config := DefaultConfig()
	config.Database.Engine = "sqlite"
	config.Database.Name = ":memory:"
	config.Database.ConnectRetry = 0

	db, err := OpenDatabase(config, Logger{Zap: logger.Sugar(), DesugarZap: logger})
	require.NoError(t, err)
	require.NoError(t, db.ORM.AutoMigrate(&cms.User{}))

	before := logs.FilterLevelExact(zapcore.ErrorLevel).Len()
	err = db.ORM.Where("username = ?", "nobody").First(&cms.User{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, before, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}
