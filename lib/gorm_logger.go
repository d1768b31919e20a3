package lib

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes gorm output into zap.
// Missing rows are expected by the lookup-then-mutate services and are not logged.
type GormLogger struct {
	logger                    *zap.Logger
	level                     gormlogger.LogLevel
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
}

// NewGormLogger creates a gorm logger on top of the application logger
func NewGormLogger(logger Logger, config Config) GormLogger {
	level := gormlogger.Warn
	if config.Log.Level == "debug" {
		level = gormlogger.Info
	}

	return GormLogger{
		logger:                    logger.DesugarZap.WithOptions(zap.AddCallerSkip(3)).With(zap.String("module", "gorm")),
		level:                     level,
		SlowThreshold:             200 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
	}
}

func (a GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	a.level = level
	return a
}

func (a GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if a.level >= gormlogger.Info {
		a.logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (a GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if a.level >= gormlogger.Warn {
		a.logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (a GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if a.level >= gormlogger.Error {
		a.logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (a GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if a.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && a.level >= gormlogger.Error &&
		(!a.IgnoreRecordNotFoundError || !errors.Is(err, gorm.ErrRecordNotFound)):
		sql, rows := fc()
		a.logger.Error("sql error", zap.Error(err), zap.Duration("elapsed", elapsed),
			zap.Int64("rows", rows), zap.String("sql", sql))
	case a.SlowThreshold > 0 && elapsed > a.SlowThreshold && a.level >= gormlogger.Warn:
		sql, rows := fc()
		a.logger.Warn("slow sql", zap.Duration("elapsed", elapsed), zap.Duration("threshold", a.SlowThreshold),
			zap.Int64("rows", rows), zap.String("sql", sql))
	case a.level >= gormlogger.Info:
		sql, rows := fc()
		a.logger.Debug("sql", zap.Duration("elapsed", elapsed), zap.Int64("rows", rows), zap.String("sql", sql))
	}
}
