package lib

import (
	"context"

	"go.uber.org/fx"

	"github.com/top-system/light-news/pkg/crontab"
)

// Crontab 定时任务封装, Cron 为 nil 表示未启用
type Crontab struct {
	Cron *crontab.Crontab
}

// crontabLogger 适配器 - 实现 crontab.Logger 接口
type crontabLogger struct {
	logger Logger
}

func (l crontabLogger) Info(format string, args ...interface{}) {
	l.logger.Zap.Infof(format, args...)
}

func (l crontabLogger) Error(format string, args ...interface{}) {
	l.logger.Zap.Errorf(format, args...)
}

// NewCrontab 创建定时任务管理器
func NewCrontab(lc fx.Lifecycle, config Config, logger Logger) Crontab {
	cfg := config.Crontab
	if cfg == nil || !cfg.Enable {
		logger.Zap.Info("Crontab is disabled")
		return Crontab{}
	}

	c := crontab.New(crontabLogger{logger: logger})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return c.Start()
		},
		OnStop: func(ctx context.Context) error {
			logger.Zap.Info("Stopping Crontab")
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return Crontab{Cron: c}
}

// AddTask 添加定时任务, 未启用时忽略
func (c Crontab) AddTask(name, spec string, fn crontab.TaskFunc) error {
	if c.Cron != nil {
		return c.Cron.AddTask(name, spec, fn)
	}
	return nil
}

// IsEnabled 检查定时任务是否启用
func (c Crontab) IsEnabled() bool {
	return c.Cron != nil
}
