package service

import (
	"context"
	"time"

	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/constants"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/pkg/crontab"
)

// AuditLogService service layer
type AuditLogService struct {
	logger             lib.Logger
	config             lib.Config
	auditLogRepository repository.AuditLogRepository
}

// NewAuditLogService creates a new audit log service and schedules the retention purge
func NewAuditLogService(
	logger lib.Logger,
	config lib.Config,
	cron lib.Crontab,
	auditLogRepository repository.AuditLogRepository,
) AuditLogService {
	s := AuditLogService{
		logger:             logger,
		config:             config,
		auditLogRepository: auditLogRepository,
	}

	if config.AuditLog.Enable && cron.IsEnabled() {
		if err := cron.AddTask(constants.TaskPurgeAuditLogs, config.AuditLog.PurgeSpec, s.purgeTask); err != nil {
			logger.Zap.Errorf("schedule %s failed: %v", constants.TaskPurgeAuditLogs, err)
		}
	}

	return s
}

// Enabled reports whether write requests should be recorded
func (a AuditLogService) Enabled() bool {
	return a.config.AuditLog.Enable
}

func (a AuditLogService) Create(log *cms.AuditLog) error {
	return a.auditLogRepository.Create(log)
}

// CreateAsync 异步写入日志, 不阻塞请求
func (a AuditLogService) CreateAsync(log *cms.AuditLog) {
	go func() {
		if err := a.Create(log); err != nil {
			a.logger.Zap.Errorf("save audit log failed: %v", err)
		}
	}()
}

func (a AuditLogService) Query(param *cms.AuditLogQueryParam) (*cms.AuditLogQueryResult, error) {
	return a.auditLogRepository.Query(param)
}

// Purge 删除超过保留天数的日志
func (a AuditLogService) Purge(now time.Time) (int64, error) {
	days := a.config.AuditLog.RetentionDays
	if days <= 0 {
		return 0, nil
	}

	return a.auditLogRepository.DeleteBefore(now.AddDate(0, 0, -days))
}

func (a AuditLogService) purgeTask(ctx context.Context) {
	deleted, err := a.Purge(time.Now())
	if err != nil {
		a.logger.Zap.Errorf("[%s] purge audit logs failed: %v", crontab.CorrelationIDFromContext(ctx), err)
		return
	}

	a.logger.Zap.Infof("[%s] purged %d audit logs", crontab.CorrelationIDFromContext(ctx), deleted)
}
