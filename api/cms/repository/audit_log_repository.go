package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

// AuditLogRepository database structure
type AuditLogRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db lib.Database, logger lib.Logger) AuditLogRepository {
	return AuditLogRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a AuditLogRepository) WithTrx(trxHandle *gorm.DB) AuditLogRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

// Query 分页查询日志, 按时间倒序
func (a AuditLogRepository) Query(param *cms.AuditLogQueryParam) (*cms.AuditLogQueryResult, error) {
	db := a.db.ORM.Model(&cms.AuditLog{})

	if v := param.UserID; v != "" {
		db = db.Where("user_id = ?", v)
	}

	if v := param.Module; v != "" {
		db = db.Where("module = ?", v)
	}

	db = db.Order("created_at DESC").Order("id DESC")

	list := make(cms.AuditLogs, 0)
	pagination, err := QueryPagination(db, param.PaginationParam, &list)
	if err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return &cms.AuditLogQueryResult{
		Pagination: pagination,
		List:       list,
	}, nil
}

func (a AuditLogRepository) Create(log *cms.AuditLog) error {
	if err := a.db.ORM.Create(log).Error; err != nil {
		return errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return nil
}

// DeleteBefore removes entries created before t and reports how many went
func (a AuditLogRepository) DeleteBefore(t time.Time) (int64, error) {
	result := a.db.ORM.Where("created_at < ?", t).Delete(&cms.AuditLog{})
	if result.Error != nil {
		return 0, errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return result.RowsAffected, nil
}
