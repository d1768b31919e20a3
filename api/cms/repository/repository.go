package repository

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/models/dto"
)

// Module exports dependency
var Module = fx.Options(
	fx.Provide(NewUserRepository),
	fx.Provide(NewCategoryRepository),
	fx.Provide(NewNewsRepository),
	fx.Provide(NewCommentRepository),
	fx.Provide(NewPageRepository),
	fx.Provide(NewAuditLogRepository),
)

// QueryOne loads the first matching row into out, reporting false when there is none
func QueryOne(db *gorm.DB, out interface{}) (bool, error) {
	result := db.First(out)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// QueryPagination counts db and loads the requested page into out
func QueryPagination(db *gorm.DB, pp dto.PaginationParam, out interface{}) (*dto.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	pageNum, pageSize := pp.GetPageNum(), pp.GetPageSize()
	pagination := &dto.Pagination{Total: total, PageNum: pageNum, PageSize: pageSize}
	if total == 0 {
		return pagination, nil
	}

	if err := db.Offset((pageNum - 1) * pageSize).Limit(pageSize).Find(out).Error; err != nil {
		return nil, err
	}

	return pagination, nil
}

// wrapWriteError keeps unique violations distinguishable from other failures
func wrapWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Wrap(errors.DatabaseDuplicatedKey, err.Error())
	}
	return errors.Wrap(errors.DatabaseInternalError, err.Error())
}

// selectOwner limits a preloaded user to the fields exposed in responses
func selectOwner(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username")
}
