package repository

import (
	"gorm.io/gorm"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

// CommentRepository database structure
type CommentRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db lib.Database, logger lib.Logger) CommentRepository {
	return CommentRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a CommentRepository) WithTrx(trxHandle *gorm.DB) CommentRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

func (a CommentRepository) Create(comment *cms.Comment) error {
	if err := a.db.ORM.Omit("News").Create(comment).Error; err != nil {
		return wrapWriteError(err)
	}

	return nil
}

// CountByNews counts the comments left on a news item
func (a CommentRepository) CountByNews(newsID string) (int64, error) {
	var count int64
	if err := a.db.ORM.Model(&cms.Comment{}).Where("news_id=?", newsID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return count, nil
}
