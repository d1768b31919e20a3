package repository

import (
	"gorm.io/gorm"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

// NewsRepository database structure
type NewsRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db lib.Database, logger lib.Logger) NewsRepository {
	return NewsRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a NewsRepository) WithTrx(trxHandle *gorm.DB) NewsRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

func (a NewsRepository) Query() (cms.NewsList, error) {
	list := make(cms.NewsList, 0)
	if err := a.db.ORM.Model(&cms.News{}).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return list, nil
}

// Get loads a news item with its author, category and comments
func (a NewsRepository) Get(id string) (*cms.News, error) {
	news := new(cms.News)
	db := a.db.ORM.Model(news).
		Preload("Author", selectOwner).
		Preload("Category", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id=?", id)

	if ok, err := QueryOne(db, news); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return news, nil
}

// Exists reports whether a news item with id is present
func (a NewsRepository) Exists(id string) (bool, error) {
	var count int64
	if err := a.db.ORM.Model(&cms.News{}).Where("id=?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return count > 0, nil
}

// GetOwned finds a news item only when authorID wrote it
func (a NewsRepository) GetOwned(id, authorID string) (*cms.News, error) {
	news := new(cms.News)

	if ok, err := QueryOne(a.db.ORM.Model(news).Where("id=? AND author_id=?", id, authorID), news); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return news, nil
}

func (a NewsRepository) Create(news *cms.News) error {
	if err := a.db.ORM.Omit("Author", "Category", "Comments").Create(news).Error; err != nil {
		return wrapWriteError(err)
	}

	return nil
}

func (a NewsRepository) Update(news *cms.News) error {
	if err := a.db.ORM.Model(news).Select("content", "category_id").Updates(news).Error; err != nil {
		return wrapWriteError(err)
	}

	return nil
}

// Delete removes the news item together with its comments
func (a NewsRepository) Delete(id string) error {
	if err := a.db.ORM.Where("id=?", id).Delete(&cms.News{}).Error; err != nil {
		return errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return nil
}
