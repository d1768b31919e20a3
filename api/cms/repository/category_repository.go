package repository

import (
	"gorm.io/gorm"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

// CategoryRepository database structure
type CategoryRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db lib.Database, logger lib.Logger) CategoryRepository {
	return CategoryRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a CategoryRepository) WithTrx(trxHandle *gorm.DB) CategoryRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

func (a CategoryRepository) Query() (cms.Categories, error) {
	list := make(cms.Categories, 0)
	if err := a.db.ORM.Model(&cms.Category{}).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return list, nil
}

// Get loads a category together with its owner
func (a CategoryRepository) Get(id string) (*cms.Category, error) {
	category := new(cms.Category)
	db := a.db.ORM.Model(category).Preload("User", selectOwner).Where("id=?", id)

	if ok, err := QueryOne(db, category); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return category, nil
}

func (a CategoryRepository) GetByName(name string) (*cms.Category, error) {
	category := new(cms.Category)

	if ok, err := QueryOne(a.db.ORM.Model(category).Where("name=?", name), category); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return category, nil
}

// GetOwned finds a category only when it belongs to userID
func (a CategoryRepository) GetOwned(id, userID string) (*cms.Category, error) {
	category := new(cms.Category)

	if ok, err := QueryOne(a.db.ORM.Model(category).Where("id=? AND user_id=?", id, userID), category); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return category, nil
}

func (a CategoryRepository) Create(category *cms.Category) error {
	if err := a.db.ORM.Create(category).Error; err != nil {
		return wrapWriteError(err)
	}

	return nil
}

func (a CategoryRepository) Update(category *cms.Category) error {
	if err := a.db.ORM.Model(category).Select("name").Updates(category).Error; err != nil {
		return wrapWriteError(err)
	}

	return nil
}

// Delete removes the category; its news keep existing with category_id cleared
func (a CategoryRepository) Delete(id string) error {
	if err := a.db.ORM.Where("id=?", id).Delete(&cms.Category{}).Error; err != nil {
		return errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return nil
}
