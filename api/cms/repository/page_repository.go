package repository

import (
	"gorm.io/gorm"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

// PageRepository database structure
type PageRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewPageRepository creates a new page repository
func NewPageRepository(db lib.Database, logger lib.Logger) PageRepository {
	return PageRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a PageRepository) WithTrx(trxHandle *gorm.DB) PageRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

func (a PageRepository) Query() (cms.Pages, error) {
	list := make(cms.Pages, 0)
	if err := a.db.ORM.Model(&cms.Page{}).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return list, nil
}

// Get loads a page together with its owner
func (a PageRepository) Get(id string) (*cms.Page, error) {
	page := new(cms.Page)
	db := a.db.ORM.Model(page).Preload("User", selectOwner).Where("id=?", id)

	if ok, err := QueryOne(db, page); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return page, nil
}

func (a PageRepository) GetByCustomURL(customURL string) (*cms.Page, error) {
	page := new(cms.Page)

	if ok, err := QueryOne(a.db.ORM.Model(page).Where("custom_url=?", customURL), page); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return page, nil
}

// GetOwned finds a page only when it belongs to userID
func (a PageRepository) GetOwned(id, userID string) (*cms.Page, error) {
	page := new(cms.Page)

	if ok, err := QueryOne(a.db.ORM.Model(page).Where("id=? AND user_id=?", id, userID), page); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return page, nil
}

func (a PageRepository) Create(page *cms.Page) error {
	if err := a.db.ORM.Omit("User").Create(page).Error; err != nil {
		return wrapWriteError(err)
	}

	return nil
}

func (a PageRepository) Update(page *cms.Page) error {
	if err := a.db.ORM.Model(page).Select("custom_url", "page_content").Updates(page).Error; err != nil {
		return wrapWriteError(err)
	}

	return nil
}

func (a PageRepository) Delete(id string) error {
	if err := a.db.ORM.Where("id=?", id).Delete(&cms.Page{}).Error; err != nil {
		return errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return nil
}
