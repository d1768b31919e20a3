package repository

import (
	"gorm.io/gorm"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

// UserRepository database structure
type UserRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db lib.Database, logger lib.Logger) UserRepository {
	return UserRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a UserRepository) WithTrx(trxHandle *gorm.DB) UserRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

func (a UserRepository) Get(id string) (*cms.User, error) {
	user := new(cms.User)

	if ok, err := QueryOne(a.db.ORM.Model(user).Where("id=?", id), user); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return user, nil
}

func (a UserRepository) GetByUsername(username string) (*cms.User, error) {
	user := new(cms.User)

	if ok, err := QueryOne(a.db.ORM.Model(user).Where("username=?", username), user); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return user, nil
}

func (a UserRepository) Create(user *cms.User) error {
	if err := a.db.ORM.Create(user).Error; err != nil {
		return wrapWriteError(err)
	}

	return nil
}

// Delete removes the user; categories, news and pages go with it
func (a UserRepository) Delete(id string) error {
	if err := a.db.ORM.Where("id=?", id).Delete(&cms.User{}).Error; err != nil {
		return errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	return nil
}
