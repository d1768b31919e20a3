package service

import (
	"gorm.io/gorm"

	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

// CategoryService service layer
type CategoryService struct {
	logger             lib.Logger
	userRepository     repository.UserRepository
	categoryRepository repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(
	logger lib.Logger,
	userRepository repository.UserRepository,
	categoryRepository repository.CategoryRepository,
) CategoryService {
	return CategoryService{
		logger:             logger,
		userRepository:     userRepository,
		categoryRepository: categoryRepository,
	}
}

// WithTrx delegates transaction to repository database
func (a CategoryService) WithTrx(trxHandle *gorm.DB) CategoryService {
	a.userRepository = a.userRepository.WithTrx(trxHandle)
	a.categoryRepository = a.categoryRepository.WithTrx(trxHandle)
	return a
}

func (a CategoryService) Query() (cms.Categories, error) {
	return a.categoryRepository.Query()
}

func (a CategoryService) Get(id string) (*cms.Category, error) {
	category, err := a.categoryRepository.Get(id)
	if err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.CategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

func (a CategoryService) Create(userID string, form *cms.CategoryForm) (*cms.Category, error) {
	if err := a.checkName(form.Name); err != nil {
		return nil, err
	}

	if _, err := a.userRepository.Get(userID); err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.UserOwnerNotFound
		}
		return nil, err
	}

	category := &cms.Category{
		Name:   form.Name,
		UserID: userID,
	}

	if err := a.categoryRepository.Create(category); err != nil {
		if errors.Is(err, errors.DatabaseDuplicatedKey) {
			return nil, errors.CategoryAlreadyExists
		}
		return nil, err
	}

	return category, nil
}

// Update 仅允许分类创建者修改
func (a CategoryService) Update(userID, id string, form *cms.CategoryUpdateForm) (*cms.Category, error) {
	category, err := a.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if form.Name != nil && *form.Name != category.Name {
		if err := a.checkName(*form.Name); err != nil {
			return nil, err
		}
		category.Name = *form.Name
	}

	if err := a.categoryRepository.Update(category); err != nil {
		if errors.Is(err, errors.DatabaseDuplicatedKey) {
			return nil, errors.CategoryAlreadyExists
		}
		return nil, err
	}

	return category, nil
}

// Remove 删除分类并返回其最后状态
func (a CategoryService) Remove(userID, id string) (*cms.Category, error) {
	category, err := a.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if err := a.categoryRepository.Delete(category.ID); err != nil {
		return nil, err
	}

	return category, nil
}

func (a CategoryService) getOwned(userID, id string) (*cms.Category, error) {
	category, err := a.categoryRepository.GetOwned(id, userID)
	if err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.CategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

func (a CategoryService) checkName(name string) error {
	if _, err := a.categoryRepository.GetByName(name); err == nil {
		return errors.CategoryAlreadyExists
	} else if !errors.Is(err, errors.DatabaseRecordNotFound) {
		return err
	}

	return nil
}
