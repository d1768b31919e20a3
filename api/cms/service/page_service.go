package service

import (
	"gorm.io/gorm"

	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

// PageService service layer
type PageService struct {
	logger         lib.Logger
	userRepository repository.UserRepository
	pageRepository repository.PageRepository
}

// NewPageService creates a new page service
func NewPageService(
	logger lib.Logger,
	userRepository repository.UserRepository,
	pageRepository repository.PageRepository,
) PageService {
	return PageService{
		logger:         logger,
		userRepository: userRepository,
		pageRepository: pageRepository,
	}
}

// WithTrx delegates transaction to repository database
func (a PageService) WithTrx(trxHandle *gorm.DB) PageService {
	a.userRepository = a.userRepository.WithTrx(trxHandle)
	a.pageRepository = a.pageRepository.WithTrx(trxHandle)
	return a
}

func (a PageService) Query() (cms.Pages, error) {
	return a.pageRepository.Query()
}

func (a PageService) Get(id string) (*cms.Page, error) {
	page, err := a.pageRepository.Get(id)
	if err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.PageNotFound
		}
		return nil, err
	}

	return page, nil
}

func (a PageService) Create(userID string, form *cms.PageForm) (*cms.Page, error) {
	if _, err := a.userRepository.Get(userID); err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.UserOwnerNotFound
		}
		return nil, err
	}

	if err := a.checkCustomURL(form.CustomURL); err != nil {
		return nil, err
	}

	page := &cms.Page{
		CustomURL:   form.CustomURL,
		PageContent: form.PageContent,
		UserID:      userID,
	}

	if err := a.pageRepository.Create(page); err != nil {
		if errors.Is(err, errors.DatabaseDuplicatedKey) {
			return nil, errors.PageAlreadyExists
		}
		return nil, err
	}

	return page, nil
}

func (a PageService) Update(userID, id string, form *cms.PageUpdateForm) (*cms.Page, error) {
	page, err := a.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if form.CustomURL != nil && *form.CustomURL != page.CustomURL {
		if err := a.checkCustomURL(*form.CustomURL); err != nil {
			return nil, err
		}
		page.CustomURL = *form.CustomURL
	}

	if form.PageContent != nil {
		page.PageContent = *form.PageContent
	}

	if err := a.pageRepository.Update(page); err != nil {
		if errors.Is(err, errors.DatabaseDuplicatedKey) {
			return nil, errors.PageAlreadyExists
		}
		return nil, err
	}

	return page, nil
}

func (a PageService) Remove(userID, id string) (*cms.Page, error) {
	page, err := a.getOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if err := a.pageRepository.Delete(page.ID); err != nil {
		return nil, err
	}

	return page, nil
}

func (a PageService) getOwned(userID, id string) (*cms.Page, error) {
	page, err := a.pageRepository.GetOwned(id, userID)
	if err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.PageNotFound
		}
		return nil, err
	}

	return page, nil
}

func (a PageService) checkCustomURL(customURL string) error {
	if _, err := a.pageRepository.GetByCustomURL(customURL); err == nil {
		return errors.PageAlreadyExists
	} else if !errors.Is(err, errors.DatabaseRecordNotFound) {
		return err
	}

	return nil
}
