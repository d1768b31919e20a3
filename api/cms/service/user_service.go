package service

import (
	"gorm.io/gorm"

	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/models/dto"
	"github.com/top-system/light-news/pkg/hash"
)

// UserService service layer
type UserService struct {
	logger         lib.Logger
	userRepository repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(logger lib.Logger, userRepository repository.UserRepository) UserService {
	return UserService{
		logger:         logger,
		userRepository: userRepository,
	}
}

// WithTrx delegates transaction to repository database
func (a UserService) WithTrx(trxHandle *gorm.DB) UserService {
	a.userRepository = a.userRepository.WithTrx(trxHandle)
	return a
}

// Register 注册用户, 用户名已存在时拒绝
func (a UserService) Register(form *dto.Register) (*cms.User, error) {
	if _, err := a.userRepository.GetByUsername(form.Username); err == nil {
		return nil, errors.UserAlreadyExists
	} else if !errors.Is(err, errors.DatabaseRecordNotFound) {
		return nil, err
	}

	password, err := hash.BcryptHash(form.Password)
	if err != nil {
		return nil, err
	}

	user := &cms.User{
		Username: form.Username,
		Password: password,
	}

	if err := a.userRepository.Create(user); err != nil {
		if errors.Is(err, errors.DatabaseDuplicatedKey) {
			return nil, errors.UserAlreadyExists
		}
		return nil, err
	}

	a.logger.Zap.Infof("user %s registered", user.Username)
	return user, nil
}

// Verify 校验用户名密码
func (a UserService) Verify(username, password string) (*cms.User, error) {
	user, err := a.userRepository.GetByUsername(username)
	if err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return nil, errors.UserRecordNotFound
		}
		return nil, err
	}

	if !hash.BcryptCheck(password, user.Password) {
		return nil, errors.UserInvalidPassword
	}

	return user, nil
}

// Delete 删除用户及其分类、新闻与页面
func (a UserService) Delete(id string) error {
	if _, err := a.userRepository.Get(id); err != nil {
		if errors.Is(err, errors.DatabaseRecordNotFound) {
			return errors.UserOwnerNotFound
		}
		return err
	}

	return a.userRepository.Delete(id)
}
