package setup

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/models/dto"
	"github.com/top-system/light-news/pkg/hash"
)

// SeedData 初始化数据文件结构
type SeedData struct {
	Users []SeedUser `yaml:"users"`
}

// SeedUser 密码可为明文或已有的 bcrypt 哈希
type SeedUser struct {
	Username   string     `yaml:"username"`
	Password   string     `yaml:"password"`
	Categories []string   `yaml:"categories"`
	Pages      []SeedPage `yaml:"pages"`
}

type SeedPage struct {
	CustomURL   string `yaml:"customUrl"`
	PageContent string `yaml:"pageContent"`
}

// LoadSeed decodes a seed YAML file
func LoadSeed(path string) (*SeedData, error) {
	fs, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fs.Close()

	data := new(SeedData)
	if err := yaml.NewDecoder(fs).Decode(data); err != nil {
		return nil, err
	}

	return data, nil
}

// Seeder creates seed records through the services, skipping ones that already exist
type Seeder struct {
	logger          lib.Logger
	userRepository  repository.UserRepository
	userService     service.UserService
	categoryService service.CategoryService
	pageService     service.PageService
}

func (a Seeder) Run(data *SeedData) error {
	for _, u := range data.Users {
		user, err := a.createUser(u)
		if errors.Is(err, errors.UserAlreadyExists) {
			a.logger.Zap.Infof("user %s already exists, skipping creation", u.Username)
			user, err = a.userRepository.GetByUsername(u.Username)
		}
		if err != nil {
			return errors.Wrapf(err, "seed user %s", u.Username)
		}

		for _, name := range u.Categories {
			_, err := a.categoryService.Create(user.ID, &cms.CategoryForm{Name: name})
			if err != nil && !errors.Is(err, errors.CategoryAlreadyExists) {
				return errors.Wrapf(err, "seed category %s", name)
			}
		}

		for _, p := range u.Pages {
			_, err := a.pageService.Create(user.ID, &cms.PageForm{CustomURL: p.CustomURL, PageContent: p.PageContent})
			if err != nil && !errors.Is(err, errors.PageAlreadyExists) {
				return errors.Wrapf(err, "seed page %s", p.CustomURL)
			}
		}

		a.logger.Zap.Infof("seeded user %s: %d categories, %d pages", u.Username, len(u.Categories), len(u.Pages))
	}

	return nil
}

// createUser 明文密码走注册流程, bcrypt 哈希原样写入
func (a Seeder) createUser(u SeedUser) (*cms.User, error) {
	if !hash.IsBcryptHash(u.Password) {
		return a.userService.Register(&dto.Register{Username: u.Username, Password: u.Password})
	}

	if _, err := a.userRepository.GetByUsername(u.Username); err == nil {
		return nil, errors.UserAlreadyExists
	} else if !errors.Is(err, errors.DatabaseRecordNotFound) {
		return nil, err
	}

	user := &cms.User{Username: u.Username, Password: u.Password}
	if err := a.userRepository.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}
