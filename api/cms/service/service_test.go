package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/models/dto"
	"github.com/top-system/light-news/pkg/websocket"
)

type testEnv struct {
	config   lib.Config
	db       lib.Database
	comments repository.CommentRepository
	feed     *websocket.Hub

	auth       service.AuthService
	users      service.UserService
	categories service.CategoryService
	news       service.NewsService
	pages      service.PageService
	auditLogs  service.AuditLogService
}

func newTestConfig() lib.Config {
	config := lib.DefaultConfig()
	config.Auth.Secret = "test-secret"
	config.Database.Engine = "sqlite"
	config.Database.Name = ":memory:"
	config.Database.ConnectRetry = 0
	config.Crontab.Enable = false
	return config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	config := newTestConfig()
	logger := lib.NewNopLogger()

	db, err := lib.OpenDatabase(config, logger)
	require.NoError(t, err)
	require.NoError(t, db.ORM.AutoMigrate(cms.Models()...))
	t.Cleanup(func() {
		if sqlDB, err := db.ORM.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cache := lib.NewMemoryCache(config, logger)
	t.Cleanup(func() { _ = cache.Close() })

	feed := websocket.New(logger.DesugarZap)
	t.Cleanup(feed.Close)

	userRepository := repository.NewUserRepository(db, logger)
	categoryRepository := repository.NewCategoryRepository(db, logger)
	newsRepository := repository.NewNewsRepository(db, logger)
	commentRepository := repository.NewCommentRepository(db, logger)
	pageRepository := repository.NewPageRepository(db, logger)
	auditLogRepository := repository.NewAuditLogRepository(db, logger)

	return &testEnv{
		config:     config,
		db:         db,
		comments:   commentRepository,
		feed:       feed,
		auth:       service.NewAuthService(cache, config),
		users:      service.NewUserService(logger, userRepository),
		categories: service.NewCategoryService(logger, userRepository, categoryRepository),
		news: service.NewNewsService(logger, feed, userRepository, categoryRepository,
			newsRepository, commentRepository),
		pages:     service.NewPageService(logger, userRepository, pageRepository),
		auditLogs: service.NewAuditLogService(logger, config, lib.Crontab{}, auditLogRepository),
	}
}

func (e *testEnv) register(t *testing.T, username string) *cms.User {
	t.Helper()

	user, err := e.users.Register(&dto.Register{Username: username, Password: "secret-" + username})
	require.NoError(t, err)
	return user
}

func (e *testEnv) category(t *testing.T, userID, name string) *cms.Category {
	t.Helper()

	category, err := e.categories.Create(userID, &cms.CategoryForm{Name: name})
	require.NoError(t, err)
	return category
}

func strPtr(s string) *string {
	return &s
}
