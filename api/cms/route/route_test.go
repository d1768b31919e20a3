package route_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/top-system/light-news/api/cms/controller"
	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/api/cms/route"
	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/api/middlewares"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/pkg/echox"
	"github.com/top-system/light-news/pkg/websocket"
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Page       *echox.PageInfo `json:"page"`
}

type testServer struct {
	engine *echo.Echo
	feed   *websocket.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	config := lib.DefaultConfig()
	config.Auth.Secret = "route-test-secret"
	config.Database.Engine = "sqlite"
	config.Database.Name = ":memory:"
	config.Crontab.Enable = false
	logger := lib.NewNopLogger()

	db, err := lib.OpenDatabase(config, logger)
	require.NoError(t, err)
	require.NoError(t, db.ORM.AutoMigrate(cms.Models()...))

	cache := lib.NewMemoryCache(config, logger)
	t.Cleanup(func() { _ = cache.Close() })
	feed := websocket.New(logger.DesugarZap)
	t.Cleanup(feed.Close)

	userRepo := repository.NewUserRepository(db, logger)
	categoryRepo := repository.NewCategoryRepository(db, logger)
	newsRepo := repository.NewNewsRepository(db, logger)
	commentRepo := repository.NewCommentRepository(db, logger)
	pageRepo := repository.NewPageRepository(db, logger)
	auditLogRepo := repository.NewAuditLogRepository(db, logger)

	authService := service.NewAuthService(cache, config)
	userService := service.NewUserService(logger, userRepo)
	categoryService := service.NewCategoryService(logger, userRepo, categoryRepo)
	newsService := service.NewNewsService(logger, feed, userRepo, categoryRepo, newsRepo, commentRepo)
	pageService := service.NewPageService(logger, userRepo, pageRepo)
	auditLogService := service.NewAuditLogService(logger, config, lib.Crontab{}, auditLogRepo)

	handler := lib.NewHttpHandler(logger)
	authMiddleware := middlewares.NewAuthMiddleware(handler, logger, authService)
	middlewares.Middlewares{
		middlewares.NewCoreMiddleware(handler, logger, db),
		authMiddleware,
		middlewares.NewAuditMiddleware(handler, logger, auditLogService),
	}.Setup()

	route.NewRoutes(
		route.NewSwaggerRoutes(config, logger, handler),
		route.NewAuthRoutes(logger, handler,
			controller.NewAuthController(userService, authService, lib.NewCaptcha(cache, config, logger), logger),
			authMiddleware),
		route.NewCategoryRoutes(logger, handler, controller.NewCategoryController(categoryService, logger), authMiddleware),
		route.NewNewsRoutes(logger, handler, controller.NewNewsController(newsService, logger), authMiddleware),
		route.NewPageRoutes(logger, handler, controller.NewPageController(pageService, logger), authMiddleware),
		route.NewAuditLogRoutes(logger, handler, controller.NewAuditLogController(auditLogService, logger), authMiddleware),
		route.NewFeedRoutes(logger, handler, controller.NewFeedController(feed, logger)),
	).Setup()

	return &testServer{engine: handler.Engine, feed: feed}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, token string) envelope {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	require.Equal(t, rec.Code, resp.StatusCode)
	return resp
}

func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()

	resp := s.do(t, http.MethodPost, "/auth/register", echo.Map{"username": username, "password": "pw-" + username}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.Message)

	resp = s.do(t, http.MethodPost, "/auth/login", echo.Map{"username": username, "password": "pw-" + username}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Message)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.Token
}

func decode(t *testing.T, raw json.RawMessage) map[string]interface{} {
	t.Helper()

	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestAuthRoutes(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/auth/register", echo.Map{"username": "alice", "password": "secret"}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User created successfully", resp.Message)
	data := decode(t, resp.Data)
	assert.NotEmpty(t, data["userId"])
	assert.NotEmpty(t, data["createdAt"])

	resp = s.do(t, http.MethodPost, "/auth/register", echo.Map{"username": "alice", "password": "secret"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "user already exists", resp.Message)

	resp = s.do(t, http.MethodPost, "/auth/register", echo.Map{"password": "secret"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "username should not be empty", resp.Message)

	resp = s.do(t, http.MethodPost, "/auth/login", echo.Map{"username": "nobody", "password": "secret"}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "user not found", resp.Message)

	resp = s.do(t, http.MethodPost, "/auth/login", echo.Map{"username": "alice", "password": "wrong"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid credentials", resp.Message)

	resp = s.do(t, http.MethodPost, "/auth/login", echo.Map{"username": "alice", "password": "secret"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User logged in successfully", resp.Message)
	data = decode(t, resp.Data)
	token, _ := data["token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Bearer", data["tokenType"])

	resp = s.do(t, http.MethodPost, "/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/category", echo.Map{"name": "tech"}, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "auth token has been revoked", resp.Message)
}

func TestCategoryRoutes(t *testing.T) {
	s := newTestServer(t)
	alice := s.login(t, "alice")
	mallory := s.login(t, "mallory")

	resp := s.do(t, http.MethodPost, "/category", echo.Map{"name": "tech"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/category", echo.Map{"name": "tech"}, alice)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Category created successfully", resp.Message)
	id, _ := decode(t, resp.Data)["categoryId"].(string)
	require.NotEmpty(t, id)

	resp = s.do(t, http.MethodPost, "/category", echo.Map{"name": "tech"}, alice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "category already exists", resp.Message)

	resp = s.do(t, http.MethodGet, "/category", nil, "")
	assert.Equal(t, "Categories fetched successfully", resp.Message)

	resp = s.do(t, http.MethodGet, "/category/"+id, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user, _ := decode(t, resp.Data)["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])

	resp = s.do(t, http.MethodGet, "/category/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid id", resp.Message)

	resp = s.do(t, http.MethodGet, "/category/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "category not found", resp.Message)

	resp = s.do(t, http.MethodPut, "/category/"+id, echo.Map{"name": "hacked"}, mallory)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "category not found", resp.Message)

	resp = s.do(t, http.MethodPut, "/category/"+id, echo.Map{"name": "science"}, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Category updated successfully", resp.Message)
	assert.Equal(t, id, decode(t, resp.Data)["categoryId"])

	resp = s.do(t, http.MethodDelete, "/category/"+id, nil, mallory)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/category/"+id, nil, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Category deleted successfully", resp.Message)
	data := decode(t, resp.Data)
	assert.Equal(t, id, data["categoryId"])
	assert.NotEmpty(t, data["deletedAt"])
}

func TestNewsAndCommentRoutes(t *testing.T) {
	s := newTestServer(t)
	alice := s.login(t, "alice")

	resp := s.do(t, http.MethodPost, "/category", echo.Map{"name": "tech"}, alice)
	categoryID, _ := decode(t, resp.Data)["categoryId"].(string)

	resp = s.do(t, http.MethodPost, "/news", echo.Map{"categoryId": uuid.NewString(), "content": "x"}, alice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "category not found", resp.Message)

	resp = s.do(t, http.MethodPost, "/news", echo.Map{"categoryId": categoryID, "content": "hello"}, alice)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "News created successfully", resp.Message)
	newsID, _ := decode(t, resp.Data)["newsId"].(string)

	resp = s.do(t, http.MethodPost, "/news/"+newsID+"/comments", echo.Map{"name": "bob", "comment": "nice"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Comment created successfully", resp.Message)
	assert.NotEmpty(t, decode(t, resp.Data)["commentId"])

	resp = s.do(t, http.MethodPost, "/news/"+uuid.NewString()+"/comments", echo.Map{"name": "bob", "comment": "nice"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "news not found", resp.Message)

	resp = s.do(t, http.MethodGet, "/news/"+newsID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail cms.NewsVO
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	assert.Equal(t, "alice", detail.Author.Username)
	assert.Equal(t, "tech", detail.Category.Name)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "nice", detail.Comments[0].Comment)

	resp = s.do(t, http.MethodPut, "/news/"+newsID, echo.Map{"content": "updated"}, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "News updated successfully", resp.Message)

	resp = s.do(t, http.MethodDelete, "/news/"+newsID, nil, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, newsID, decode(t, resp.Data)["newsId"])
}

func TestFeedReceivesCommittedWrites(t *testing.T) {
	s := newTestServer(t)
	alice := s.login(t, "alice")

	server := httptest.NewServer(s.engine)
	t.Cleanup(server.Close)
	conn, _, err := gorillaws.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.Eventually(t, func() bool { return s.feed.Count() == 1 }, time.Second, 10*time.Millisecond)

	read := func() (string, map[string]interface{}) {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var event struct {
			Type string                 `json:"type"`
			Data map[string]interface{} `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&event))
		return event.Type, event.Data
	}

	resp := s.do(t, http.MethodPost, "/category", echo.Map{"name": "tech"}, alice)
	categoryID, _ := decode(t, resp.Data)["categoryId"].(string)

	// 失败的写入不推送事件
	resp = s.do(t, http.MethodPost, "/news", echo.Map{"categoryId": uuid.NewString(), "content": "x"}, alice)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/news", echo.Map{"categoryId": categoryID, "content": "hello"}, alice)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	newsID, _ := decode(t, resp.Data)["newsId"].(string)

	eventType, data := read()
	assert.Equal(t, "news.created", eventType)
	assert.Equal(t, newsID, data["id"])

	resp = s.do(t, http.MethodPost, "/news/"+newsID+"/comments", echo.Map{"name": "bob", "comment": "nice"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	eventType, data = read()
	assert.Equal(t, "comment.created", eventType)
	assert.Equal(t, newsID, data["newsId"])
}

func TestPageRoutes(t *testing.T) {
	s := newTestServer(t)
	alice := s.login(t, "alice")

	resp := s.do(t, http.MethodPost, "/pages", echo.Map{"customUrl": "about", "pageContent": "hi"}, alice)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Page created successfully", resp.Message)
	pageID, _ := decode(t, resp.Data)["pageId"].(string)

	resp = s.do(t, http.MethodPost, "/pages", echo.Map{"customUrl": "about", "pageContent": "again"}, alice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "page already exists", resp.Message)

	resp = s.do(t, http.MethodGet, "/pages/"+pageID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "about", decode(t, resp.Data)["customUrl"])

	resp = s.do(t, http.MethodDelete, "/pages/"+pageID, nil, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Page deleted successfully", resp.Message)
}

func TestAuditLogRoutes(t *testing.T) {
	s := newTestServer(t)
	alice := s.login(t, "alice")

	resp := s.do(t, http.MethodPost, "/category", echo.Map{"name": "tech"}, alice)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/logs", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	require.Eventually(t, func() bool {
		resp := s.do(t, http.MethodGet, "/logs?pageSize=10", nil, alice)
		return resp.StatusCode == http.StatusOK && resp.Page != nil && resp.Page.Total >= 1
	}, 2*time.Second, 20*time.Millisecond)

	resp = s.do(t, http.MethodGet, "/logs?module=category", nil, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logs []cms.AuditLogVO
	require.NoError(t, json.Unmarshal(resp.Data, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, http.MethodPost, logs[0].Method)
	assert.Equal(t, http.StatusCreated, logs[0].StatusCode)
}
