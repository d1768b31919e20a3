package service_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/models/cms"
)

func TestNewsService_Create(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice")
	category := env.category(t, user.ID, "tech")

	news, err := env.news.Create(user.ID, &cms.NewsForm{CategoryID: category.ID, Content: "go 2 released"})
	require.NoError(t, err)
	assert.NotEmpty(t, news.ID)
	assert.Equal(t, user.ID, news.AuthorID)
	require.NotNil(t, news.CategoryID)
	assert.Equal(t, category.ID, *news.CategoryID)

	_, err = env.news.Create(uuid.NewString(), &cms.NewsForm{CategoryID: category.ID, Content: "x"})
	assert.ErrorIs(t, err, errors.AuthorNotFound)

	_, err = env.news.Create(user.ID, &cms.NewsForm{CategoryID: uuid.NewString(), Content: "x"})
	assert.ErrorIs(t, err, errors.CategoryNotFound)
}

func TestNewsService_GetWithRelations(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice")
	category := env.category(t, user.ID, "tech")

	created, err := env.news.Create(user.ID, &cms.NewsForm{CategoryID: category.ID, Content: "hello"})
	require.NoError(t, err)

	_, err = env.news.CreateComment(created.ID, &cms.CommentForm{Name: "bob", Comment: "first"})
	require.NoError(t, err)
	_, err = env.news.CreateComment(created.ID, &cms.CommentForm{Name: "carol", Comment: "second"})
	require.NoError(t, err)

	news, err := env.news.Get(created.ID)
	require.NoError(t, err)

	vo := news.ToVO()
	require.NotNil(t, vo.Author)
	assert.Equal(t, "alice", vo.Author.Username)
	require.NotNil(t, vo.Category)
	assert.Equal(t, "tech", vo.Category.Name)
	assert.Len(t, vo.Comments, 2)

	_, err = env.news.Get(uuid.NewString())
	assert.ErrorIs(t, err, errors.NewsNotFound)
}

func TestNewsService_Update(t *testing.T) {
	env := newTestEnv(t)
	author := env.register(t, "alice")
	stranger := env.register(t, "mallory")
	tech := env.category(t, author.ID, "tech")
	sport := env.category(t, author.ID, "sport")

	news, err := env.news.Create(author.ID, &cms.NewsForm{CategoryID: tech.ID, Content: "hello"})
	require.NoError(t, err)

	_, err = env.news.Update(stranger.ID, news.ID, &cms.NewsUpdateForm{Content: strPtr("hacked")})
	assert.ErrorIs(t, err, errors.NewsNotFound)

	_, err = env.news.Update(author.ID, news.ID, &cms.NewsUpdateForm{CategoryID: strPtr(uuid.NewString())})
	assert.ErrorIs(t, err, errors.CategoryNotFound)

	updated, err := env.news.Update(author.ID, news.ID, &cms.NewsUpdateForm{
		CategoryID: strPtr(sport.ID),
		Content:    strPtr("updated"),
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Content)
	assert.Equal(t, sport.ID, *updated.CategoryID)

	reloaded, err := env.news.Get(news.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", reloaded.Content)
	assert.Equal(t, "sport", reloaded.Category.Name)
}

func TestNewsService_RemoveDeletesComments(t *testing.T) {
	env := newTestEnv(t)
	author := env.register(t, "alice")
	stranger := env.register(t, "mallory")
	category := env.category(t, author.ID, "tech")

	news, err := env.news.Create(author.ID, &cms.NewsForm{CategoryID: category.ID, Content: "hello"})
	require.NoError(t, err)
	_, err = env.news.CreateComment(news.ID, &cms.CommentForm{Name: "bob", Comment: "nice"})
	require.NoError(t, err)

	_, err = env.news.Remove(stranger.ID, news.ID)
	assert.ErrorIs(t, err, errors.NewsNotFound)

	removed, err := env.news.Remove(author.ID, news.ID)
	require.NoError(t, err)
	assert.Equal(t, news.ID, removed.ID)

	count, err := env.comments.CountByNews(news.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNewsService_CreateComment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.news.CreateComment(uuid.NewString(), &cms.CommentForm{Name: "bob", Comment: "hi"})
	assert.ErrorIs(t, err, errors.NewsNotFound)
	assert.Equal(t, 400, errors.HTTPStatusCode(err))

	author := env.register(t, "alice")
	category := env.category(t, author.ID, "tech")
	news, err := env.news.Create(author.ID, &cms.NewsForm{CategoryID: category.ID, Content: "hello"})
	require.NoError(t, err)

	comment, err := env.news.CreateComment(news.ID, &cms.CommentForm{Name: "bob", Comment: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, news.ID, comment.NewsID)
}

func TestNewsService_PublishesToFeed(t *testing.T) {
	env := newTestEnv(t)

	server := httptest.NewServer(env.feed)
	t.Cleanup(server.Close)

	conn, _, err := gorillaws.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.Eventually(t, func() bool { return env.feed.Count() == 1 }, time.Second, 10*time.Millisecond)

	author := env.register(t, "alice")
	category := env.category(t, author.ID, "tech")
	news, err := env.news.Create(author.ID, &cms.NewsForm{CategoryID: category.ID, Content: "hello"})
	require.NoError(t, err)
	env.news.PublishCreated(news)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type string     `json:"type"`
		Data cms.NewsVO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "news.created", event.Type)
	assert.Equal(t, news.ID, event.Data.ID)
	assert.Equal(t, author.ID, event.Data.AuthorID)
}
