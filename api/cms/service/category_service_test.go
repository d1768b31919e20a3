package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/models/cms"
)

func TestCategoryService_Create(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice")

	category := env.category(t, user.ID, "tech")
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, user.ID, category.UserID)

	_, err := env.categories.Create(user.ID, &cms.CategoryForm{Name: "tech"})
	assert.ErrorIs(t, err, errors.CategoryAlreadyExists)

	_, err = env.categories.Create(uuid.NewString(), &cms.CategoryForm{Name: "sport"})
	assert.ErrorIs(t, err, errors.UserOwnerNotFound)
	assert.Equal(t, 400, errors.HTTPStatusCode(err))
}

func TestCategoryService_Get(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice")
	created := env.category(t, user.ID, "tech")

	category, err := env.categories.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, category.User)
	assert.Equal(t, "alice", category.User.Username)
	assert.Empty(t, category.User.Password)

	_, err = env.categories.Get(uuid.NewString())
	assert.ErrorIs(t, err, errors.CategoryNotFound)
	assert.Equal(t, 400, errors.HTTPStatusCode(err))
}

func TestCategoryService_Update(t *testing.T) {
	env := newTestEnv(t)
	owner := env.register(t, "alice")
	stranger := env.register(t, "mallory")
	category := env.category(t, owner.ID, "tech")
	env.category(t, owner.ID, "sport")

	_, err := env.categories.Update(stranger.ID, category.ID, &cms.CategoryUpdateForm{Name: strPtr("hacked")})
	assert.ErrorIs(t, err, errors.CategoryNotFound)

	_, err = env.categories.Update(owner.ID, category.ID, &cms.CategoryUpdateForm{Name: strPtr("sport")})
	assert.ErrorIs(t, err, errors.CategoryAlreadyExists)

	updated, err := env.categories.Update(owner.ID, category.ID, &cms.CategoryUpdateForm{Name: strPtr("science")})
	require.NoError(t, err)
	assert.Equal(t, "science", updated.Name)
	assert.False(t, updated.UpdatedAt.Before(category.UpdatedAt))

	// 空表单不修改任何字段
	unchanged, err := env.categories.Update(owner.ID, category.ID, &cms.CategoryUpdateForm{})
	require.NoError(t, err)
	assert.Equal(t, "science", unchanged.Name)
}

func TestCategoryService_Remove(t *testing.T) {
	env := newTestEnv(t)
	owner := env.register(t, "alice")
	stranger := env.register(t, "mallory")
	category := env.category(t, owner.ID, "tech")

	news, err := env.news.Create(owner.ID, &cms.NewsForm{CategoryID: category.ID, Content: "hello"})
	require.NoError(t, err)

	_, err = env.categories.Remove(stranger.ID, category.ID)
	assert.ErrorIs(t, err, errors.CategoryNotFound)

	removed, err := env.categories.Remove(owner.ID, category.ID)
	require.NoError(t, err)
	assert.Equal(t, category.ID, removed.ID)
	assert.False(t, removed.UpdatedAt.IsZero())

	_, err = env.categories.Get(category.ID)
	assert.ErrorIs(t, err, errors.CategoryNotFound)

	orphan, err := env.news.Get(news.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.CategoryID)
	assert.Nil(t, orphan.Category)
}
