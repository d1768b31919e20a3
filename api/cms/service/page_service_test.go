package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/models/cms"
)

func TestPageService_Create(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "alice")

	page, err := env.pages.Create(user.ID, &cms.PageForm{CustomURL: "about", PageContent: "<p>hi</p>"})
	require.NoError(t, err)
	assert.NotEmpty(t, page.ID)

	_, err = env.pages.Create(user.ID, &cms.PageForm{CustomURL: "about", PageContent: "again"})
	assert.ErrorIs(t, err, errors.PageAlreadyExists)

	_, err = env.pages.Create(uuid.NewString(), &cms.PageForm{CustomURL: "contact", PageContent: "x"})
	assert.ErrorIs(t, err, errors.UserOwnerNotFound)

	got, err := env.pages.Get(page.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.ToVO().User.Username)

	_, err = env.pages.Get(uuid.NewString())
	assert.ErrorIs(t, err, errors.PageNotFound)
}

func TestPageService_UpdateAndRemove(t *testing.T) {
	env := newTestEnv(t)
	owner := env.register(t, "alice")
	stranger := env.register(t, "mallory")

	about, err := env.pages.Create(owner.ID, &cms.PageForm{CustomURL: "about", PageContent: "a"})
	require.NoError(t, err)
	_, err = env.pages.Create(owner.ID, &cms.PageForm{CustomURL: "contact", PageContent: "c"})
	require.NoError(t, err)

	_, err = env.pages.Update(stranger.ID, about.ID, &cms.PageUpdateForm{PageContent: strPtr("x")})
	assert.ErrorIs(t, err, errors.PageNotFound)

	_, err = env.pages.Update(owner.ID, about.ID, &cms.PageUpdateForm{CustomURL: strPtr("contact")})
	assert.ErrorIs(t, err, errors.PageAlreadyExists)

	updated, err := env.pages.Update(owner.ID, about.ID, &cms.PageUpdateForm{
		CustomURL:   strPtr("about-us"),
		PageContent: strPtr("b"),
	})
	require.NoError(t, err)
	assert.Equal(t, "about-us", updated.CustomURL)
	assert.Equal(t, "b", updated.PageContent)

	_, err = env.pages.Remove(stranger.ID, about.ID)
	assert.ErrorIs(t, err, errors.PageNotFound)

	removed, err := env.pages.Remove(owner.ID, about.ID)
	require.NoError(t, err)
	assert.Equal(t, about.ID, removed.ID)

	pages, err := env.pages.Query()
	require.NoError(t, err)
	assert.Len(t, pages, 1)
}
