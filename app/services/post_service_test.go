package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"griddle/app/models"
	"griddle/app/repositories"
	"griddle/app/repositories/mock"
)

func seedPosts(t *testing.T, index *mock.PostIndexRepository) {
	t.Helper()
	posts := []*models.Post{
		{
			Slug:       "npm-left-pad",
			Title:      "The Left-Pad Incident",
			Date:       time.Date(2016, 3, 24, 0, 0, 0, 0, time.UTC),
			Categories: []string{"nodejs", "npm"},
			Body:       "body",
		},
		{
			Slug:       "postgres-partitioning",
			Title:      "Partitioning With Triggers",
			Date:       time.Date(2015, 10, 13, 0, 0, 0, 0, time.UTC),
			Categories: []string{"postgres"},
			Body:       "body",
		},
		{
			Slug:            "json-schema",
			Title:           "Validating With JSON Schema",
			Date:            time.Date(2016, 1, 5, 0, 0, 0, 0, time.UTC),
			Categories:      []string{"nodejs"},
			CommentsEnabled: true,
			Body:            "body",
		},
	}
	for _, p := range posts {
		require.NoError(t, index.Put(p))
	}
}

func TestPostServiceGetPost(t *testing.T) {
	index := mock.NewPostIndexRepository()
	comments := mock.NewCommentRepository()
	seedPosts(t, index)
	service := NewPostService(index, comments)

	require.NoError(t, comments.Create(&models.Comment{PostSlug: "json-schema", Author: "Jess", Content: "Nice"}))

	post, err := service.GetPost("json-schema")
	require.NoError(t, err)
	assert.Equal(t, "Validating With JSON Schema", post.Title)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "Jess", post.Comments[0].Author)

	_, err = service.GetPost("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPostServiceListPosts(t *testing.T) {
	index := mock.NewPostIndexRepository()
	seedPosts(t, index)
	service := NewPostService(index, mock.NewCommentRepository())

	t.Run("newest first", func(t *testing.T) {
		posts, err := service.ListPosts(1, 10)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "npm-left-pad", posts[0].Slug)
		assert.Equal(t, "postgres-partitioning", posts[2].Slug)
	})

	t.Run("pagination defaults", func(t *testing.T) {
		// Page and perPage below 1 fall back to sane values.
		posts, err := service.ListPosts(0, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 3)
	})

	t.Run("second page", func(t *testing.T) {
		posts, err := service.ListPosts(2, 2)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "postgres-partitioning", posts[0].Slug)
	})
}

func TestPostServiceListByCategory(t *testing.T) {
	index := mock.NewPostIndexRepository()
	seedPosts(t, index)
	service := NewPostService(index, mock.NewCommentRepository())

	posts, err := service.ListByCategory("nodejs")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "npm-left-pad", posts[0].Slug)
	assert.Equal(t, "json-schema", posts[1].Slug)

	posts, err = service.ListByCategory("golang")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostServiceCategories(t *testing.T) {
	index := mock.NewPostIndexRepository()
	seedPosts(t, index)
	service := NewPostService(index, mock.NewCommentRepository())

	tally, err := service.Categories()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"nodejs": 2, "npm": 1, "postgres": 1}, tally)
}
