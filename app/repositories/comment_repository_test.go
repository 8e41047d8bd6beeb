package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"griddle/app/models"
)

func TestCommentCreateAssignsIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	c1 := &models.Comment{PostSlug: "p", Author: "Jess", Content: "First"}
	c2 := &models.Comment{PostSlug: "p", Author: "Sam", Content: "Second"}

	require.NoError(t, repo.Create(c1))
	require.NoError(t, repo.Create(c2))

	assert.Equal(t, 1, c1.ID)
	assert.Equal(t, 2, c2.ID)
	assert.False(t, c1.CreatedAt.IsZero())
}

func TestCommentGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	comment := &models.Comment{PostSlug: "p", Author: "Jess", Content: "Hello"}
	require.NoError(t, repo.Create(comment))

	got, err := repo.GetByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jess", got.Author)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentListByPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	require.NoError(t, repo.Create(&models.Comment{PostSlug: "a", Author: "Jess", Content: "On a"}))
	require.NoError(t, repo.Create(&models.Comment{PostSlug: "b", Author: "Sam", Content: "On b"}))
	require.NoError(t, repo.Create(&models.Comment{PostSlug: "a", Author: "Kim", Content: "Also on a"}))

	comments, err := repo.ListByPost("a")
	require.NoError(t, err)
	assert.Len(t, comments, 2)
	for _, c := range comments {
		assert.Equal(t, "a", c.PostSlug)
	}

	comments, err = repo.ListByPost("empty")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	comment := &models.Comment{PostSlug: "p", Author: "Jess", Content: "Before"}
	require.NoError(t, repo.Create(comment))

	comment.Content = "After"
	require.NoError(t, repo.Update(comment))

	got, err := repo.GetByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Content)

	missing := &models.Comment{ID: 999, PostSlug: "p", Author: "X Y", Content: "?"}
	assert.ErrorIs(t, repo.Update(missing), ErrNotFound)
}

func TestCommentDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerCommentRepository(db)

	comment := &models.Comment{PostSlug: "p", Author: "Jess", Content: "Bye"}
	require.NoError(t, repo.Create(comment))

	require.NoError(t, repo.Delete(comment.ID))

	_, err := repo.GetByID(comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(comment.ID), ErrNotFound)
}
