package services

import (
	"fmt"

	"griddle/app/models"
	"griddle/app/repositories"
)

// PostService handles read-side business logic for posts. Posts are authored
// as files and rendered by the build; the service never creates or mutates
// them.
type PostService struct {
	postIndex   repositories.PostIndexRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postIndex repositories.PostIndexRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postIndex:   postIndex,
		commentRepo: commentRepo,
	}
}

// GetPost retrieves a post by slug with its comments attached.
func (s *PostService) GetPost(slug string) (*models.Post, error) {
	post, err := s.postIndex.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}
	post.Comments = comments

	return post, nil
}

// ListPosts retrieves a paginated list of posts, newest first.
func (s *PostService) ListPosts(page, perPage int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	offset := (page - 1) * perPage
	posts, err := s.postIndex.List(perPage, offset)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		comments, err := s.commentRepo.ListByPost(post.Slug)
		if err != nil {
			return nil, fmt.Errorf("failed to get comments for post %q: %v", post.Slug, err)
		}
		post.Comments = comments
	}

	return posts, nil
}

// ListByCategory retrieves every post carrying the given category, newest
// first.
func (s *PostService) ListByCategory(name string) ([]*models.Post, error) {
	posts, err := s.postIndex.List(0, 0)
	if err != nil {
		return nil, err
	}

	var matched []*models.Post
	for _, post := range posts {
		if post.HasCategory(name) {
			matched = append(matched, post)
		}
	}
	return matched, nil
}

// Categories returns the category tally across every indexed post.
func (s *PostService) Categories() (map[string]int, error) {
	posts, err := s.postIndex.List(0, 0)
	if err != nil {
		return nil, err
	}

	tally := make(map[string]int)
	for _, post := range posts {
		for _, c := range post.Categories {
			tally[c]++
		}
	}
	return tally, nil
}
