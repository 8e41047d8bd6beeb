package services

import (
	"errors"
	"fmt"

	"griddle/app/models"
	"griddle/app/repositories"
)

// ErrCommentsDisabled is returned when a comment targets a post whose front
// matter has comments turned off.
var ErrCommentsDisabled = errors.New("comments are disabled for this post")

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postIndex   repositories.PostIndexRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postIndex repositories.PostIndexRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postIndex:   postIndex,
	}
}

// CreateComment creates a comment on the given post. The post must exist and
// must have comments enabled in its front matter.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	post, err := s.postIndex.GetBySlug(comment.PostSlug)
	if err != nil {
		return err
	}
	if !post.CommentsEnabled {
		return ErrCommentsDisabled
	}

	comment.BeforeCreate()
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("invalid comment: %v", err)
	}

	return s.commentRepo.Create(comment)
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id int) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListComments retrieves all comments for a post.
func (s *CommentService) ListComments(slug string) ([]*models.Comment, error) {
	if _, err := s.postIndex.GetBySlug(slug); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(slug)
}

// UpdateComment updates an existing comment's content.
func (s *CommentService) UpdateComment(comment *models.Comment) error {
	existing, err := s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return err
	}

	// Identity fields never change on update.
	comment.PostSlug = existing.PostSlug
	comment.CreatedAt = existing.CreatedAt

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("invalid comment: %v", err)
	}

	return s.commentRepo.Update(comment)
}

// DeleteComment deletes a comment by ID
func (s *CommentService) DeleteComment(id int) error {
	if _, err := s.commentRepo.GetByID(id); err != nil {
		return err
	}
	return s.commentRepo.Delete(id)
}
