package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"griddle/app/models"
	"griddle/app/repositories"
	"griddle/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a CommentController over the given repositories.
func NewCommentController(commentRepo repositories.CommentRepository, postIndex repositories.PostIndexRepository) *CommentController {
	return &CommentController{
		commentService: services.NewCommentService(commentRepo, postIndex),
	}
}

// SetService sets the comment service for testing
func (cc *CommentController) SetService(service *services.CommentService) {
	cc.commentService = service
}

// Index lists all comments for a post.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	comments, err := cc.commentService.ListComments(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Post not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to fetch comments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	cc.sendJSON(w, map[string]interface{}{
		"post_slug": slug,
		"comments":  comments,
	})
}

// Create adds a comment to a post. Posts with comments disabled in their
// front matter refuse new comments with a 403.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	comment.PostSlug = slug

	if err := cc.commentService.CreateComment(&comment); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			sendError(w, r, "Post not found", http.StatusNotFound)
		case errors.Is(err, services.ErrCommentsDisabled):
			sendError(w, r, "Comments are disabled for this post", http.StatusForbidden)
		default:
			sendError(w, r, "Failed to create comment: "+err.Error(), http.StatusBadRequest)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(comment)
}

// Edit updates an existing comment.
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		sendError(w, r, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	comment.ID = id

	if err := cc.commentService.UpdateComment(&comment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Comment not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to update comment: "+err.Error(), http.StatusBadRequest)
		return
	}

	cc.sendJSON(w, comment)
}

// Delete removes a comment.
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		sendError(w, r, "Invalid comment ID", http.StatusBadRequest)
		return
	}

	if err := cc.commentService.DeleteComment(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, r, "Comment not found", http.StatusNotFound)
			return
		}
		sendError(w, r, "Failed to delete comment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (cc *CommentController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}
