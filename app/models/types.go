package models

import "time"

// Post represents a single article loaded from a Jekyll-style markdown file.
// The slug identifies the post everywhere: in URLs, in the rendered-post
// index, and as the owner of its comments.
type Post struct {
	Slug            string         `json:"slug" validate:"required,min=1,max=200"`
	Path            string         `json:"path,omitempty" validate:"-"`
	Title           string         `json:"title" validate:"required,min=1,max=200"`
	Date            time.Time      `json:"date" validate:"required"`
	Categories      []string       `json:"categories,omitempty" validate:"-"`
	Layout          string         `json:"layout,omitempty" validate:"-"`
	CommentsEnabled bool           `json:"comments_enabled"`
	FrontMatter     map[string]any `json:"front_matter,omitempty" validate:"-"`
	Body            string         `json:"body" validate:"required"`
	HTML            string         `json:"html,omitempty" validate:"-"`
	Comments        []*Comment     `json:"comments,omitempty" validate:"-"`
}

// Comment represents a reader comment on a post.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostSlug  string    `json:"post_slug" validate:"required"`
	Author    string    `json:"author" validate:"required,min=2,max=50"`
	Content   string    `json:"content" validate:"required,min=1,max=500"`
	CreatedAt time.Time `json:"created_at"`
}
