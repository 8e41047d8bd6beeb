package repositories

import "griddle/app/models"

// PostIndexRepository defines the interface for the rendered-post index. The
// build writes posts here once their markdown is rendered; the server reads
// them back by slug.
type PostIndexRepository interface {
	Put(post *models.Post) error
	GetBySlug(slug string) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	Slugs() ([]string, error)
	DeleteBySlug(slug string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(slug string) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id int) error
}

// BuildCacheRepository stores per-post source digests so unchanged posts can
// be skipped on rebuild.
type BuildCacheRepository interface {
	Digest(slug string) ([]byte, error)
	SetDigest(slug string, sum []byte) error
}
