package repositories

import (
	"sort"
	"strings"

	"griddle/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostIndexRepository implements PostIndexRepository using BadgerDB.
// Keys are "post:<slug>"; values are the JSON-encoded post including its
// rendered HTML.
type BadgerPostIndexRepository struct {
	db *badger.DB
}

// NewBadgerPostIndexRepository creates a new BadgerPostIndexRepository
func NewBadgerPostIndexRepository(db *badger.DB) *BadgerPostIndexRepository {
	return &BadgerPostIndexRepository{db: db}
}

// Put stores or replaces the indexed post under its slug.
func (r *BadgerPostIndexRepository) Put(post *models.Post) error {
	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(PostKeyPrefix + post.Slug)
		return txn.Set(key, data)
	})
}

// GetBySlug retrieves a post by slug
func (r *BadgerPostIndexRepository) GetBySlug(slug string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(PostKeyPrefix + slug)
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves a paginated list of posts sorted newest-first.
func (r *BadgerPostIndexRepository) List(limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortPostsByDate(posts)

	if offset >= len(posts) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], nil
}

// Slugs returns every indexed slug.
func (r *BadgerPostIndexRepository) Slugs() ([]string, error) {
	var slugs []string
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			slugs = append(slugs, strings.TrimPrefix(string(it.Item().Key()), PostKeyPrefix))
		}
		return nil
	})
	return slugs, err
}

// DeleteBySlug removes a post from the index.
func (r *BadgerPostIndexRepository) DeleteBySlug(slug string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(PostKeyPrefix + slug))
	})
}

// Iterator order is lexical by slug; the site wants newest-first.
func sortPostsByDate(posts []*models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
}
