package repositories

import (
	"github.com/dgraph-io/badger/v4"
)

// BadgerBuildCacheRepository implements BuildCacheRepository using BadgerDB.
// Keys are "digest:<slug>"; values are the raw blake2b sum of the post's
// source file.
type BadgerBuildCacheRepository struct {
	db *badger.DB
}

// NewBadgerBuildCacheRepository creates a new BadgerBuildCacheRepository
func NewBadgerBuildCacheRepository(db *badger.DB) *BadgerBuildCacheRepository {
	return &BadgerBuildCacheRepository{db: db}
}

// Digest returns the stored digest for a slug, or ErrNotFound.
func (r *BadgerBuildCacheRepository) Digest(slug string) ([]byte, error) {
	var sum []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(DigestKeyPrefix + slug))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		sum, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sum, nil
}

// SetDigest records the digest for a slug.
func (r *BadgerBuildCacheRepository) SetDigest(slug string, sum []byte) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(DigestKeyPrefix+slug), sum)
	})
}
