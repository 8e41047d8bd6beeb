package routes

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"griddle/app/models"
	"griddle/app/repositories"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestData indexes two rendered posts: one with comments enabled, one
// without.
func setupTestData(t *testing.T, db *badger.DB) {
	index := repositories.NewBadgerPostIndexRepository(db)

	open := &models.Post{
		Slug:            "json-schema",
		Title:           "Validating With JSON Schema",
		Date:            time.Date(2016, 1, 5, 0, 0, 0, 0, time.UTC),
		Categories:      []string{"nodejs"},
		CommentsEnabled: true,
		Body:            "body",
		HTML:            "<p>rendered json-schema</p>",
	}
	closed := &models.Post{
		Slug:       "npm-left-pad",
		Title:      "The Left-Pad Incident",
		Date:       time.Date(2016, 3, 24, 0, 0, 0, 0, time.UTC),
		Categories: []string{"nodejs", "npm"},
		Body:       "body",
		HTML:       "<p>rendered left-pad</p>",
	}

	require.NoError(t, index.Put(open))
	require.NoError(t, index.Put(closed))
}

func testRouter(t *testing.T) (*badger.DB, *mux.Router) {
	db := setupTestDB(t)
	setupTestData(t, db)
	router := SetupRoutes(db, nil, Options{
		SiteTitle: "Test Blog",
		BaseURL:   "http://example.com",
	})
	return db, router
}
