package build

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"griddle/app/models"
	"griddle/app/repositories"
	"griddle/app/repositories/mock"
)

func testPost(slug, body string) *models.Post {
	return &models.Post{
		Slug:  slug,
		Path:  "posts/2016-03-24-" + slug + ".md",
		Title: "Title " + slug,
		Date:  time.Date(2016, 3, 24, 0, 0, 0, 0, time.UTC),
		Body:  body,
	}
}

type memCache struct {
	digests map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{digests: make(map[string][]byte)}
}

func (c *memCache) Digest(slug string) ([]byte, error) {
	sum, ok := c.digests[slug]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return sum, nil
}

func (c *memCache) SetDigest(slug string, sum []byte) error {
	c.digests[slug] = sum
	return nil
}

func testBuilder(t *testing.T) (*Builder, *mock.PostIndexRepository, string) {
	t.Helper()
	outDir := t.TempDir()
	index := mock.NewPostIndexRepository()
	b := NewBuilder("Test Blog", "http://example.com", outDir, index, newMemCache(), nil)
	return b, index, outDir
}

func TestBuildWritesSite(t *testing.T) {
	b, index, outDir := testBuilder(t)

	posts := []*models.Post{
		testPost("newest", "# Newest\n\ncontent\n"),
		testPost("oldest", "plain content\n"),
	}
	posts[0].Categories = []string{"nodejs"}
	posts[1].Date = time.Date(2015, 10, 13, 0, 0, 0, 0, time.UTC)

	result, err := b.Build(posts)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Rendered)
	assert.Equal(t, 0, result.Skipped)

	for _, rel := range []string{
		"index.html",
		filepath.Join("posts", "newest", "index.html"),
		filepath.Join("posts", "oldest", "index.html"),
		filepath.Join("categories", "nodejs", "index.html"),
		"feed.xml",
	} {
		_, err := os.Stat(filepath.Join(outDir, rel))
		assert.NoError(t, err, "expected %s to exist", rel)
	}

	page, err := os.ReadFile(filepath.Join(outDir, "posts", "newest", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>Newest</h1>")
	assert.Contains(t, string(page), "Test Blog")

	// Rendered posts land in the index for the server.
	indexed, err := index.GetBySlug("newest")
	require.NoError(t, err)
	assert.Contains(t, indexed.HTML, "<h1>Newest</h1>")
}

func TestBuildIncremental(t *testing.T) {
	b, _, _ := testBuilder(t)

	posts := []*models.Post{testPost("p", "stable content\n")}

	first, err := b.Build(posts)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Rendered)

	// Unchanged source: the renderer is skipped, the page still written.
	second, err := b.Build([]*models.Post{testPost("p", "stable content\n")})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Rendered)
	assert.Equal(t, 1, second.Skipped)

	// Changed source renders again.
	third, err := b.Build([]*models.Post{testPost("p", "edited content\n")})
	require.NoError(t, err)
	assert.Equal(t, 1, third.Rendered)
}

func TestBuildSanitizesCategoryDirs(t *testing.T) {
	b, _, outDir := testBuilder(t)

	posts := []*models.Post{testPost("p", "body\n")}
	posts[0].Categories = []string{"node/js"}

	_, err := b.Build(posts)
	require.NoError(t, err)

	// The separator never nests a directory under categories/.
	_, err = os.Stat(filepath.Join(outDir, "categories", "node-js", "index.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "categories", "node", "js"))
	assert.True(t, os.IsNotExist(err))
}

func TestCategorySlug(t *testing.T) {
	assert.Equal(t, "nodejs", categorySlug("nodejs"))
	assert.Equal(t, "node-js", categorySlug("node/js"))
	assert.Equal(t, "a-b", categorySlug(`a\b`))
	assert.Equal(t, "-", categorySlug(".."))
}

func TestCategoryHelpers(t *testing.T) {
	posts := []*models.Post{
		testPost("a", "x"),
		testPost("b", "x"),
		testPost("c", "x"),
	}
	posts[0].Categories = []string{"nodejs", "npm"}
	posts[1].Categories = []string{"nodejs"}

	tally := CategoryTally(posts)
	assert.Equal(t, map[string]int{"nodejs": 2, "npm": 1}, tally)

	assert.Equal(t, []string{"nodejs", "npm"}, CategoryNames(posts))
}
