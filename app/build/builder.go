package build

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"griddle/app/models"
	"griddle/app/repositories"
)

// Builder turns loaded posts into a static site. Rendered posts are also
// written to the post index so the dynamic server can reuse them, and each
// post's source digest is recorded so unchanged posts skip the markdown
// renderer on the next run.
type Builder struct {
	SiteTitle string
	BaseURL   string
	OutDir    string

	index  repositories.PostIndexRepository
	cache  repositories.BuildCacheRepository
	md     goldmark.Markdown
	pages  map[string]*template.Template
	logger *zap.SugaredLogger
}

// Result summarizes a build run.
type Result struct {
	Rendered int
	Skipped  int
	Pages    int
}

// NewBuilder creates a Builder writing to outDir.
func NewBuilder(siteTitle, baseURL, outDir string, index repositories.PostIndexRepository, cache repositories.BuildCacheRepository, logger *zap.SugaredLogger) *Builder {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Builder{
		SiteTitle: siteTitle,
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		OutDir:    outDir,
		index:     index,
		cache:     cache,
		md:        NewMarkdown(),
		pages:     LoadTemplates(),
		logger:    logger,
	}
}

// Build renders every post and writes the full site: post pages, the index,
// one page per category, and the Atom feed.
func (b *Builder) Build(posts []*models.Post) (*Result, error) {
	result := &Result{}

	if err := os.MkdirAll(b.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %v", err)
	}

	for _, post := range posts {
		rendered, err := b.renderPost(post)
		if err != nil {
			return nil, err
		}
		if rendered {
			result.Rendered++
		} else {
			result.Skipped++
		}

		if err := b.writePostPage(post); err != nil {
			return nil, err
		}
		result.Pages++
	}

	if err := b.writeIndexPage(posts); err != nil {
		return nil, err
	}
	result.Pages++

	categories := CategoryTally(posts)
	for name := range categories {
		if err := b.writeCategoryPage(name, posts); err != nil {
			return nil, err
		}
		result.Pages++
	}

	if err := b.writeFeed(posts); err != nil {
		return nil, err
	}
	result.Pages++

	b.logger.Infow("site built",
		"out", b.OutDir,
		"rendered", result.Rendered,
		"skipped", result.Skipped,
		"pages", result.Pages,
	)
	return result, nil
}

// renderPost fills post.HTML, reusing the indexed copy when the source
// digest is unchanged. Returns true when the markdown renderer actually ran.
func (b *Builder) renderPost(post *models.Post) (bool, error) {
	sum := PostDigest(post)

	if prev, err := b.cache.Digest(post.Slug); err == nil && string(prev) == string(sum) {
		if cached, err := b.index.GetBySlug(post.Slug); err == nil && cached.HTML != "" {
			post.HTML = cached.HTML
			return false, nil
		}
	}

	html, err := RenderHTML(b.md, post.Body)
	if err != nil {
		return false, fmt.Errorf("%s: %v", post.Path, err)
	}
	post.HTML = html

	if err := b.index.Put(post); err != nil {
		return false, fmt.Errorf("failed to index post %q: %v", post.Slug, err)
	}
	if err := b.cache.SetDigest(post.Slug, sum); err != nil {
		return false, fmt.Errorf("failed to record digest for %q: %v", post.Slug, err)
	}
	return true, nil
}

func (b *Builder) writePostPage(post *models.Post) error {
	data := PostData{
		SiteTitle: b.SiteTitle,
		Post:      post,
		HTML:      template.HTML(post.HTML),
	}
	return b.writePage(filepath.Join("posts", post.Slug, "index.html"), "post", data)
}

func (b *Builder) writeIndexPage(posts []*models.Post) error {
	data := IndexData{SiteTitle: b.SiteTitle, Posts: posts, Page: 1}
	return b.writePage("index.html", "index", data)
}

func (b *Builder) writeCategoryPage(name string, posts []*models.Post) error {
	var matched []*models.Post
	for _, post := range posts {
		if post.HasCategory(name) {
			matched = append(matched, post)
		}
	}
	data := CategoryData{SiteTitle: b.SiteTitle, Category: name, Posts: matched}
	return b.writePage(filepath.Join("categories", categorySlug(name), "index.html"), "category", data)
}

// categorySlug makes a category name safe to use as a single directory name.
// Authors occasionally write categories like "node/js"; nesting those would
// put the page where no route can find it.
func categorySlug(name string) string {
	slug := strings.NewReplacer("/", "-", "\\", "-").Replace(name)
	if slug == "." || slug == ".." {
		return "-"
	}
	return slug
}

func (b *Builder) writeFeed(posts []*models.Post) error {
	feed, err := RenderFeed(b.SiteTitle, b.BaseURL, posts, time.Now())
	if err != nil {
		return err
	}
	return b.writeFile("feed.xml", feed)
}

func (b *Builder) writePage(rel, page string, data any) error {
	tmpl, ok := b.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}

	path := filepath.Join(b.OutDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tmpl.ExecuteTemplate(f, "layout", data); err != nil {
		return fmt.Errorf("template error on %s: %v", rel, err)
	}
	return nil
}

func (b *Builder) writeFile(rel string, data []byte) error {
	path := filepath.Join(b.OutDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PostDigest fingerprints everything that affects a post's rendered page.
func PostDigest(post *models.Post) []byte {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(post.Title))
	h.Write([]byte{0})
	h.Write([]byte(post.Date.UTC().Format(time.RFC3339)))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(post.Categories, ",")))
	h.Write([]byte{0})
	h.Write([]byte(post.Body))
	return h.Sum(nil)
}

// CategoryTally counts posts per category.
func CategoryTally(posts []*models.Post) map[string]int {
	tally := make(map[string]int)
	for _, post := range posts {
		for _, c := range post.Categories {
			tally[c]++
		}
	}
	return tally
}

// CategoryNames returns the categories present across posts, sorted.
func CategoryNames(posts []*models.Post) []string {
	tally := CategoryTally(posts)
	names := make([]string, 0, len(tally))
	for name := range tally {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
