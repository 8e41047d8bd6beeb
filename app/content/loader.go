package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"griddle/app/models"
)

// filenameRe matches Jekyll's YYYY-MM-DD-slug naming convention.
var filenameRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// LoadDir walks dir for markdown files and returns the parsed posts sorted
// newest-first. A single malformed file fails the whole load; partially
// loaded content never reaches the site.
func LoadDir(dir string) ([]*models.Post, error) {
	var posts []*models.Post

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}

		post, err := ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %v", path, err)
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})

	return posts, nil
}

// ParseFile reads and parses a single post file.
func ParseFile(path string) (*models.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

// Parse hydrates a Post from the file's source text. The filename supplies
// the slug and a default date; front matter values win when both exist.
func Parse(path, src string) (*models.Post, error) {
	block, body, err := SplitFrontMatter(src)
	if err != nil {
		return nil, err
	}

	fm, err := ParseFrontMatter(block)
	if err != nil {
		return nil, err
	}

	slug, fileDate := parseFilename(path)

	post := &models.Post{
		Slug:            slug,
		Path:            path,
		Title:           fm.Title,
		Date:            fileDate,
		Categories:      fm.Categories,
		Layout:          fm.Layout,
		CommentsEnabled: fm.Comments,
		FrontMatter:     fm.Raw,
		Body:            body,
	}

	if fm.HasDate {
		post.Date = fm.Date
	}
	if post.Title == "" {
		post.Title = titleize(slug)
	}

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %v", err)
	}

	return post, nil
}

// parseFilename extracts the slug and, when present, the date encoded in the
// file's name.
func parseFilename(path string) (slug string, date time.Time) {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	if m := filenameRe.FindStringSubmatch(name); m != nil {
		if t, err := time.Parse("2006-01-02", m[1]); err == nil {
			return m[2], t
		}
	}
	return name, time.Time{}
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// titleize turns a slug into a readable fallback title.
func titleize(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
