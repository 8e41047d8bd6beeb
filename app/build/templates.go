package build

import (
	"html/template"

	"griddle/app/models"
	"griddle/app/views"
)

// LoadTemplates parses the embedded page templates. Each page template is
// combined with the shared layout, mirroring how the pages are executed:
// always through the "layout" entry point.
func LoadTemplates() map[string]*template.Template {
	templates := make(map[string]*template.Template)
	templates["index"] = template.Must(template.ParseFS(views.FS, "layout.html", "index.html"))
	templates["post"] = template.Must(template.ParseFS(views.FS, "layout.html", "post.html"))
	templates["category"] = template.Must(template.ParseFS(views.FS, "layout.html", "category.html"))
	return templates
}

// IndexData feeds the index and archive pages.
type IndexData struct {
	SiteTitle string
	Posts     []*models.Post
	Page      int
}

// PostData feeds a single post page.
type PostData struct {
	SiteTitle string
	Post      *models.Post
	HTML      template.HTML
	Comments  []*models.Comment
}

// CategoryData feeds a category listing page.
type CategoryData struct {
	SiteTitle string
	Category  string
	Posts     []*models.Post
}
