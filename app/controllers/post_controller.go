package controllers

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"griddle/app/build"
	"griddle/app/repositories"
	"griddle/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	templates   map[string]*template.Template
	siteTitle   string
	baseURL     string
}

// NewPostController creates a PostController over the given repositories.
func NewPostController(postIndex repositories.PostIndexRepository, commentRepo repositories.CommentRepository, siteTitle, baseURL string) *PostController {
	return &PostController{
		postService: services.NewPostService(postIndex, commentRepo),
		templates:   build.LoadTemplates(),
		siteTitle:   siteTitle,
		baseURL:     baseURL,
	}
}

// SetService sets the post service for testing
func (pc *PostController) SetService(service *services.PostService) {
	pc.postService = service
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	// Parse page parameter
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	// Parse per_page parameter
	perPage := 10
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}

	posts, err := pc.postService.ListPosts(page, perPage)
	if err != nil {
		pc.sendError(w, r, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		pc.sendJSON(w, map[string]interface{}{
			"posts": posts,
			"page":  page,
		})
		return
	}

	data := build.IndexData{
		SiteTitle: pc.siteTitle,
		Posts:     posts,
		Page:      page,
	}
	if err := pc.templates["index"].ExecuteTemplate(w, "layout", data); err != nil {
		pc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	post, err := pc.postService.GetPost(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			pc.sendError(w, r, "Post not found", http.StatusNotFound)
			return
		}
		pc.sendError(w, r, "Failed to fetch post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if isAPIRequest(r) {
		pc.sendJSON(w, post)
		return
	}

	data := build.PostData{
		SiteTitle: pc.siteTitle,
		Post:      post,
		HTML:      template.HTML(post.HTML),
		Comments:  post.Comments,
	}
	if err := pc.templates["post"].ExecuteTemplate(w, "layout", data); err != nil {
		pc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Category handles listing the posts under one category.
func (pc *PostController) Category(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	posts, err := pc.postService.ListByCategory(name)
	if err != nil {
		pc.sendError(w, r, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(posts) == 0 {
		pc.sendError(w, r, "Category not found", http.StatusNotFound)
		return
	}

	if isAPIRequest(r) {
		pc.sendJSON(w, map[string]interface{}{
			"category": name,
			"posts":    posts,
		})
		return
	}

	data := build.CategoryData{
		SiteTitle: pc.siteTitle,
		Category:  name,
		Posts:     posts,
	}
	if err := pc.templates["category"].ExecuteTemplate(w, "layout", data); err != nil {
		pc.sendError(w, r, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// Categories handles the category tally endpoint.
func (pc *PostController) Categories(w http.ResponseWriter, r *http.Request) {
	tally, err := pc.postService.Categories()
	if err != nil {
		pc.sendError(w, r, "Failed to fetch categories: "+err.Error(), http.StatusInternalServerError)
		return
	}

	type category struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	categories := make([]category, 0, len(tally))
	for name, count := range tally {
		categories = append(categories, category{Name: name, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	pc.sendJSON(w, map[string]interface{}{"categories": categories})
}

// Feed serves the Atom feed for the indexed posts.
func (pc *PostController) Feed(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(1, build.FeedLimit)
	if err != nil {
		pc.sendError(w, r, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	feed, err := build.RenderFeed(pc.siteTitle, pc.baseURL, posts, time.Now())
	if err != nil {
		pc.sendError(w, r, "Failed to render feed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	w.Write(feed)
}

// Helper methods for consistent response handling

func isAPIRequest(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json" || strings.HasPrefix(r.URL.Path, "/api")
}

func (pc *PostController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (pc *PostController) sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	sendError(w, r, message, status)
}

func sendError(w http.ResponseWriter, r *http.Request, message string, status int) {
	if isAPIRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
		return
	}
	http.Error(w, message, status)
}
