package routes

import (
	"net/http"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"griddle/app/controllers"
	"griddle/app/middleware"
	"griddle/app/repositories"
)

// Options carries the site identity the controllers render with.
type Options struct {
	SiteTitle string
	BaseURL   string
	StaticDir string
}

// SetupRoutes defines the application's routes and returns a router, using
// the provided Badger DB for the post index and comments.
func SetupRoutes(db *badger.DB, logger *zap.SugaredLogger, opts Options) *mux.Router {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	// The static site links with trailing slashes; redirect those onto the
	// canonical routes when serving dynamically.
	router := mux.NewRouter().StrictSlash(true)

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	postIndex := repositories.NewBadgerPostIndexRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	postController := controllers.NewPostController(postIndex, commentRepo, opts.SiteTitle, opts.BaseURL)
	commentController := controllers.NewCommentController(commentRepo, postIndex)

	// Serve static files
	if opts.StaticDir != "" {
		router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir))))
	}

	// Web routes
	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/feed.xml", postController.Feed).Methods("GET")

	// Posts web endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{slug}", postController.Show).Methods("GET")

	// Category web endpoints
	router.HandleFunc("/categories/{name}", postController.Category).Methods("GET")

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Posts API endpoints
	apiPosts := api.PathPrefix("/posts").Subrouter()
	apiPosts.HandleFunc("", postController.Index).Methods("GET")
	apiPosts.HandleFunc("/{slug}", postController.Show).Methods("GET")

	// Category API endpoints
	api.HandleFunc("/categories", postController.Categories).Methods("GET")
	api.HandleFunc("/categories/{name}", postController.Category).Methods("GET")

	// Comments API endpoints
	apiPosts.HandleFunc("/{slug}/comments", commentController.Index).Methods("GET")
	apiPosts.HandleFunc("/{slug}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}", commentController.Edit).Methods("PUT")
	api.HandleFunc("/comments/{id:[0-9]+}", commentController.Delete).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
