package service

import (
	"fmt"
	"net/http"

	"griddle/app/build"
	"griddle/app/content"
	"griddle/app/repositories"
	"griddle/app/routes"
)

// RunServer loads and renders the content tree into the post index, then
// serves the blog with the dynamic comments API. With --watch the content
// directory is watched and re-rendered on change.
func RunServer(args []string) int {
	if len(args) < 1 {
		fmt.Println("Error: content directory is required for serve command")
		return 1
	}
	contentDir := args[0]

	addr, args := stringFlag(args[1:], "--addr", ":8080")
	siteTitle, args := stringFlag(args, "--title", defaultSiteTitle)
	baseURL, args := stringFlag(args, "--base-url", defaultBaseURL)
	staticDir, args := stringFlag(args, "--static", "static")
	watch, args := boolFlag(args, "--watch")
	verbose, _ := boolFlag(args, "--verbose")

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	db, err := repositories.OpenDB(dbPath)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer db.Close()

	postIndex := repositories.NewBadgerPostIndexRepository(db)
	cache := repositories.NewBadgerBuildCacheRepository(db)

	reload := func() error {
		posts, err := content.LoadDir(contentDir)
		if err != nil {
			return err
		}
		md := build.NewMarkdown()
		for _, post := range posts {
			html, err := build.RenderHTML(md, post.Body)
			if err != nil {
				return fmt.Errorf("%s: %v", post.Path, err)
			}
			post.HTML = html
			if err := postIndex.Put(post); err != nil {
				return err
			}
			if err := cache.SetDigest(post.Slug, build.PostDigest(post)); err != nil {
				return err
			}
		}
		// Drop indexed posts whose source file is gone.
		current := make(map[string]bool, len(posts))
		for _, post := range posts {
			current[post.Slug] = true
		}
		slugs, err := postIndex.Slugs()
		if err != nil {
			return err
		}
		for _, slug := range slugs {
			if !current[slug] {
				if err := postIndex.DeleteBySlug(slug); err != nil {
					return err
				}
			}
		}
		logger.Infow("content loaded", "dir", contentDir, "posts", len(posts))
		return nil
	}

	if err := reload(); err != nil {
		fmt.Printf("Failed to load content: %v\n", err)
		return 1
	}

	if watch {
		watcher, err := watchContent(contentDir, logger, reload)
		if err != nil {
			fmt.Printf("Failed to watch content directory: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	router := routes.SetupRoutes(db, logger, routes.Options{
		SiteTitle: siteTitle,
		BaseURL:   baseURL,
		StaticDir: staticDir,
	})

	logger.Infow("starting blog service", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Errorw("server error", "error", err)
		return 1
	}
	return 0
}
