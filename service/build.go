package service

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"griddle/app/build"
	"griddle/app/content"
	"griddle/app/lint"
	"griddle/app/repositories"
)

// RunBuild loads the content tree, lints it, and writes the static site.
// Lint errors fail the build; warnings are printed and tolerated.
func RunBuild(args []string) int {
	if len(args) < 1 {
		fmt.Println("Error: content directory is required for build command")
		return 1
	}
	contentDir := args[0]

	outDir, args := stringFlag(args[1:], "--out", "site")
	siteTitle, args := stringFlag(args, "--title", defaultSiteTitle)
	baseURL, args := stringFlag(args, "--base-url", defaultBaseURL)
	staticDir, args := stringFlag(args, "--static", "static")
	verbose, _ := boolFlag(args, "--verbose")

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	posts, err := content.LoadDir(contentDir)
	if err != nil {
		fmt.Printf("Failed to load content: %v\n", err)
		return 1
	}

	report := lint.Run(posts)
	for _, f := range report.Findings {
		fmt.Println(f)
	}
	if report.HasErrors() {
		fmt.Println("Build aborted: lint errors")
		return 1
	}

	db, err := repositories.OpenDB(dbPath)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer db.Close()

	builder := build.NewBuilder(
		siteTitle,
		baseURL,
		outDir,
		repositories.NewBadgerPostIndexRepository(db),
		repositories.NewBadgerBuildCacheRepository(db),
		logger,
	)

	result, err := builder.Build(posts)
	if err != nil {
		fmt.Printf("Build failed: %v\n", err)
		return 1
	}

	if err := copyStatic(staticDir, filepath.Join(outDir, "static")); err != nil {
		fmt.Printf("Failed to copy static files: %v\n", err)
		return 1
	}

	fmt.Printf("Built %d pages (%d posts rendered, %d unchanged) into %s\n",
		result.Pages, result.Rendered, result.Skipped, outDir)
	return 0
}

// copyStatic mirrors the static asset directory into the built site. A
// missing source directory is not an error; not every site has assets.
func copyStatic(src, dst string) error {
	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
}
