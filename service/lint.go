package service

import (
	"fmt"

	"griddle/app/content"
	"griddle/app/lint"
)

// RunLint loads the content tree and applies the editorial checks. Exit code
// is nonzero when any error-severity finding exists.
func RunLint(args []string) int {
	if len(args) < 1 {
		fmt.Println("Error: content directory is required for lint command")
		return 1
	}
	contentDir := args[0]

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
		return 1
	}

	fmt.Printf("%d posts checked, %d findings\n", len(posts), len(report.Findings))
	return 0
}
