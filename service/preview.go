package service

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"griddle/app/content"
)

// RunPreview renders a single post file to the terminal.
func RunPreview(args []string) int {
	if len(args) < 1 {
		fmt.Println("Error: post file path is required for preview command")
		return 1
	}

	post, err := content.ParseFile(args[0])
	if err != nil {
		fmt.Printf("Failed to parse post: %v\n", err)
		return 1
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Printf("Failed to create renderer: %v\n", err)
		return 1
	}

	out, err := renderer.Render(post.Body)
	if err != nil {
		fmt.Printf("Failed to render post: %v\n", err)
		return 1
	}

	fmt.Printf("%s (%s)\n", post.Title, post.Date.Format("2006-01-02"))
	if len(post.Categories) > 0 {
		fmt.Printf("categories: %v\n", post.Categories)
	}
	fmt.Print(out)
	return 0
}
