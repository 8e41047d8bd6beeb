package main

import (
	"fmt"
	"os"
	"strings"

	"griddle/service"
)

const cliVersion = "1.0.0"

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		printHelp()
		return 1
	}

	cmd := strings.ToLower(args[1])
	switch cmd {
	case "help":
		printHelp()
		return 0
	case "version":
		fmt.Printf("griddle version %s\n", cliVersion)
		return 0
	case "build":
		return service.RunBuild(args[2:])
	case "lint":
		return service.RunLint(args[2:])
	case "preview":
		return service.RunPreview(args[2:])
	case "serve":
		return service.RunServer(args[2:])
	case "db":
		return service.HandleDBCommand(args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", args[1])
		printHelp()
		return 1
	}
}

func printHelp() {
	helpText := `Usage: griddle <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  build <content_dir> [--out <dir>] [--title <t>] [--base-url <url>]
                                 Render the content tree into a static site.
  lint <content_dir>             Run editorial checks over the content tree.
  preview <file.md>              Render a single post in the terminal.
  serve <content_dir> [--addr :8080] [--watch] [--static <dir>]
                                 Serve the blog with the comments API.
  db <clean|init|backup|restore> Maintain the post index and comment database.
`
	fmt.Println(helpText)
}
