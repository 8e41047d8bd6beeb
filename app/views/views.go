// Package views holds the HTML templates shared by the static builder and
// the web controllers.
package views

import "embed"

//go:embed *.html
var FS embed.FS
