// Package views embeds the dashboard HTML templates.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// Engine returns the template engine for fiber.Config.Views.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
