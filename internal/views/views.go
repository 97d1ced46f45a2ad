package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var FS embed.FS

// NewEngine returns the fiber template engine backed by the embedded pages.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(FS), ".html")
}
