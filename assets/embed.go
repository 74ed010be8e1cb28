// Package assets holds the embedded HTML served by the rover form.
package assets

import (
	"embed"
	"html/template"
	"sync"
)

//go:embed templates/*.html
var FS embed.FS

var (
	pageOnce sync.Once
	page     *template.Template
	pageErr  error
)

// Page returns the parsed form/result template. It is parsed once.
func Page() (*template.Template, error) {
	pageOnce.Do(func() {
		page, pageErr = template.ParseFS(FS, "templates/index.html")
	})
	return page, pageErr
}
