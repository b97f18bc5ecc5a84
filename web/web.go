// Package web bundles the page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page. Assets are linked to the bucket when one
// is configured, to the local /static route otherwise.
func Templates(bucket string) (*template.Template, error) {
	funcs := template.FuncMap{
		"static": StaticURL(bucket),
		"safe": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
	return template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

func StaticURL(bucket string) func(string) string {
	return func(path string) string {
		path = strings.TrimPrefix(path, "/")
		if bucket == "" {
			return "/static/" + path
		}
		return "https://" + bucket + ".s3.amazonaws.com/static/" + path
	}
}

func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
