// Package view holds the HTML templates for the directory pages.
package view

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names.
const (
	HomePage          = "home.html"
	ListPage          = "chiropractors.html"
	ProfilePage       = "profile.html"
	SubmitPage        = "submit.html"
	SubmitSuccessPage = "submit_success.html"
	NotFoundPage      = "not_found.html"
	ErrorPage         = "error.html"
)

var funcs = template.FuncMap{
	"yesno": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
	"join": strings.Join,
}

// Templates parses every embedded page and partial into one set.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is like Templates but panics on a parse error.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
