package web

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"
)

// Template helper functions
var funcMap = template.FuncMap{
	"FormatDateTime": FormatDateTime,
}

// FormatDateTime formats a time.Time for display.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 2, 2006 at 3:04 PM")
}

// templates holds all parsed page templates, keyed by file name relative to
// the templates directory, e.g. "users/index.html".
var templates map[string]*template.Template

// LoadTemplates parses every page template under dir against layout.html.
// Call once at startup.
func LoadTemplates(dir string) error {
	templates = make(map[string]*template.Template)
	layoutFile := filepath.Join(dir, "layout.html")

	pageFiles, err := filepath.Glob(filepath.Join(dir, "*", "*.html"))
	if err != nil {
		return fmt.Errorf("error globbing templates: %w", err)
	}
	if len(pageFiles) == 0 {
		return fmt.Errorf("no page templates found in %s", dir)
	}

	for _, pageFile := range pageFiles {
		rel, err := filepath.Rel(dir, pageFile)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		tmpl, err := template.New(filepath.Base(pageFile)).Funcs(funcMap).ParseFiles(pageFile, layoutFile)
		if err != nil {
			return fmt.Errorf("error parsing template %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return nil
}

// RenderTemplate executes the named page template with its layout.
func RenderTemplate(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template not found: %s", name), http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, fmt.Sprintf("Error executing template %s: %s", name, err.Error()), http.StatusInternalServerError)
	}
}
