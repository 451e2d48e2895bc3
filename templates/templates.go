// Package templates embeds and caches the admin HTML pages.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"sync"
)

//go:embed *.html partials/*.html
var files embed.FS

// Cache holds parsed templates
type Cache struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
	funcs template.FuncMap
}

func NewCache() *Cache {
	return &Cache{
		cache: make(map[string]*template.Template),
		funcs: template.FuncMap{
			"baseName": path.Base,
		},
	}
}

// Load parses every page together with the shared partials
func (tc *Cache) Load() error {
	return tc.LoadFS(files)
}

// LoadFS parses pages from fsys. Pages are the top-level *.html files; partials/*.html
// are parsed into each one.
func (tc *Cache) LoadFS(fsys fs.FS) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	pages, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return err
	}
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(tc.funcs).ParseFS(fsys, page, "partials/*.html")
		if err != nil {
			slog.Error("Failed to parse template", "file", page, "error", err)
			return err
		}
		tc.cache[page] = tmpl
		slog.Debug("Cached template", "name", page)
	}
	return nil
}

func (tc *Cache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}

// Render executes name into w. Nothing is written when execution fails.
func (tc *Cache) Render(w io.Writer, name string, data interface{}) error {
	tmpl := tc.Get(name)
	if tmpl == nil {
		return fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
