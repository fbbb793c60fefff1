// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

var ErrUnknownView = errors.New("unknown view")

// Renderer executes the embedded HTML templates by view name
type Renderer struct {
	views map[string]*template.Template
}

var funcs = template.FuncMap{
	// ago renders t relative to the request time, e.g. "3 minutes ago"
	"ago": func(t, now time.Time) string {
		if t.IsZero() {
			return ""
		}
		return humanize.RelTime(t, now, "ago", "from now")
	},
	"count": func(n int, singular, plural string) string {
		if n == 1 {
			return "1 " + singular
		}
		return humanize.Comma(int64(n)) + " " + plural
	},
}

// New parses every view under templates/. Each file becomes a view named
// after the file without its extension.
func New() (*Renderer, error) {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	r := &Renderer{views: make(map[string]*template.Template, len(entries))}
	for _, entry := range entries {
		file := entry.Name()
		name := file[:len(file)-len(".html")]

		tmpl, err := template.New(file).Funcs(funcs).ParseFS(templateFS, "templates/"+file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse view %s: %w", name, err)
		}
		r.views[name] = tmpl
	}

	return r, nil
}

// MustNew is New for package-level setup and tests
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render writes the named view with data to w
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.views[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
