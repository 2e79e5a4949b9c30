// Package render executes the site templates. Rendering always goes
// through a buffer first: full pages so a template error can still become
// a clean 500, and fragments because the load-more endpoint ships them
// inside a JSON payload.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
)

const contentTypeHTML = "text/html; charset=utf-8"

type Renderer struct {
	templates *template.Template
}

// New parses every *.tmpl under dir into one template set.
func New(dir string) (*Renderer, error) {
	t, err := template.ParseGlob(dir + "/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// String renders the named template to a string.
func (r *Renderer) String(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// HTML renders the named template straight into the response.
func (r *Renderer) HTML(c *gin.Context, status int, name string, data interface{}) error {
	html, err := r.String(name, data)
	if err != nil {
		return err
	}
	c.Data(status, contentTypeHTML, []byte(html))
	return nil
}

// WriteHTML writes an already rendered page, e.g. one served from cache.
func WriteHTML(c *gin.Context, status int, html string) {
	c.Data(status, contentTypeHTML, []byte(html))
}
