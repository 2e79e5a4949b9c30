package models

import "time"

// Page is a static SEO/content block served at /pages/<slug>/.
// The header/footer flags control where the site chrome links to it.
type Page struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Slug            string    `json:"slug" db:"slug"`
	Content         string    `json:"content" db:"content"`
	Excerpt         string    `json:"excerpt" db:"excerpt"`
	MetaTitle       string    `json:"metaTitle" db:"meta_title"`
	MetaDescription string    `json:"metaDescription" db:"meta_description"`
	IsActive        bool      `json:"isActive" db:"is_active"`
	ShowInHeader    bool      `json:"showInHeader" db:"show_in_header"`
	ShowInFooter    bool      `json:"showInFooter" db:"show_in_footer"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

func (p Page) URL() string {
	return "/pages/" + p.Slug + "/"
}
