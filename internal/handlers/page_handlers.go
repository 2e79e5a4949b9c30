package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ElkinVA/MyBiz-Project/internal/content"
)

// PageDetail renders a static SEO page by slug.
func (h *Handlers) PageDetail(c *gin.Context) {
	page, err := h.Content.PageBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.serverError(c, "load page", err)
		return
	}

	title := page.Title
	if page.MetaTitle != "" {
		title = page.MetaTitle
	}

	if err := h.Render.HTML(c, http.StatusOK, "page_detail", h.viewData(c, gin.H{
		"title": title,
		"page":  page,
		// Page content is admin-authored rich text; render it as-is.
		"content": template.HTML(page.Content),
	})); err != nil {
		h.serverError(c, "render page", err)
	}
}
