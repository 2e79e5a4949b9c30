package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ElkinVA/MyBiz-Project/internal/cache"
	"github.com/ElkinVA/MyBiz-Project/internal/catalog"
	"github.com/ElkinVA/MyBiz-Project/internal/content"
	"github.com/ElkinVA/MyBiz-Project/internal/render"
	"github.com/ElkinVA/MyBiz-Project/internal/settings"
)

// Handlers holds every dependency the route handlers need. Public reads go
// through the Store interfaces; the admin API uses the write sides.
type Handlers struct {
	DB *sql.DB

	Catalog      catalog.Store
	CatalogAdmin catalog.Admin
	Content      content.Store
	ContentAdmin content.Admin

	Settings *settings.Store
	Cache    *cache.Cache
	Render   *render.Renderer
	Log      *zap.Logger

	// JWTKey signs and verifies admin tokens; config loads it once.
	JWTKey []byte
}

// viewData builds the site-wide template context every rendered page gets:
// settings, active categories, header pages and visible social links. A
// failure here degrades to empty chrome instead of failing the page.
func (h *Handlers) viewData(c *gin.Context, data gin.H) gin.H {
	ctx := c.Request.Context()
	site := h.Settings.Get()

	out := gin.H{
		"settings":    site,
		"socialLinks": site.VisibleSocialLinks(),
		// The header search box echoes the current query on every page.
		"query": strings.TrimSpace(c.Query("q")),
	}

	categories, err := h.Catalog.ActiveCategories(ctx)
	if err != nil {
		h.Log.Warn("load categories for view context", zap.Error(err))
	}
	out["categories"] = categories

	headerPages, err := h.Content.HeaderPages(ctx)
	if err != nil {
		h.Log.Warn("load header pages for view context", zap.Error(err))
	}
	out["headerPages"] = headerPages

	footerPages, err := h.Content.FooterPages(ctx, 4)
	if err != nil {
		h.Log.Warn("load footer pages for view context", zap.Error(err))
	}
	out["footerPages"] = footerPages

	for k, v := range data {
		out[k] = v
	}
	return out
}

func (h *Handlers) serverError(c *gin.Context, msg string, err error) {
	h.Log.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func (h *Handlers) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Page not found")
}

// now is swapped in tests that pin the promotion window.
var now = time.Now
