package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ElkinVA/MyBiz-Project/internal/catalog"
	"github.com/ElkinVA/MyBiz-Project/internal/models"
	"github.com/ElkinVA/MyBiz-Project/internal/render"
)

const (
	homeFeaturedCount  = 8
	homePromotionCount = 3
	relatedCount       = 4

	homeCacheKey       = "page:home"
	productCachePrefix = "page:product:"
)

// Home renders the landing page: the newest featured products plus the
// active promotion banners. The rendered page is cached for a few minutes;
// a stale page after an admin edit is acceptable.
func (h *Handlers) Home(c *gin.Context) {
	ctx := c.Request.Context()

	if html, ok := h.Cache.Get(ctx, homeCacheKey); ok {
		render.WriteHTML(c, http.StatusOK, html)
		return
	}

	featured, err := h.Catalog.FeaturedProducts(ctx, homeFeaturedCount)
	if err != nil {
		h.serverError(c, "load featured products", err)
		return
	}

	promotions, err := h.Content.ActivePromotions(ctx, now(), homePromotionCount)
	if err != nil {
		h.serverError(c, "load promotions", err)
		return
	}

	html, err := h.Render.String("home", h.viewData(c, gin.H{
		"title":            "Home",
		"featuredProducts": featured,
		"promotions":       promotions,
	}))
	if err != nil {
		h.serverError(c, "render home", err)
		return
	}

	h.Cache.Set(homeCacheKey, html)
	render.WriteHTML(c, http.StatusOK, html)
}

// ProductList renders the full listing, optionally scoped to a category.
// Unknown or inactive category slugs are a 404, never a silent empty list.
func (h *Handlers) ProductList(c *gin.Context) {
	ctx := c.Request.Context()

	f := catalog.Filter{
		Search:             strings.TrimSpace(c.Query("q")),
		SearchCategoryName: true,
		Sort:               catalog.ParseSortKey(c.Query("sort")),
	}

	var category *models.Category
	if slug := c.Param("slug"); slug != "" {
		cat, err := h.Catalog.CategoryBySlug(ctx, slug)
		if errors.Is(err, catalog.ErrNotFound) {
			h.notFound(c)
			return
		}
		if err != nil {
			h.serverError(c, "resolve category", err)
			return
		}
		category = cat
		f.CategoryID = cat.ID
	}

	total, err := h.Catalog.CountProducts(ctx, f)
	if err != nil {
		h.serverError(c, "count products", err)
		return
	}

	page := catalog.Paginate(total, catalog.PageSize, c.DefaultQuery("page", "1"))

	products, err := h.Catalog.ListProducts(ctx, f, page.PageSize, page.Offset)
	if err != nil {
		h.serverError(c, "list products", err)
		return
	}

	title := "All products"
	if category != nil {
		title = category.Name
	}

	if err := h.Render.HTML(c, http.StatusOK, "product_list", h.viewData(c, gin.H{
		"title":    title,
		"category": category,
		"products": products,
		"page":     page,
		"query":    f.Search,
		"sort":     string(f.Sort),
	})); err != nil {
		h.serverError(c, "render product list", err)
	}
}

// ProductDetail renders a single active product with up to four related
// products from the same category. Cached like the home page.
func (h *Handlers) ProductDetail(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")
	cacheKey := productCachePrefix + slug

	if html, ok := h.Cache.Get(ctx, cacheKey); ok {
		render.WriteHTML(c, http.StatusOK, html)
		return
	}

	product, err := h.Catalog.ProductBySlug(ctx, slug)
	if errors.Is(err, catalog.ErrNotFound) {
		h.notFound(c)
		return
	}
	if err != nil {
		h.serverError(c, "load product", err)
		return
	}

	related, err := h.Catalog.RelatedProducts(ctx, product.CategoryID, product.ID, relatedCount)
	if err != nil {
		h.serverError(c, "load related products", err)
		return
	}

	html, err := h.Render.String("product_detail", h.viewData(c, gin.H{
		"title":           product.Name,
		"product":         product,
		"relatedProducts": related,
	}))
	if err != nil {
		h.serverError(c, "render product detail", err)
		return
	}

	h.Cache.Set(cacheKey, html)
	render.WriteHTML(c, http.StatusOK, html)
}

// LoadMoreProducts serves the incremental "show more" fetch. The request
// must identify itself as a background fetch (the XMLHttpRequest marker
// header, or ?debug=ajax for manual testing) before any query runs.
// Unlike the listing, a page beyond the end answers with an empty fragment
// instead of clamping, so clients stop asking. The category parameter is
// advisory here: "all" or an unknown slug just means unscoped.
func (h *Handlers) LoadMoreProducts(c *gin.Context) {
	isAsync := c.GetHeader("X-Requested-With") == "XMLHttpRequest" || c.Query("debug") == "ajax"
	if !isAsync {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "This endpoint requires an AJAX request",
			"detail": "Set X-Requested-With header to XMLHttpRequest",
		})
		return
	}

	ctx := c.Request.Context()

	f := catalog.Filter{
		Search: strings.TrimSpace(c.Query("q")),
		Sort:   catalog.ParseSortKey(c.Query("sort")),
	}

	if slug := c.Query("category"); slug != "" && slug != "all" {
		cat, err := h.Catalog.CategoryBySlug(ctx, slug)
		if err == nil {
			f.CategoryID = cat.ID
		} else if !errors.Is(err, catalog.ErrNotFound) {
			h.serverError(c, "resolve category", err)
			return
		}
	}

	total, err := h.Catalog.CountProducts(ctx, f)
	if err != nil {
		h.serverError(c, "count products", err)
		return
	}

	// Page 1 is assumed already rendered by the initial listing.
	page, ok := catalog.PaginateStrict(total, catalog.PageSize, c.DefaultQuery("page", "2"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"html": "", "has_next": false, "next_page": nil})
		return
	}

	products, err := h.Catalog.ListProducts(ctx, f, page.PageSize, page.Offset)
	if err != nil {
		h.serverError(c, "list products", err)
		return
	}

	html, err := h.Render.String("product_items", gin.H{"products": products})
	if err != nil {
		h.serverError(c, "render product fragment", err)
		return
	}

	var nextPage interface{}
	if page.HasNext {
		nextPage = page.NextPage
	}
	c.JSON(http.StatusOK, gin.H{
		"html":      html,
		"has_next":  page.HasNext,
		"next_page": nextPage,
	})
}
