package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ElkinVA/MyBiz-Project/internal/auth"
	"github.com/ElkinVA/MyBiz-Project/internal/catalog"
	"github.com/ElkinVA/MyBiz-Project/internal/content"
	"github.com/ElkinVA/MyBiz-Project/internal/models"
)

// --- Auth ---

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin checks credentials against the admins table and issues a JWT.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	err := h.DB.QueryRowContext(c.Request.Context(),
		"SELECT id, email, password_hash, name FROM admins WHERE email = ?", input.Email).
		Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Name)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(h.JWTKey, admin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "name": admin.Name})
}

// --- Shared helpers ---

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// slugFor falls back to a slug derived from the display name, matching the
// original's slugify-on-save behavior.
func slugFor(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	return slug.Make(name)
}

// writeErr maps store write errors onto API responses.
func (h *Handlers) writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, catalog.ErrDuplicateSlug), errors.Is(err, content.ErrDuplicateSlug):
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
	default:
		h.Log.Error("admin write failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

// --- Categories ---

type CategoryInput struct {
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	IsActive     *bool  `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}

func (h *Handlers) AdminListCategories(c *gin.Context) {
	categories, err := h.CatalogAdmin.AllCategories(c.Request.Context())
	if err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handlers) AdminCreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		Name:         input.Name,
		Slug:         slugFor(input.Slug, input.Name),
		Description:  input.Description,
		Image:        input.Image,
		IsActive:     true,
		DisplayOrder: input.DisplayOrder,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := h.CatalogAdmin.CreateCategory(c.Request.Context(), &category); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

type CategoryUpdateInput struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (h *Handlers) AdminUpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input CategoryUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := catalog.CategoryPatch{
		Name:         input.Name,
		Slug:         input.Slug,
		Description:  input.Description,
		Image:        input.Image,
		IsActive:     input.IsActive,
		DisplayOrder: input.DisplayOrder,
	}
	if err := h.CatalogAdmin.UpdateCategory(c.Request.Context(), id, patch); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
}

func (h *Handlers) AdminDeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.CatalogAdmin.DeleteCategory(c.Request.Context(), id); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// --- Products ---

type ProductInput struct {
	CategoryID       int64    `json:"categoryId" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription" binding:"max=300"`
	Price            float64  `json:"price" binding:"required,gt=0"`
	OldPrice         *float64 `json:"oldPrice" binding:"omitempty,gt=0"`
	DiscountPrice    *float64 `json:"discountPrice" binding:"omitempty,gt=0"`
	Image            string   `json:"image"`
	SKU              string   `json:"sku"`
	Brand            string   `json:"brand"`
	Stock            int      `json:"stock" binding:"gte=0"`
	IsActive         *bool    `json:"isActive"`
	IsFeatured       bool     `json:"isFeatured"`
	IsNew            bool     `json:"isNew"`
	InStock          *bool    `json:"inStock"`
}

func (h *Handlers) AdminListProducts(c *gin.Context) {
	products, err := h.CatalogAdmin.AllProducts(c.Request.Context())
	if err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handlers) AdminCreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.DiscountPrice != nil && *input.DiscountPrice > input.Price {
		c.JSON(http.StatusBadRequest, gin.H{"error": "discountPrice must not exceed price"})
		return
	}

	product := models.Product{
		CategoryID:       input.CategoryID,
		Name:             input.Name,
		Slug:             slugFor(input.Slug, input.Name),
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Price:            input.Price,
		OldPrice:         input.OldPrice,
		DiscountPrice:    input.DiscountPrice,
		Image:            input.Image,
		SKU:              input.SKU,
		Brand:            input.Brand,
		Stock:            input.Stock,
		IsActive:         true,
		IsFeatured:       input.IsFeatured,
		IsNew:            input.IsNew,
		InStock:          true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}

	if err := h.CatalogAdmin.CreateProduct(c.Request.Context(), &product); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

type ProductUpdateInput struct {
	CategoryID       *int64   `json:"categoryId"`
	Name             *string  `json:"name"`
	Slug             *string  `json:"slug"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"shortDescription" binding:"omitempty,max=300"`
	Price            *float64 `json:"price" binding:"omitempty,gt=0"`
	// A value of 0 clears the column; absent leaves it untouched.
	OldPrice      *float64 `json:"oldPrice" binding:"omitempty,gte=0"`
	DiscountPrice *float64 `json:"discountPrice" binding:"omitempty,gte=0"`
	Image         *string  `json:"image"`
	SKU           *string  `json:"sku"`
	Brand         *string  `json:"brand"`
	Rating        *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	ReviewCount   *int     `json:"reviewCount" binding:"omitempty,gte=0"`
	Stock         *int     `json:"stock" binding:"omitempty,gte=0"`
	IsActive      *bool    `json:"isActive"`
	IsFeatured    *bool    `json:"isFeatured"`
	IsNew         *bool    `json:"isNew"`
	InStock       *bool    `json:"inStock"`
}

func (h *Handlers) AdminUpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input ProductUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Either side of the discount invariant can change alone, so the
	// missing side comes from the stored row before the check runs.
	if input.Price != nil || input.DiscountPrice != nil {
		var price float64
		var discount *float64
		if input.Price != nil {
			price = *input.Price
		}
		if input.DiscountPrice != nil && *input.DiscountPrice > 0 {
			discount = input.DiscountPrice
		}
		if input.Price == nil || input.DiscountPrice == nil {
			current, err := h.CatalogAdmin.ProductByID(c.Request.Context(), id)
			if err != nil {
				h.writeErr(c, err)
				return
			}
			if input.Price == nil {
				price = current.Price
			}
			if input.DiscountPrice == nil {
				discount = current.DiscountPrice
			}
		}
		if discount != nil && *discount > price {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discountPrice must not exceed price"})
			return
		}
	}

	patch := catalog.ProductPatch{
		CategoryID:       input.CategoryID,
		Name:             input.Name,
		Slug:             input.Slug,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Price:            input.Price,
		Image:            input.Image,
		SKU:              input.SKU,
		Brand:            input.Brand,
		Rating:           input.Rating,
		ReviewCount:      input.ReviewCount,
		Stock:            input.Stock,
		IsActive:         input.IsActive,
		IsFeatured:       input.IsFeatured,
		IsNew:            input.IsNew,
		InStock:          input.InStock,
	}
	if input.OldPrice != nil {
		patch.OldPrice = optionalPrice(*input.OldPrice)
	}
	if input.DiscountPrice != nil {
		patch.DiscountPrice = optionalPrice(*input.DiscountPrice)
	}

	if err := h.CatalogAdmin.UpdateProduct(c.Request.Context(), id, patch); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// optionalPrice maps 0 to NULL and anything else to the value.
func optionalPrice(v float64) **float64 {
	var inner *float64
	if v > 0 {
		inner = &v
	}
	return &inner
}

func (h *Handlers) AdminDeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.CatalogAdmin.DeleteProduct(c.Request.Context(), id); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// --- Pages ---

type PageInput struct {
	Title           string `json:"title" binding:"required"`
	Slug            string `json:"slug"`
	Content         string `json:"content"`
	Excerpt         string `json:"excerpt"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	IsActive        *bool  `json:"isActive"`
	ShowInHeader    bool   `json:"showInHeader"`
	ShowInFooter    *bool  `json:"showInFooter"`
}

func (h *Handlers) AdminListPages(c *gin.Context) {
	pages, err := h.ContentAdmin.AllPages(c.Request.Context())
	if err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *Handlers) AdminCreatePage(c *gin.Context) {
	var input PageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page := models.Page{
		Title:           input.Title,
		Slug:            slugFor(input.Slug, input.Title),
		Content:         input.Content,
		Excerpt:         input.Excerpt,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		IsActive:        true,
		ShowInHeader:    input.ShowInHeader,
		ShowInFooter:    true,
	}
	if input.IsActive != nil {
		page.IsActive = *input.IsActive
	}
	if input.ShowInFooter != nil {
		page.ShowInFooter = *input.ShowInFooter
	}

	if err := h.ContentAdmin.CreatePage(c.Request.Context(), &page); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"page": page})
}

type PageUpdateInput struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	Excerpt         *string `json:"excerpt"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	IsActive        *bool   `json:"isActive"`
	ShowInHeader    *bool   `json:"showInHeader"`
	ShowInFooter    *bool   `json:"showInFooter"`
}

func (h *Handlers) AdminUpdatePage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input PageUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := content.PagePatch{
		Title:           input.Title,
		Slug:            input.Slug,
		Content:         input.Content,
		Excerpt:         input.Excerpt,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		IsActive:        input.IsActive,
		ShowInHeader:    input.ShowInHeader,
		ShowInFooter:    input.ShowInFooter,
	}
	if err := h.ContentAdmin.UpdatePage(c.Request.Context(), id, patch); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page updated"})
}

func (h *Handlers) AdminDeletePage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.ContentAdmin.DeletePage(c.Request.Context(), id); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page deleted"})
}

// --- Promotions ---

const dateLayout = "2006-01-02"

type PromotionInput struct {
	Title            string `json:"title" binding:"required"`
	Slug             string `json:"slug"`
	Image            string `json:"image"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription" binding:"max=300"`
	ButtonText       string `json:"buttonText" binding:"max=50"`
	ButtonURL        string `json:"buttonUrl"`
	IsActive         *bool  `json:"isActive"`
	StartDate        string `json:"startDate"` // YYYY-MM-DD, optional
	EndDate          string `json:"endDate"`   // YYYY-MM-DD, optional
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *Handlers) AdminListPromotions(c *gin.Context) {
	promotions, err := h.ContentAdmin.AllPromotions(c.Request.Context())
	if err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promotions": promotions})
}

func (h *Handlers) AdminCreatePromotion(c *gin.Context) {
	var input PromotionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
		return
	}
	end, err := parseDate(input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be YYYY-MM-DD"})
		return
	}
	if start != nil && end != nil && end.Before(*start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not be before startDate"})
		return
	}

	promotion := models.Promotion{
		Title:            input.Title,
		Slug:             slugFor(input.Slug, input.Title),
		Image:            input.Image,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		ButtonText:       input.ButtonText,
		ButtonURL:        input.ButtonURL,
		IsActive:         true,
		StartDate:        start,
		EndDate:          end,
	}
	if input.IsActive != nil {
		promotion.IsActive = *input.IsActive
	}

	if err := h.ContentAdmin.CreatePromotion(c.Request.Context(), &promotion); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"promotion": promotion})
}

type PromotionUpdateInput struct {
	Title            *string `json:"title"`
	Slug             *string `json:"slug"`
	Image            *string `json:"image"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"shortDescription" binding:"omitempty,max=300"`
	ButtonText       *string `json:"buttonText" binding:"omitempty,max=50"`
	ButtonURL        *string `json:"buttonUrl"`
	IsActive         *bool   `json:"isActive"`
	// An empty string clears the bound; absent leaves it untouched.
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

func (h *Handlers) AdminUpdatePromotion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input PromotionUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := content.PromotionPatch{
		Title:            input.Title,
		Slug:             input.Slug,
		Image:            input.Image,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		ButtonText:       input.ButtonText,
		ButtonURL:        input.ButtonURL,
		IsActive:         input.IsActive,
	}
	if input.StartDate != nil {
		start, err := parseDate(*input.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
			return
		}
		patch.StartDate = &start
	}
	if input.EndDate != nil {
		end, err := parseDate(*input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be YYYY-MM-DD"})
			return
		}
		patch.EndDate = &end
	}

	if err := h.ContentAdmin.UpdatePromotion(c.Request.Context(), id, patch); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion updated"})
}

func (h *Handlers) AdminDeletePromotion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.ContentAdmin.DeletePromotion(c.Request.Context(), id); err != nil {
		h.writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
}

// --- Site settings ---

func (h *Handlers) AdminGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settings": h.Settings.Get()})
}

func (h *Handlers) AdminUpdateSettings(c *gin.Context) {
	var input models.SiteSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Settings.Update(c.Request.Context(), input); err != nil {
		h.Log.Error("update settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": h.Settings.Get()})
}
