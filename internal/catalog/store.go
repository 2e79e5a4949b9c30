package catalog

import (
	"context"
	"errors"

	"github.com/ElkinVA/MyBiz-Project/internal/models"
)

// ErrNotFound is returned when a slug resolves to nothing visible, either
// because the row does not exist or because it is inactive.
var ErrNotFound = errors.New("catalog: not found")

// ErrDuplicateSlug is returned by write operations when the slug is taken.
var ErrDuplicateSlug = errors.New("catalog: duplicate slug")

// Filter is the full parameter set of the catalog query layer. The zero
// value lists every active product newest-first.
type Filter struct {
	// CategoryID scopes the listing; 0 means unscoped. Handlers resolve
	// the category slug (and its active flag) before building the filter.
	CategoryID int64

	// Search matches case-insensitively as a substring against name,
	// description and short description. When SearchCategoryName is set
	// (the full listing path) the owning category's name is matched too.
	Search             string
	SearchCategoryName bool

	Sort SortKey

	// FeaturedOnly restricts to home-page featured products.
	FeaturedOnly bool
}

// Store is the read side of the catalog: everything the public browsing
// handlers need. Implementations must apply the is_active = true base
// predicate to every product and category query.
type Store interface {
	FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	RelatedProducts(ctx context.Context, categoryID, excludeID int64, limit int) ([]models.Product, error)
	CountProducts(ctx context.Context, f Filter) (int, error)
	ListProducts(ctx context.Context, f Filter, limit, offset int) ([]models.Product, error)

	CategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	ActiveCategories(ctx context.Context) ([]models.Category, error)
}

// Admin is the write side used by the back-office API. It sees inactive
// rows too.
type Admin interface {
	AllCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, id int64, patch CategoryPatch) error
	DeleteCategory(ctx context.Context, id int64) error

	AllProducts(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) error
	DeleteProduct(ctx context.Context, id int64) error
}

// CategoryPatch carries partial category updates; nil fields are left
// untouched.
type CategoryPatch struct {
	Name         *string
	Slug         *string
	Description  *string
	Image        *string
	IsActive     *bool
	DisplayOrder *int
}

// ProductPatch carries partial product updates; nil fields are left
// untouched. OldPrice/DiscountPrice distinguish "not sent" (outer nil)
// from "clear the column" (inner nil).
type ProductPatch struct {
	CategoryID       *int64
	Name             *string
	Slug             *string
	Description      *string
	ShortDescription *string
	Price            *float64
	OldPrice         **float64
	DiscountPrice    **float64
	Image            *string
	SKU              *string
	Brand            *string
	Rating           *float64
	ReviewCount      *int
	Stock            *int
	IsActive         *bool
	IsFeatured       *bool
	IsNew            *bool
	InStock          *bool
}
