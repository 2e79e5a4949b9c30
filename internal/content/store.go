// Package content holds the non-catalog site content: static SEO pages and
// time-bounded promotional banners.
package content

import (
	"context"
	"errors"
	"time"

	"github.com/ElkinVA/MyBiz-Project/internal/models"
)

var ErrNotFound = errors.New("content: not found")

var ErrDuplicateSlug = errors.New("content: duplicate slug")

// Store is the read side consumed by the public handlers and the site-wide
// view context.
type Store interface {
	// PageBySlug returns an active page or ErrNotFound.
	PageBySlug(ctx context.Context, slug string) (*models.Page, error)
	// HeaderPages lists active pages flagged for the header nav.
	HeaderPages(ctx context.Context) ([]models.Page, error)
	// FooterPages lists up to limit active pages flagged for the footer.
	FooterPages(ctx context.Context, limit int) ([]models.Page, error)
	// ActivePromotions lists the newest active promotions whose date
	// window covers now.
	ActivePromotions(ctx context.Context, now time.Time, limit int) ([]models.Promotion, error)
}

// Admin is the write side used by the back-office API.
type Admin interface {
	AllPages(ctx context.Context) ([]models.Page, error)
	CreatePage(ctx context.Context, p *models.Page) error
	UpdatePage(ctx context.Context, id int64, patch PagePatch) error
	DeletePage(ctx context.Context, id int64) error

	AllPromotions(ctx context.Context) ([]models.Promotion, error)
	CreatePromotion(ctx context.Context, p *models.Promotion) error
	UpdatePromotion(ctx context.Context, id int64, patch PromotionPatch) error
	DeletePromotion(ctx context.Context, id int64) error

	// DeactivateExpiredPromotions flips is_active off for promotions whose
	// end date is behind now, returning how many rows changed.
	DeactivateExpiredPromotions(ctx context.Context, now time.Time) (int64, error)
}

type PagePatch struct {
	Title           *string
	Slug            *string
	Content         *string
	Excerpt         *string
	MetaTitle       *string
	MetaDescription *string
	IsActive        *bool
	ShowInHeader    *bool
	ShowInFooter    *bool
}

type PromotionPatch struct {
	Title            *string
	Slug             *string
	Image            *string
	Description      *string
	ShortDescription *string
	ButtonText       *string
	ButtonURL        *string
	IsActive         *bool
	StartDate        **time.Time
	EndDate          **time.Time
}
