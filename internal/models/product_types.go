package models

import "time"

// Product is the model for the 'products' table.
// Optional decimal columns use pointers so NULL survives the round trip
// and JSON stays clean.
type Product struct {
	ID         int64 `json:"id" db:"id"`
	CategoryID int64 `json:"categoryId" db:"category_id"`

	Name             string `json:"name" db:"name"`
	Slug             string `json:"slug" db:"slug"`
	Description      string `json:"description" db:"description"`
	ShortDescription string `json:"shortDescription" db:"short_description"`

	// --- Pricing ---
	Price         float64  `json:"price" db:"price"`
	OldPrice      *float64 `json:"oldPrice,omitempty" db:"old_price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty" db:"discount_price"`

	// --- Merchandising ---
	Image       string  `json:"image" db:"image"`
	SKU         string  `json:"sku" db:"sku"`
	Brand       string  `json:"brand" db:"brand"`
	Rating      float64 `json:"rating" db:"rating"`
	ReviewCount int     `json:"reviewCount" db:"review_count"`
	Stock       int     `json:"stock" db:"stock"`

	// --- Visibility flags ---
	IsActive   bool `json:"isActive" db:"is_active"`
	IsFeatured bool `json:"isFeatured" db:"is_featured"`
	IsNew      bool `json:"isNew" db:"is_new"`
	InStock    bool `json:"inStock" db:"in_stock"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Joined from categories (populated by the catalog store)
	CategoryName string `json:"categoryName,omitempty" db:"-"`
	CategorySlug string `json:"categorySlug,omitempty" db:"-"`
}

// URL is the public detail route for this product.
func (p Product) URL() string {
	return "/products/" + p.Slug + "/"
}

// DiscountPercentage derives the badge percentage from discount_price vs
// price. The write boundary rejects discount_price > price, so this stays
// in 0..100 for stored rows; it still clamps rather than trusting the data.
func (p Product) DiscountPercentage() int {
	if p.DiscountPrice == nil || p.Price <= 0 {
		return 0
	}
	pct := int(((p.Price - *p.DiscountPrice) / p.Price) * 100)
	if pct < 0 {
		return 0
	}
	return pct
}

// HasDiscount reports whether the crossed-out old price applies.
func (p Product) HasDiscount() bool {
	return p.OldPrice != nil && *p.OldPrice > p.Price
}

// DisplayPrice is the price shoppers pay: the discounted price when one is
// set, the list price otherwise.
func (p Product) DisplayPrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// OldPriceValue dereferences the crossed-out price for templates; zero
// when unset.
func (p Product) OldPriceValue() float64 {
	if p.OldPrice == nil {
		return 0
	}
	return *p.OldPrice
}
