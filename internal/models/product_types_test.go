package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fl(v float64) *float64 { return &v }

func TestDiscountPercentage(t *testing.T) {
	p := Product{Price: 100, DiscountPrice: fl(75)}
	assert.Equal(t, 25, p.DiscountPercentage())

	p = Product{Price: 100}
	assert.Equal(t, 0, p.DiscountPercentage())

	// Bad stored data clamps rather than going negative.
	p = Product{Price: 100, DiscountPrice: fl(150)}
	assert.Equal(t, 0, p.DiscountPercentage())

	p = Product{Price: 0, DiscountPrice: fl(10)}
	assert.Equal(t, 0, p.DiscountPercentage())
}

func TestDisplayPrice(t *testing.T) {
	p := Product{Price: 100, DiscountPrice: fl(75)}
	assert.Equal(t, 75.0, p.DisplayPrice())

	p = Product{Price: 100}
	assert.Equal(t, 100.0, p.DisplayPrice())
}

func TestHasDiscount(t *testing.T) {
	assert.True(t, Product{Price: 80, OldPrice: fl(100)}.HasDiscount())
	assert.False(t, Product{Price: 100, OldPrice: fl(100)}.HasDiscount())
	assert.False(t, Product{Price: 100}.HasDiscount())
}

func TestPromotionRunsAt(t *testing.T) {
	day := func(s string) *time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return &d
	}
	now := *day("2026-06-15")

	assert.True(t, Promotion{}.RunsAt(now), "no bounds means always running")
	assert.True(t, Promotion{StartDate: day("2026-06-01"), EndDate: day("2026-06-30")}.RunsAt(now))
	assert.False(t, Promotion{StartDate: day("2026-07-01")}.RunsAt(now))
	assert.False(t, Promotion{EndDate: day("2026-06-01")}.RunsAt(now))
	// The end date is inclusive through the whole day and not a second more.
	assert.True(t, Promotion{EndDate: day("2026-06-15")}.RunsAt(now))
	lastSecond := day("2026-06-15").Add(24*time.Hour - time.Second)
	assert.True(t, Promotion{EndDate: day("2026-06-15")}.RunsAt(lastSecond))
	assert.False(t, Promotion{EndDate: day("2026-06-15")}.RunsAt(*day("2026-06-16")))
}

func TestVisibleSocialLinks(t *testing.T) {
	s := SiteSettings{
		FacebookURL:   "https://facebook.com/mybiz",
		InstagramURL:  "https://instagram.com/mybiz",
		TwitterURL:    "https://twitter.com/mybiz",
		ShowFacebook:  true,
		ShowInstagram: false,
		ShowTwitter:   true,
	}
	links := s.VisibleSocialLinks()
	assert.Len(t, links, 2)
	assert.Equal(t, "facebook", links[0].Name)
	assert.Equal(t, "twitter", links[1].Name)

	// A toggled-on platform with no URL renders nothing.
	s.TwitterURL = ""
	assert.Len(t, s.VisibleSocialLinks(), 1)
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "/products/wireless-earbuds/", Product{Slug: "wireless-earbuds"}.URL())
	assert.Equal(t, "/products/category/electronics/", Category{Slug: "electronics"}.URL())
	assert.Equal(t, "/pages/about-us/", Page{Slug: "about-us"}.URL())
}
