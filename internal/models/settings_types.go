package models

import "time"

// SiteSettings is the singleton branding/contact record. Exactly one row
// exists in the 'site_settings' table; every write targets id = 1.
type SiteSettings struct {
	SiteName    string `json:"siteName" db:"site_name"`
	SiteTagline string `json:"siteTagline" db:"site_tagline"`
	Logo        string `json:"logo" db:"logo"`
	Favicon     string `json:"favicon" db:"favicon"`
	HeroImage   string `json:"heroImage" db:"hero_image"`

	// --- Color palette ---
	PrimaryColor    string `json:"primaryColor" db:"primary_color"`
	SecondaryColor  string `json:"secondaryColor" db:"secondary_color"`
	AccentColor     string `json:"accentColor" db:"accent_color"`
	TextColor       string `json:"textColor" db:"text_color"`
	BackgroundColor string `json:"backgroundColor" db:"background_color"`
	HeaderBgColor   string `json:"headerBgColor" db:"header_bg_color"`
	FooterBgColor   string `json:"footerBgColor" db:"footer_bg_color"`

	// --- Contact ---
	ContactEmail   string `json:"contactEmail" db:"contact_email"`
	ContactPhone   string `json:"contactPhone" db:"contact_phone"`
	ContactAddress string `json:"contactAddress" db:"contact_address"`
	WorkingHours   string `json:"workingHours" db:"working_hours"`

	// --- Social links with per-platform visibility toggles ---
	FacebookURL   string `json:"facebookUrl" db:"facebook_url"`
	InstagramURL  string `json:"instagramUrl" db:"instagram_url"`
	TwitterURL    string `json:"twitterUrl" db:"twitter_url"`
	ShowFacebook  bool   `json:"showFacebook" db:"show_facebook"`
	ShowInstagram bool   `json:"showInstagram" db:"show_instagram"`
	ShowTwitter   bool   `json:"showTwitter" db:"show_twitter"`

	// --- SEO ---
	MetaTitle       string `json:"metaTitle" db:"meta_title"`
	MetaDescription string `json:"metaDescription" db:"meta_description"`
	MetaKeywords    string `json:"metaKeywords" db:"meta_keywords"`

	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// SocialLink is one rendered footer/header social icon.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// VisibleSocialLinks returns the links whose platform toggle is on and
// whose URL is set, in a fixed display order.
func (s SiteSettings) VisibleSocialLinks() []SocialLink {
	var links []SocialLink
	if s.ShowFacebook && s.FacebookURL != "" {
		links = append(links, SocialLink{Name: "facebook", URL: s.FacebookURL})
	}
	if s.ShowInstagram && s.InstagramURL != "" {
		links = append(links, SocialLink{Name: "instagram", URL: s.InstagramURL})
	}
	if s.ShowTwitter && s.TwitterURL != "" {
		links = append(links, SocialLink{Name: "twitter", URL: s.TwitterURL})
	}
	return links
}

// DefaultSiteSettings matches the palette the original site ships with.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:        "MyBiz",
		PrimaryColor:    "#3b82f6",
		SecondaryColor:  "#8b5cf6",
		AccentColor:     "#10b981",
		TextColor:       "#1f2937",
		BackgroundColor: "#f9fafb",
		HeaderBgColor:   "#ffffff",
		FooterBgColor:   "#111827",
		ShowFacebook:    true,
		ShowInstagram:   true,
		ShowTwitter:     true,
	}
}
