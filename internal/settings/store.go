// Package settings manages the site-wide SiteSettings singleton. Instead of
// the original's lazy get-or-create on every access, the record is loaded
// once at process start and handed to handlers through the Store; only
// admin writes refresh it.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/ElkinVA/MyBiz-Project/internal/models"
)

// singletonID pins the table to a single row.
const singletonID = 1

type Store struct {
	db *sql.DB

	mu      sync.RWMutex
	current models.SiteSettings
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, current: models.DefaultSiteSettings()}
}

// NewStatic returns a Store that serves a fixed value and never touches a
// database. Used in tests and local template work.
func NewStatic(s models.SiteSettings) *Store {
	return &Store{current: s}
}

const settingsColumns = `site_name, site_tagline, logo, favicon, hero_image,
	primary_color, secondary_color, accent_color, text_color, background_color,
	header_bg_color, footer_bg_color,
	contact_email, contact_phone, contact_address, working_hours,
	facebook_url, instagram_url, twitter_url,
	show_facebook, show_instagram, show_twitter,
	meta_title, meta_description, meta_keywords, updated_at`

// Load reads the singleton row, creating it with defaults when the table
// is empty (first boot after migrate).
func (s *Store) Load(ctx context.Context) error {
	got, err := s.fetch(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO site_settings (id) VALUES (?)", singletonID); err != nil {
			return fmt.Errorf("create default settings: %w", err)
		}
		got, err = s.fetch(ctx)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	s.mu.Lock()
	s.current = *got
	s.mu.Unlock()
	return nil
}

func (s *Store) fetch(ctx context.Context) (*models.SiteSettings, error) {
	var out models.SiteSettings
	err := s.db.QueryRowContext(ctx,
		"SELECT "+settingsColumns+" FROM site_settings WHERE id = ?", singletonID).Scan(
		&out.SiteName, &out.SiteTagline, &out.Logo, &out.Favicon, &out.HeroImage,
		&out.PrimaryColor, &out.SecondaryColor, &out.AccentColor, &out.TextColor, &out.BackgroundColor,
		&out.HeaderBgColor, &out.FooterBgColor,
		&out.ContactEmail, &out.ContactPhone, &out.ContactAddress, &out.WorkingHours,
		&out.FacebookURL, &out.InstagramURL, &out.TwitterURL,
		&out.ShowFacebook, &out.ShowInstagram, &out.ShowTwitter,
		&out.MetaTitle, &out.MetaDescription, &out.MetaKeywords, &out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns a copy of the current settings; safe for concurrent use.
func (s *Store) Get() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update writes the full record to the singleton row and refreshes the
// in-memory copy.
func (s *Store) Update(ctx context.Context, in models.SiteSettings) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE site_settings SET
			site_name = ?, site_tagline = ?, logo = ?, favicon = ?, hero_image = ?,
			primary_color = ?, secondary_color = ?, accent_color = ?, text_color = ?,
			background_color = ?, header_bg_color = ?, footer_bg_color = ?,
			contact_email = ?, contact_phone = ?, contact_address = ?, working_hours = ?,
			facebook_url = ?, instagram_url = ?, twitter_url = ?,
			show_facebook = ?, show_instagram = ?, show_twitter = ?,
			meta_title = ?, meta_description = ?, meta_keywords = ?
		 WHERE id = ?`,
		in.SiteName, in.SiteTagline, in.Logo, in.Favicon, in.HeroImage,
		in.PrimaryColor, in.SecondaryColor, in.AccentColor, in.TextColor,
		in.BackgroundColor, in.HeaderBgColor, in.FooterBgColor,
		in.ContactEmail, in.ContactPhone, in.ContactAddress, in.WorkingHours,
		in.FacebookURL, in.InstagramURL, in.TwitterURL,
		in.ShowFacebook, in.ShowInstagram, in.ShowTwitter,
		in.MetaTitle, in.MetaDescription, in.MetaKeywords,
		singletonID)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	return s.Load(ctx)
}
