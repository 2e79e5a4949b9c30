package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/ElkinVA/MyBiz-Project/internal/models"
)

// SQLStore implements Store and Admin over MySQL.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func mapWriteErr(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrDuplicateSlug
	}
	return err
}

const pageColumns = `id, title, slug, content, excerpt, meta_title, meta_description,
	is_active, show_in_header, show_in_footer, created_at, updated_at`

func scanPage(row interface{ Scan(...any) error }) (*models.Page, error) {
	var p models.Page
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
		&p.MetaTitle, &p.MetaDescription,
		&p.IsActive, &p.ShowInHeader, &p.ShowInFooter, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLStore) PageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	query := "SELECT " + pageColumns + " FROM pages WHERE slug = ? AND is_active = 1"
	p, err := scanPage(s.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("page by slug: %w", err)
	}
	return p, nil
}

func (s *SQLStore) HeaderPages(ctx context.Context) ([]models.Page, error) {
	query := "SELECT " + pageColumns + " FROM pages WHERE is_active = 1 AND show_in_header = 1 ORDER BY title"
	return s.queryPages(ctx, query)
}

func (s *SQLStore) FooterPages(ctx context.Context, limit int) ([]models.Page, error) {
	query := "SELECT " + pageColumns + " FROM pages WHERE is_active = 1 AND show_in_footer = 1 ORDER BY title LIMIT ?"
	return s.queryPages(ctx, query, limit)
}

func (s *SQLStore) AllPages(ctx context.Context) ([]models.Page, error) {
	return s.queryPages(ctx, "SELECT "+pageColumns+" FROM pages ORDER BY title")
}

func (s *SQLStore) queryPages(ctx context.Context, query string, args ...interface{}) ([]models.Page, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

func (s *SQLStore) CreatePage(ctx context.Context, p *models.Page) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO pages (title, slug, content, excerpt, meta_title, meta_description,
		 is_active, show_in_header, show_in_footer)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Slug, p.Content, p.Excerpt, p.MetaTitle, p.MetaDescription,
		p.IsActive, p.ShowInHeader, p.ShowInFooter)
	if err != nil {
		return mapWriteErr(err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (s *SQLStore) UpdatePage(ctx context.Context, id int64, patch PagePatch) error {
	set := "updated_at = CURRENT_TIMESTAMP"
	var args []interface{}

	if patch.Title != nil {
		set += ", title = ?"
		args = append(args, *patch.Title)
	}
	if patch.Slug != nil {
		set += ", slug = ?"
		args = append(args, *patch.Slug)
	}
	if patch.Content != nil {
		set += ", content = ?"
		args = append(args, *patch.Content)
	}
	if patch.Excerpt != nil {
		set += ", excerpt = ?"
		args = append(args, *patch.Excerpt)
	}
	if patch.MetaTitle != nil {
		set += ", meta_title = ?"
		args = append(args, *patch.MetaTitle)
	}
	if patch.MetaDescription != nil {
		set += ", meta_description = ?"
		args = append(args, *patch.MetaDescription)
	}
	if patch.IsActive != nil {
		set += ", is_active = ?"
		args = append(args, *patch.IsActive)
	}
	if patch.ShowInHeader != nil {
		set += ", show_in_header = ?"
		args = append(args, *patch.ShowInHeader)
	}
	if patch.ShowInFooter != nil {
		set += ", show_in_footer = ?"
		args = append(args, *patch.ShowInFooter)
	}

	args = append(args, id)
	return s.execUpdate(ctx, "UPDATE pages SET "+set+" WHERE id = ?", args, "pages", id)
}

func (s *SQLStore) DeletePage(ctx context.Context, id int64) error {
	return s.execDelete(ctx, "DELETE FROM pages WHERE id = ?", id)
}

const promotionColumns = `id, title, slug, image, description, short_description,
	button_text, button_url, is_active, start_date, end_date, created_at, updated_at`

func scanPromotion(row interface{ Scan(...any) error }) (*models.Promotion, error) {
	var p models.Promotion
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Image, &p.Description, &p.ShortDescription,
		&p.ButtonText, &p.ButtonURL, &p.IsActive, &p.StartDate, &p.EndDate,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLStore) ActivePromotions(ctx context.Context, now time.Time, limit int) ([]models.Promotion, error) {
	day := now.Format("2006-01-02")
	query := "SELECT " + promotionColumns + ` FROM promotions
		WHERE is_active = 1
		  AND (start_date IS NULL OR start_date <= ?)
		  AND (end_date IS NULL OR end_date >= ?)
		ORDER BY created_at DESC, id DESC LIMIT ?`
	return s.queryPromotions(ctx, query, day, day, limit)
}

func (s *SQLStore) AllPromotions(ctx context.Context) ([]models.Promotion, error) {
	query := "SELECT " + promotionColumns + " FROM promotions ORDER BY created_at DESC, id DESC"
	return s.queryPromotions(ctx, query)
}

func (s *SQLStore) queryPromotions(ctx context.Context, query string, args ...interface{}) ([]models.Promotion, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query promotions: %w", err)
	}
	defer rows.Close()

	var promotions []models.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		promotions = append(promotions, *p)
	}
	return promotions, rows.Err()
}

func (s *SQLStore) CreatePromotion(ctx context.Context, p *models.Promotion) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO promotions (title, slug, image, description, short_description,
		 button_text, button_url, is_active, start_date, end_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Slug, p.Image, p.Description, p.ShortDescription,
		p.ButtonText, p.ButtonURL, p.IsActive, p.StartDate, p.EndDate)
	if err != nil {
		return mapWriteErr(err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (s *SQLStore) UpdatePromotion(ctx context.Context, id int64, patch PromotionPatch) error {
	set := "updated_at = CURRENT_TIMESTAMP"
	var args []interface{}

	if patch.Title != nil {
		set += ", title = ?"
		args = append(args, *patch.Title)
	}
	if patch.Slug != nil {
		set += ", slug = ?"
		args = append(args, *patch.Slug)
	}
	if patch.Image != nil {
		set += ", image = ?"
		args = append(args, *patch.Image)
	}
	if patch.Description != nil {
		set += ", description = ?"
		args = append(args, *patch.Description)
	}
	if patch.ShortDescription != nil {
		set += ", short_description = ?"
		args = append(args, *patch.ShortDescription)
	}
	if patch.ButtonText != nil {
		set += ", button_text = ?"
		args = append(args, *patch.ButtonText)
	}
	if patch.ButtonURL != nil {
		set += ", button_url = ?"
		args = append(args, *patch.ButtonURL)
	}
	if patch.IsActive != nil {
		set += ", is_active = ?"
		args = append(args, *patch.IsActive)
	}
	if patch.StartDate != nil {
		set += ", start_date = ?"
		args = append(args, *patch.StartDate)
	}
	if patch.EndDate != nil {
		set += ", end_date = ?"
		args = append(args, *patch.EndDate)
	}

	args = append(args, id)
	return s.execUpdate(ctx, "UPDATE promotions SET "+set+" WHERE id = ?", args, "promotions", id)
}

func (s *SQLStore) DeletePromotion(ctx context.Context, id int64) error {
	return s.execDelete(ctx, "DELETE FROM promotions WHERE id = ?", id)
}

func (s *SQLStore) DeactivateExpiredPromotions(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE promotions SET is_active = 0 WHERE is_active = 1 AND end_date IS NOT NULL AND end_date < ?",
		now.Format("2006-01-02"))
	if err != nil {
		return 0, fmt.Errorf("deactivate expired promotions: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLStore) execUpdate(ctx context.Context, query string, args []interface{}, table string, id int64) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (s *SQLStore) execDelete(ctx context.Context, query string, id int64) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
