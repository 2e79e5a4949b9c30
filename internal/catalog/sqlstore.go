package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

const productColumns = `
	p.id, p.category_id, p.name, p.slug, p.description, p.short_description,
	p.price, p.old_price, p.discount_price,
	p.image, p.sku, p.brand, p.rating, p.review_count, p.stock,
	p.is_active, p.is_featured, p.is_new, p.in_stock,
	p.created_at, p.updated_at,
	c.name, c.slug`

const productFrom = ` FROM products p JOIN categories c ON c.id = p.category_id`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Price, &p.OldPrice, &p.DiscountPrice,
		&p.Image, &p.SKU, &p.Brand, &p.Rating, &p.ReviewCount, &p.Stock,
		&p.IsActive, &p.IsFeatured, &p.IsNew, &p.InStock,
		&p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName, &p.CategorySlug,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows *sql.Rows) ([]models.Product, error) {
	defer rows.Close()
	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// buildProductWhere appends the filter predicates to the query. The base
// predicate p.is_active = 1 is always present: inactive products never
// leave this layer.
func buildProductWhere(b *strings.Builder, args []interface{}, f Filter) []interface{} {
	b.WriteString(" WHERE p.is_active = 1")

	if f.FeaturedOnly {
		b.WriteString(" AND p.is_featured = 1")
	}
	if f.CategoryID != 0 {
		b.WriteString(" AND p.category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		if f.SearchCategoryName {
			b.WriteString(" AND (p.name LIKE ? OR p.description LIKE ? OR p.short_description LIKE ? OR c.name LIKE ?)")
			args = append(args, term, term, term, term)
		} else {
			b.WriteString(" AND (p.name LIKE ? OR p.description LIKE ? OR p.short_description LIKE ?)")
			args = append(args, term, term, term)
		}
	}
	return args
}

func (s *SQLStore) CountProducts(ctx context.Context, f Filter) (int, error) {
	var b strings.Builder
	b.WriteString("SELECT COUNT(*)")
	b.WriteString(productFrom)
	args := buildProductWhere(&b, nil, f)

	var total int
	if err := s.db.QueryRowContext(ctx, b.String(), args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (s *SQLStore) ListProducts(ctx context.Context, f Filter, limit, offset int) ([]models.Product, error) {
	var b strings.Builder
	b.WriteString("SELECT")
	b.WriteString(productColumns)
	b.WriteString(productFrom)
	args := buildProductWhere(&b, nil, f)

	b.WriteString(" ORDER BY ")
	b.WriteString(f.Sort.OrderBy())
	b.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

func (s *SQLStore) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	query := "SELECT" + productColumns + productFrom +
		" WHERE p.is_active = 1 AND p.is_featured = 1 ORDER BY p.created_at DESC, p.id DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("featured products: %w", err)
	}
	return collectProducts(rows)
}

func (s *SQLStore) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := "SELECT" + productColumns + productFrom + " WHERE p.slug = ? AND p.is_active = 1"
	p, err := scanProduct(s.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("product by slug: %w", err)
	}
	return p, nil
}

func (s *SQLStore) RelatedProducts(ctx context.Context, categoryID, excludeID int64, limit int) ([]models.Product, error) {
	query := "SELECT" + productColumns + productFrom +
		" WHERE p.is_active = 1 AND p.category_id = ? AND p.id <> ? ORDER BY p.created_at DESC, p.id DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, categoryID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("related products: %w", err)
	}
	return collectProducts(rows)
}

const categoryColumns = `id, name, slug, description, image, is_active, display_order, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image,
		&c.IsActive, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLStore) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories WHERE slug = ? AND is_active = 1"
	c, err := scanCategory(s.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("category by slug: %w", err)
	}
	return c, nil
}

func (s *SQLStore) ActiveCategories(ctx context.Context) ([]models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories WHERE is_active = 1 ORDER BY display_order, name"
	return s.queryCategories(ctx, query)
}

func (s *SQLStore) AllCategories(ctx context.Context) ([]models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories ORDER BY display_order, name"
	return s.queryCategories(ctx, query)
}

func (s *SQLStore) queryCategories(ctx context.Context, query string, args ...interface{}) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// --- Admin writes ---

// mapWriteErr converts a MySQL duplicate-key error (1062) on the slug
// unique index into ErrDuplicateSlug.
func mapWriteErr(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrDuplicateSlug
	}
	return err
}

func (s *SQLStore) CreateCategory(ctx context.Context, c *models.Category) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, slug, description, image, is_active, display_order)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Slug, c.Description, c.Image, c.IsActive, c.DisplayOrder)
	if err != nil {
		return mapWriteErr(err)
	}
	c.ID, err = res.LastInsertId()
	return err
}

func (s *SQLStore) UpdateCategory(ctx context.Context, id int64, patch CategoryPatch) error {
	set := "updated_at = CURRENT_TIMESTAMP"
	var args []interface{}

	if patch.Name != nil {
		set += ", name = ?"
		args = append(args, *patch.Name)
	}
	if patch.Slug != nil {
		set += ", slug = ?"
		args = append(args, *patch.Slug)
	}
	if patch.Description != nil {
		set += ", description = ?"
		args = append(args, *patch.Description)
	}
	if patch.Image != nil {
		set += ", image = ?"
		args = append(args, *patch.Image)
	}
	if patch.IsActive != nil {
		set += ", is_active = ?"
		args = append(args, *patch.IsActive)
	}
	if patch.DisplayOrder != nil {
		set += ", display_order = ?"
		args = append(args, *patch.DisplayOrder)
	}

	args = append(args, id)
	return s.execUpdate(ctx, "UPDATE categories SET "+set+" WHERE id = ?", args, "categories", id)
}

func (s *SQLStore) DeleteCategory(ctx context.Context, id int64) error {
	return s.execDelete(ctx, "DELETE FROM categories WHERE id = ?", id)
}

func (s *SQLStore) AllProducts(ctx context.Context) ([]models.Product, error) {
	query := "SELECT" + productColumns + productFrom + " ORDER BY p.created_at DESC, p.id DESC"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("all products: %w", err)
	}
	return collectProducts(rows)
}

// ProductByID is the admin read of a single row; unlike ProductBySlug it
// sees inactive products.
func (s *SQLStore) ProductByID(ctx context.Context, id int64) (*models.Product, error) {
	query := "SELECT" + productColumns + productFrom + " WHERE p.id = ?"
	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("product by id: %w", err)
	}
	return p, nil
}

func (s *SQLStore) CreateProduct(ctx context.Context, p *models.Product) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO products
		 (category_id, name, slug, description, short_description,
		  price, old_price, discount_price,
		  image, sku, brand, rating, review_count, stock,
		  is_active, is_featured, is_new, in_stock)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.CategoryID, p.Name, p.Slug, p.Description, p.ShortDescription,
		p.Price, p.OldPrice, p.DiscountPrice,
		p.Image, p.SKU, p.Brand, p.Rating, p.ReviewCount, p.Stock,
		p.IsActive, p.IsFeatured, p.IsNew, p.InStock)
	if err != nil {
		return mapWriteErr(err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (s *SQLStore) UpdateProduct(ctx context.Context, id int64, patch ProductPatch) error {
	set := "updated_at = CURRENT_TIMESTAMP"
	var args []interface{}

	if patch.CategoryID != nil {
		set += ", category_id = ?"
		args = append(args, *patch.CategoryID)
	}
	if patch.Name != nil {
		set += ", name = ?"
		args = append(args, *patch.Name)
	}
	if patch.Slug != nil {
		set += ", slug = ?"
		args = append(args, *patch.Slug)
	}
	if patch.Description != nil {
		set += ", description = ?"
		args = append(args, *patch.Description)
	}
	if patch.ShortDescription != nil {
		set += ", short_description = ?"
		args = append(args, *patch.ShortDescription)
	}
	if patch.Price != nil {
		set += ", price = ?"
		args = append(args, *patch.Price)
	}
	if patch.OldPrice != nil {
		set += ", old_price = ?"
		args = append(args, *patch.OldPrice)
	}
	if patch.DiscountPrice != nil {
		set += ", discount_price = ?"
		args = append(args, *patch.DiscountPrice)
	}
	if patch.Image != nil {
		set += ", image = ?"
		args = append(args, *patch.Image)
	}
	if patch.SKU != nil {
		set += ", sku = ?"
		args = append(args, *patch.SKU)
	}
	if patch.Brand != nil {
		set += ", brand = ?"
		args = append(args, *patch.Brand)
	}
	if patch.Rating != nil {
		set += ", rating = ?"
		args = append(args, *patch.Rating)
	}
	if patch.ReviewCount != nil {
		set += ", review_count = ?"
		args = append(args, *patch.ReviewCount)
	}
	if patch.Stock != nil {
		set += ", stock = ?"
		args = append(args, *patch.Stock)
	}
	if patch.IsActive != nil {
		set += ", is_active = ?"
		args = append(args, *patch.IsActive)
	}
	if patch.IsFeatured != nil {
		set += ", is_featured = ?"
		args = append(args, *patch.IsFeatured)
	}
	if patch.IsNew != nil {
		set += ", is_new = ?"
		args = append(args, *patch.IsNew)
	}
	if patch.InStock != nil {
		set += ", in_stock = ?"
		args = append(args, *patch.InStock)
	}

	args = append(args, id)
	return s.execUpdate(ctx, "UPDATE products SET "+set+" WHERE id = ?", args, "products", id)
}

func (s *SQLStore) DeleteProduct(ctx context.Context, id int64) error {
	return s.execDelete(ctx, "DELETE FROM products WHERE id = ?", id)
}

// execUpdate runs a dynamic UPDATE. RowsAffected can legitimately be 0
// when every value is unchanged, so the row's existence is checked
// explicitly instead.
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
