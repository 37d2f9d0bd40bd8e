package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/decomizer/storefront/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
	GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error)
	ListSubCategories(ctx context.Context, categoryID uint64) ([]model.SubCategoryEntity, error)
	ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, int64, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const (
	listCategoriesQuery    = `SELECT id, name, slug, COALESCE(description, '') AS description, COALESCE(image_url, '') AS image_url FROM categories WHERE is_active = TRUE ORDER BY name`
	getCategoryQuery       = `SELECT id, name, slug, COALESCE(description, '') AS description, COALESCE(image_url, '') AS image_url FROM categories WHERE id = ? AND is_active = TRUE`
	listSubCategoriesQuery = `SELECT id, category_id, name, slug, COALESCE(description, '') AS description, COALESCE(image_url, '') AS image_url FROM sub_categories WHERE category_id = ? AND is_active = TRUE ORDER BY name`

	listProductsBase = `SELECT p.id, p.name, p.slug, p.category_id, p.sub_category_id, COALESCE(p.image_url, '') AS image_url, p.price, (p.stock - p.reserved) AS available_stock
FROM products p
WHERE p.is_active = TRUE`

	countProductsBase = `SELECT COUNT(*) FROM products p WHERE p.is_active = TRUE`

	getProductDetail = `SELECT p.id, p.name, p.slug, COALESCE(p.description, '') AS description, p.price, COALESCE(p.image_url, '') AS image_url,
c.id AS category_id, c.name AS category_name, s.id AS sub_category_id, s.name AS sub_category_name, (p.stock - p.reserved) AS available_stock
FROM products p
JOIN categories c ON p.category_id = c.id
JOIN sub_categories s ON p.sub_category_id = s.id
WHERE p.id = ? AND p.is_active = TRUE`
)

func (s *SQL) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	items := make([]model.CategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listCategoriesQuery); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	var c model.CategoryEntity
	if err := s.conn.GetContext(ctx, &c, getCategoryQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) ListSubCategories(ctx context.Context, categoryID uint64) ([]model.SubCategoryEntity, error) {
	items := make([]model.SubCategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listSubCategoriesQuery, categoryID); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, int64, error) {
	where := ""
	args := make([]any, 0, 4)
	if filter.CategoryID != 0 {
		where += " AND p.category_id = ?"
		args = append(args, filter.CategoryID)
	}
	if filter.SubCategoryID != 0 {
		where += " AND p.sub_category_id = ?"
		args = append(args, filter.SubCategoryID)
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := listProductsBase + where + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, append(args, filter.PerPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// get total count
	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsBase+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id).StructScan(&detail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}
