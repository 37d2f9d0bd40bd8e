package catalog_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/decomizer/storefront/model"
	catalogrepo "github.com/decomizer/storefront/repository/catalog"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (catalogrepo.CatalogRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return catalogrepo.NewCatalogRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestCatalogRepository_ListProducts(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`AND p.category_id = ? AND p.sub_category_id = ? ORDER BY p.id LIMIT ? OFFSET ?`)).
		WithArgs(1, 4, 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "category_id", "sub_category_id", "image_url", "price", "available_stock"}).
			AddRow(21, "Cotton Bedsheet", "cotton-bedsheet", 1, 4, "", 1299.0, 8))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE p.is_active = TRUE AND p.category_id = ? AND p.sub_category_id = ?`)).
		WithArgs(1, 4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	items, total, err := repo.ListProducts(context.Background(), &model.ProductFilter{CategoryID: 1, SubCategoryID: 4, Page: 2, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, items, 1)
	assert.Equal(t, int64(8), items[0].AvailableStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_GetCategory_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE id = ? AND is_active = TRUE`)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "description", "image_url"}))

	got, err := repo.GetCategory(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
