package catalog_test

import (
	"context"
	"errors"
	"testing"

	appcatalog "github.com/decomizer/storefront/application/catalog"
	"github.com/decomizer/storefront/constant"
	catalogmocks "github.com/decomizer/storefront/mocks/repository/catalog"
	"github.com/decomizer/storefront/model"
	cerr "github.com/decomizer/storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShopLink(t *testing.T) {
	assert.Equal(t, "/shop?category=3&subcategory=12", appcatalog.ShopLink(3, 12))
}

func TestCatalogApp_GetSubCategoryNavigation(t *testing.T) {
	tests := []struct {
		name         string
		subs         []model.SubCategoryEntity
		wantCentered bool
		wantHrefs    []string
	}{
		{
			name:         "single sub-category is centered",
			subs:         []model.SubCategoryEntity{{ID: 4, CategoryID: 1, Name: "Bedsheets"}},
			wantCentered: true,
			wantHrefs:    []string{"/shop?category=1&subcategory=4"},
		},
		{
			name: "several sub-categories",
			subs: []model.SubCategoryEntity{
				{ID: 4, CategoryID: 1, Name: "Bedsheets"},
				{ID: 5, CategoryID: 1, Name: "Pillow covers"},
			},
			wantHrefs: []string{"/shop?category=1&subcategory=4", "/shop?category=1&subcategory=5"},
		},
		{
			name:      "no sub-categories",
			wantHrefs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := catalogmocks.NewCatalogRepository(t)
			repo.On("GetCategory", mock.Anything, uint64(1)).Return(&model.CategoryEntity{ID: 1, Name: "Bedding"}, nil).Once()
			repo.On("ListSubCategories", mock.Anything, uint64(1)).Return(tt.subs, nil).Once()

			got, err := appcatalog.NewCatalogApp(repo).GetSubCategoryNavigation(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, "Bedding", got.CategoryName)
			assert.Equal(t, tt.wantCentered, got.Centered)

			hrefs := make([]string, 0, len(got.SubCategories))
			for _, l := range got.SubCategories {
				hrefs = append(hrefs, l.Href)
			}
			assert.Equal(t, tt.wantHrefs, hrefs)
		})
	}
}

func TestCatalogApp_GetSubCategoryNavigation_UnknownCategory(t *testing.T) {
	repo := catalogmocks.NewCatalogRepository(t)
	repo.On("GetCategory", mock.Anything, uint64(9)).Return(nil, nil).Once()

	_, err := appcatalog.NewCatalogApp(repo).GetSubCategoryNavigation(context.Background(), 9)
	assert.True(t, cerr.Is(err, constant.ErrNotFound))
}

func TestCatalogApp_ListProducts(t *testing.T) {
	tests := []struct {
		name        string
		filter      *model.ProductFilter
		wantPage    int
		wantPerPage int
	}{
		{name: "defaults", filter: &model.ProductFilter{}, wantPage: 1, wantPerPage: 10},
		{name: "page size capped", filter: &model.ProductFilter{Page: 2, PerPage: 500}, wantPage: 2, wantPerPage: 100},
		{name: "explicit values", filter: &model.ProductFilter{CategoryID: 1, Page: 3, PerPage: 20}, wantPage: 3, wantPerPage: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := catalogmocks.NewCatalogRepository(t)
			repo.On("ListProducts", mock.Anything, mock.MatchedBy(func(f *model.ProductFilter) bool {
				return f.Page == tt.wantPage && f.PerPage == tt.wantPerPage && f.CategoryID == tt.filter.CategoryID
			})).Return(nil, int64(0), nil).Once()

			got, err := appcatalog.NewCatalogApp(repo).ListProducts(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPerPage, got.PerPage)
			assert.NotNil(t, got.Items)
		})
	}
}

func TestCatalogApp_GetProduct(t *testing.T) {
	repo := catalogmocks.NewCatalogRepository(t)
	repo.On("GetProduct", mock.Anything, uint64(1)).Return(&model.ProductDetail{ID: 1, Name: "Cotton Bedsheet", AvailableStock: 3}, nil).Once()
	repo.On("GetProduct", mock.Anything, uint64(2)).Return(nil, nil).Once()
	repo.On("GetProduct", mock.Anything, uint64(3)).Return(nil, errors.New("db error")).Once()
	app := appcatalog.NewCatalogApp(repo)

	got, err := app.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.AvailableStock)

	_, err = app.GetProduct(context.Background(), 2)
	assert.True(t, cerr.Is(err, constant.ErrNotFound))

	_, err = app.GetProduct(context.Background(), 3)
	assert.True(t, cerr.Is(err, constant.ErrInternal))
}
