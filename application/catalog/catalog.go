package catalog

import (
	"context"
	"net/url"
	"strconv"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	catalogrepo "github.com/decomizer/storefront/repository/catalog"
	"github.com/decomizer/storefront/utils/errors"
	"github.com/decomizer/storefront/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
	shopPath       = "/shop"
)

type CatalogApp interface {
	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
	GetSubCategoryNavigation(ctx context.Context, categoryID uint64) (*model.SubCategoryNavigation, error)
	ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

type catalogAppImpl struct {
	catalogRepo catalogrepo.CatalogRepository
}

func NewCatalogApp(catalogRepo catalogrepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{catalogRepo: catalogRepo}
}

func (s *catalogAppImpl) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	items, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		logger.Error("[ListCategories] error catalogRepo.ListCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// ShopLink builds the storefront link of a sub-category.
func ShopLink(categoryID, subCategoryID uint64) string {
	q := url.Values{}
	q.Set("category", strconv.FormatUint(categoryID, 10))
	q.Set("subcategory", strconv.FormatUint(subCategoryID, 10))
	return shopPath + "?" + q.Encode()
}

func (s *catalogAppImpl) GetSubCategoryNavigation(ctx context.Context, categoryID uint64) (*model.SubCategoryNavigation, error) {
	category, err := s.catalogRepo.GetCategory(ctx, categoryID)
	if err != nil {
		logger.Error("[GetSubCategoryNavigation] error catalogRepo.GetCategory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	subs, err := s.catalogRepo.ListSubCategories(ctx, categoryID)
	if err != nil {
		logger.Error("[GetSubCategoryNavigation] error catalogRepo.ListSubCategories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	links := make([]model.SubCategoryLink, 0, len(subs))
	for _, sub := range subs {
		links = append(links, model.SubCategoryLink{
			ID:          sub.ID,
			Name:        sub.Name,
			Slug:        sub.Slug,
			Description: sub.Description,
			ImageURL:    sub.ImageURL,
			Href:        ShopLink(category.ID, sub.ID),
		})
	}

	return &model.SubCategoryNavigation{
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		Centered:      len(links) == 1,
		SubCategories: links,
	}, nil
}

func (s *catalogAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error) {
	f := *filter
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = defaultPerPage
	}
	if f.PerPage > maxPerPage {
		f.PerPage = maxPerPage
	}

	items, total, err := s.catalogRepo.ListProducts(ctx, &f)
	if err != nil {
		logger.Error("[ListProducts] error catalogRepo.ListProducts", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if items == nil {
		items = []model.ProductListItem{}
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       f.Page,
		PerPage:    f.PerPage,
	}, nil
}

func (s *catalogAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	result, err := s.catalogRepo.GetProduct(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error catalogRepo.GetProduct", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}
