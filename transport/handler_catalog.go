package transport

import (
	"net/http"

	"github.com/decomizer/storefront/model"
)

// ListCategories handler
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} model.CategoryEntity
// @Router /api/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetSubCategoryNavigation handler
// @Summary Sub-category navigation of a category
// @Tags Catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} model.SubCategoryNavigation
// @Failure 400 {object} errorResponse
// @Router /api/categories/{id}/subcategories [get]
func (s *RestHandler) GetSubCategoryNavigation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.CatalogApp.GetSubCategoryNavigation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListProducts handler
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param category query int false "Category ID"
// @Param subcategory query int false "Sub-category ID"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ProductListResponse
// @Router /api/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := &model.ProductFilter{}
	var err error
	if filter.CategoryID, err = queryUint(r, "category"); err != nil {
		writeError(w, err)
		return
	}
	if filter.SubCategoryID, err = queryUint(r, "subcategory"); err != nil {
		writeError(w, err)
		return
	}
	page, err := queryUint(r, "page")
	if err != nil {
		writeError(w, err)
		return
	}
	perPage, err := queryUint(r, "per_page")
	if err != nil {
		writeError(w, err)
		return
	}
	filter.Page, filter.PerPage = int(page), int(perPage)

	res, err := s.CatalogApp.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Failure 400 {object} errorResponse
// @Router /api/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.CatalogApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
