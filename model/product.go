package model

type CategoryEntity struct {
	ID          uint64 `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description,omitempty"`
	ImageURL    string `db:"image_url" json:"imageUrl,omitempty"`
}

type SubCategoryEntity struct {
	ID          uint64 `db:"id" json:"id"`
	CategoryID  uint64 `db:"category_id" json:"categoryId"`
	Name        string `db:"name" json:"name"`
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description,omitempty"`
	ImageURL    string `db:"image_url" json:"imageUrl,omitempty"`
}

// SubCategoryLink is one entry of the sub-category navigation list.
type SubCategoryLink struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Href        string `json:"href"`
}

type SubCategoryNavigation struct {
	CategoryID    uint64            `json:"categoryId"`
	CategoryName  string            `json:"categoryName"`
	Centered      bool              `json:"centered"`
	SubCategories []SubCategoryLink `json:"subCategories"`
}

type ProductFilter struct {
	CategoryID    uint64
	SubCategoryID uint64
	Page          int
	PerPage       int
}

type ProductListItem struct {
	ID             uint64  `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Slug           string  `db:"slug" json:"slug"`
	CategoryID     uint64  `db:"category_id" json:"categoryId"`
	SubCategoryID  uint64  `db:"sub_category_id" json:"subCategoryId"`
	ImageURL       string  `db:"image_url" json:"imageUrl,omitempty"`
	AvailableStock int64   `db:"available_stock" json:"availableStock"`
	Price          float64 `db:"price" json:"price"`
}

type ProductDetail struct {
	ID              uint64  `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	Slug            string  `db:"slug" json:"slug"`
	Description     string  `db:"description" json:"description,omitempty"`
	CategoryID      uint64  `db:"category_id" json:"categoryId"`
	CategoryName    string  `db:"category_name" json:"categoryName"`
	SubCategoryID   uint64  `db:"sub_category_id" json:"subCategoryId"`
	SubCategoryName string  `db:"sub_category_name" json:"subCategoryName"`
	ImageURL        string  `db:"image_url" json:"imageUrl,omitempty"`
	AvailableStock  int64   `db:"available_stock" json:"availableStock"`
	Price           float64 `db:"price" json:"price"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"totalCount"`
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
}
